package server

import (
	"context"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"

	"firdesk/pkg/analysis"
	"firdesk/pkg/conversation"
	"firdesk/pkg/schema"
	"firdesk/pkg/utils"
)

const historyFile = "FilingHistory.json"

type Server struct {
	Echo      *echo.Echo
	Extractor conversation.Extractor
	Analysis  *analysis.Client
	Ctx       context.Context

	// History maps FIR numbers to filed records; restored at boot and
	// persisted on shutdown.
	History     map[string]schema.Record
	HistoryPath string

	mu       sync.Mutex
	sessions map[string]*conversation.Session
}

func NewServer(ctx context.Context, extractor conversation.Extractor, analysisClient *analysis.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:        e,
		Extractor:   extractor,
		Analysis:    analysisClient,
		Ctx:         ctx,
		History:     make(map[string]schema.Record),
		HistoryPath: historyFile,
		sessions:    make(map[string]*conversation.Session),
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")
	api.POST("/session", s.handlePostSession)                // new filing session -> token + greeting
	api.POST("/session/:id/statement", s.handlePostStatement) // statement -> SSE progress -> record
	api.DELETE("/session/:id", s.handleDeleteSession)        // reset
	api.GET("/session/:id/export/:format", s.handleGetExport) // txt / doc / pdf download or print
	api.POST("/analysis", s.handlePostAnalysis)              // existing FIR PDF -> legal outcome report
}

func (s *Server) Start(addr string) error {
	utils.Logf("Server listening at %s", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	utils.Logf("Shutting down server...")

	saveErr := utils.Save(s.HistoryPath, s.History)
	shutDownErr := s.Echo.Shutdown(ctx)
	if shutDownErr != nil {
		return shutDownErr
	}

	return saveErr
}

// session returns the filing session for a token, if it exists.
func (s *Server) session(id string) (*conversation.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// newSession registers a fresh filing session under a new token.
func (s *Server) newSession() (string, *conversation.Session) {
	sess := conversation.NewSession(s.Extractor)
	id := ksuid.New().String()
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return id, sess
}

// remember records a completed filing in the history map.
func (s *Server) remember(record schema.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.History[record.FIRNumber] = record
}
