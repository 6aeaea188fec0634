package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"firdesk/pkg/conversation"
	"firdesk/pkg/utils"
)

type sessionReq struct {
	Locale string `json:"locale,omitempty"`
}

type statementReq struct {
	Text   string `json:"text"`
	Locale string `json:"locale,omitempty"`
}

// POST /api/session
func (s *Server) handlePostSession(c echo.Context) error {
	var req sessionReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}

	id, sess := s.newSession()
	sess.SetLocale(req.Locale)
	greeting := sess.Start()

	log.Info("filing session started", "session", id, "locale", sess.Locale())
	return c.JSON(http.StatusOK, map[string]string{
		"session":  id,
		"greeting": greeting,
	})
}

// POST /api/session/:id/statement
//
// The extraction call is the slow step, so progress goes out over SSE:
// a "processing" event immediately, then "done" with the record or
// "error" with the localized failure message.
func (s *Server) handlePostStatement(c echo.Context) error {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown session")
	}

	var req statementReq
	if err := c.Bind(&req); err != nil {
		log.Error("invalid JSON in statement submission", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	sess.SetLocale(req.Locale)

	if strings.TrimSpace(req.Text) == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("empty statement"))
	}

	w := utils.NewSSEWriter(c)
	defer w.Close()

	if err := w.Event("processing", map[string]string{"message": sess.Processing()}); err != nil {
		return err
	}

	reply, err := sess.Submit(c.Request().Context(), req.Text)
	switch {
	case errors.Is(err, conversation.ErrEmptyInput):
		return w.Event("error", map[string]string{"error": "empty statement"})
	case errors.Is(err, conversation.ErrSessionBusy):
		log.Warn("statement rejected, extraction already in flight", "session", c.Param("id"))
		return w.Event("error", map[string]string{"error": "a statement is already being processed"})
	case err != nil:
		log.Error("statement submission failed", "error", err)
		return w.Event("error", map[string]string{"error": "internal error"})
	}

	if reply.Err != nil {
		return w.Event("error", map[string]string{"message": reply.Message})
	}

	if reply.Record != nil {
		s.remember(*reply.Record)
	}
	return w.Event("done", reply)
}

// DELETE /api/session/:id
func (s *Server) handleDeleteSession(c echo.Context) error {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown session")
	}
	sess.Reset()
	log.Info("filing session reset", "session", c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
