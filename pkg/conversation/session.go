package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"firdesk/pkg/schema"
)

// The canonical conversation mode is a single free-form statement:
// one greeting, one statement, one record. The scripted
// question-by-question variant is deliberately not implemented.

var (
	// ErrEmptyInput rejects blank or whitespace-only submissions. The
	// session state does not change and the extractor is never called.
	ErrEmptyInput = errors.New("empty input")

	// ErrSessionBusy rejects a submission while an extraction call is in
	// flight. Submissions are rejected, never queued.
	ErrSessionBusy = errors.New("session busy")
)

// Extractor is the remote pipeline the session hands statements to.
type Extractor interface {
	Extract(ctx context.Context, statement string) (schema.Record, error)
}

// Reply is what the user sees after a submission: a localized message,
// the record on success, and the taxonomy error on an extraction
// failure (the session stays resumable either way).
type Reply struct {
	Message string         `json:"message"`
	Record  *schema.Record `json:"firReport,omitempty"`

	Err error `json:"-"`
}

// Session owns one filing conversation end to end: the collected
// statement, the resulting record, and the guards that keep a single
// extraction in flight.
type Session struct {
	mu sync.Mutex

	extractor Extractor
	locale    string

	token     string // rotates on reset; stale extraction results are discarded
	active    bool
	pending   bool
	complete  bool
	statement string
	record    *schema.Record
}

func NewSession(extractor Extractor) *Session {
	return &Session{
		extractor: extractor,
		locale:    DefaultLocale,
		token:     ksuid.New().String(),
	}
}

func (s *Session) SetLocale(locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if locale != "" {
		s.locale = locale
	}
}

func (s *Session) Locale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// Start arms the session and returns the localized greeting. Calling it
// on an already-active session changes nothing.
func (s *Session) Start() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		s.active = true
	}
	return message(greetings, s.locale)
}

// Reset clears all conversation state and the stored record. Safe at any
// time; a pending extraction result is discarded when it lands because
// the session token has rotated.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ksuid.New().String()
	s.active = false
	s.complete = false
	s.statement = ""
	s.record = nil
}

func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

// Record returns the filed record, if any.
func (s *Session) Record() (schema.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return schema.Record{}, false
	}
	return *s.record, true
}

// Processing returns the localized in-progress message for the UI.
func (s *Session) Processing() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return message(processing, s.locale)
}

// Submit hands one statement to the extractor. Extraction failures do
// not surface as returned errors: the reply carries the localized
// failure message plus the taxonomy value, and the session goes back to
// awaiting input so the user can resubmit.
func (s *Session) Submit(ctx context.Context, text string) (Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}, ErrEmptyInput
	}

	s.mu.Lock()
	if s.complete {
		reply := Reply{Message: message(alreadyFiled, s.locale), Record: s.record}
		s.mu.Unlock()
		return reply, nil
	}
	if s.pending {
		s.mu.Unlock()
		return Reply{}, ErrSessionBusy
	}
	s.pending = true
	s.active = true
	token := s.token
	locale := s.locale
	s.mu.Unlock()

	record, err := s.extractor.Extract(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false

	if s.token != token {
		log.Warn("discarding extraction result for reset session")
		return Reply{}, nil
	}

	if err != nil {
		log.Warn("statement extraction failed", "error", err)
		return Reply{Message: message(extractionError, locale), Err: err}, nil
	}

	s.statement = text
	s.record = &record
	s.complete = true
	log.Info("FIR record generated", "fir_number", record.FIRNumber)

	return Reply{
		Message: fmt.Sprintf(message(success, locale), record.FIRNumber),
		Record:  &record,
	}, nil
}
