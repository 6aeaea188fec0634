package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firdesk/pkg/extract"
	"firdesk/pkg/schema"
)

// fakeExtractor lets a test script the extraction outcome and observe or
// interfere with the session mid-call.
type fakeExtractor struct {
	record schema.Record
	err    error
	calls  int
	during func()
}

func (f *fakeExtractor) Extract(_ context.Context, statement string) (schema.Record, error) {
	f.calls++
	if f.during != nil {
		f.during()
	}
	return f.record, f.err
}

func TestStartReturnsGreetingAndIsIdempotent(t *testing.T) {
	s := NewSession(&fakeExtractor{})

	first := s.Start()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, s.Start())
}

func TestLocaleFallback(t *testing.T) {
	s := NewSession(&fakeExtractor{})

	s.SetLocale("hi-IN")
	hindi := s.Start()

	s.SetLocale("fr-FR")
	fallback := s.Start()

	s.SetLocale("en-US")
	english := s.Start()

	assert.NotEqual(t, hindi, english)
	assert.Equal(t, english, fallback, "unknown locales fall back to en-US")

	s.SetLocale("")
	assert.Equal(t, "en-US", s.Locale(), "blank locale is ignored")
}

func TestSubmitEmptyInput(t *testing.T) {
	ext := &fakeExtractor{}
	s := NewSession(ext)
	s.Start()

	_, err := s.Submit(context.Background(), "   \n ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Zero(t, ext.calls, "extractor must not run for blank input")
	assert.False(t, s.Complete())
}

func TestSubmitSuccess(t *testing.T) {
	ext := &fakeExtractor{record: schema.Record{FIRNumber: "FIR-2024-5678"}}
	s := NewSession(ext)
	s.Start()

	reply, err := s.Submit(context.Background(), "My scooter was stolen outside the market.")
	require.NoError(t, err)
	require.NotNil(t, reply.Record)

	assert.Contains(t, reply.Message, "FIR-2024-5678")
	assert.Equal(t, "FIR-2024-5678", reply.Record.FIRNumber)
	assert.True(t, s.Complete())

	record, ok := s.Record()
	require.True(t, ok)
	assert.Equal(t, "FIR-2024-5678", record.FIRNumber)
}

func TestSubmitAfterCompletionReturnsExistingRecord(t *testing.T) {
	ext := &fakeExtractor{record: schema.Record{FIRNumber: "FIR-2024-5678"}}
	s := NewSession(ext)
	s.Start()

	_, err := s.Submit(context.Background(), "first statement")
	require.NoError(t, err)

	reply, err := s.Submit(context.Background(), "second statement")
	require.NoError(t, err)
	require.NotNil(t, reply.Record)
	assert.Equal(t, "FIR-2024-5678", reply.Record.FIRNumber)
	assert.Equal(t, 1, ext.calls, "completed session never re-extracts")
}

func TestSubmitExtractionFailureIsResumable(t *testing.T) {
	ext := &fakeExtractor{err: extract.ErrExtractionFailed}
	s := NewSession(ext)
	s.Start()

	reply, err := s.Submit(context.Background(), "statement")
	require.NoError(t, err, "extraction failures surface in the reply, not the error")
	assert.ErrorIs(t, reply.Err, extract.ErrExtractionFailed)
	assert.NotEmpty(t, reply.Message)
	assert.Nil(t, reply.Record)
	assert.False(t, s.Complete())

	ext.err = nil
	ext.record = schema.Record{FIRNumber: "FIR-2024-0001"}
	retry, err := s.Submit(context.Background(), "statement again")
	require.NoError(t, err)
	assert.Nil(t, retry.Err)
	assert.True(t, s.Complete())
}

func TestSubmitWhileBusy(t *testing.T) {
	s := NewSession(nil)
	ext := &fakeExtractor{record: schema.Record{FIRNumber: "FIR-2024-0001"}}
	// The reentrant call lands while the outer extraction holds the
	// pending flag but not the lock.
	var busyErr error
	ext.during = func() {
		inner := ext.during
		ext.during = nil
		defer func() { ext.during = inner }()
		_, busyErr = s.Submit(context.Background(), "another statement")
	}
	s.extractor = ext
	s.Start()

	_, err := s.Submit(context.Background(), "statement")
	require.NoError(t, err)
	assert.ErrorIs(t, busyErr, ErrSessionBusy)
}

func TestResetClearsState(t *testing.T) {
	ext := &fakeExtractor{record: schema.Record{FIRNumber: "FIR-2024-0001"}}
	s := NewSession(ext)
	s.Start()

	_, err := s.Submit(context.Background(), "statement")
	require.NoError(t, err)
	require.True(t, s.Complete())

	s.Reset()
	assert.False(t, s.Complete())
	_, ok := s.Record()
	assert.False(t, ok)
}

func TestResetDuringExtractionDiscardsResult(t *testing.T) {
	s := NewSession(nil)
	ext := &fakeExtractor{record: schema.Record{FIRNumber: "FIR-2024-0001"}}
	ext.during = func() { s.Reset() }
	s.extractor = ext
	s.Start()

	reply, err := s.Submit(context.Background(), "statement")
	require.NoError(t, err)
	assert.Empty(t, reply.Message)
	assert.Nil(t, reply.Record)
	assert.False(t, s.Complete(), "a result landing after reset never files")
	_, ok := s.Record()
	assert.False(t, ok)
}

func TestMessageTableFallback(t *testing.T) {
	assert.Equal(t, greetings[DefaultLocale], message(greetings, "xx-YY"))
	assert.Equal(t, greetings["te-IN"], message(greetings, "te-IN"))
	assert.Equal(t, success[DefaultLocale], message(success, "ta-IN"),
		"tables without a locale entry fall back")
}

func TestReplyErrStaysOutOfJSON(t *testing.T) {
	reply := Reply{Message: "failed", Err: errors.New("boom")}
	data, err := json.Marshal(reply)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "boom")
	assert.JSONEq(t, `{"message":"failed"}`, string(data))
}
