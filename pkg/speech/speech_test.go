package speech

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamPublishAndConsume(t *testing.T) {
	s := NewStream(4)
	require.True(t, s.Start())

	require.True(t, s.Publish(Event{Kind: Started}))
	require.True(t, s.Publish(Event{Kind: Interim, Text: "my phone was"}))
	require.True(t, s.Publish(Event{Kind: Result, Text: "my phone was stolen"}))

	assert.Equal(t, Started, (<-s.Events()).Kind)
	assert.Equal(t, "my phone was", (<-s.Events()).Text)

	final := <-s.Events()
	assert.Equal(t, Result, final.Kind)
	assert.Equal(t, "my phone was stolen", final.Text)
}

func TestStreamNoEventsAfterStop(t *testing.T) {
	s := NewStream(4)
	s.Stop()

	assert.False(t, s.Publish(Event{Kind: Result, Text: "late"}))
	assert.False(t, s.Start())

	_, open := <-s.Events()
	assert.False(t, open, "channel closes on Stop")

	s.Stop() // second Stop is a no-op, not a panic
}

func TestStreamFullBufferDrops(t *testing.T) {
	s := NewStream(1)
	assert.True(t, s.Publish(Event{Kind: Interim, Text: "one"}))
	assert.False(t, s.Publish(Event{Kind: Interim, Text: "two"}),
		"publishing past the buffer drops instead of blocking")
}

func TestUnsupported(t *testing.T) {
	var u Unsupported

	assert.False(t, u.Start())
	assert.NoError(t, u.Speak(context.Background(), "hello", "en-US"))

	_, open := <-u.Events()
	assert.False(t, open)
}

type countingPlayer struct {
	nudges  atomic.Int32
	speakFn func(ctx context.Context) error
}

func (p *countingPlayer) Speak(ctx context.Context, text, locale string) error {
	if p.speakFn != nil {
		return p.speakFn(ctx)
	}
	return nil
}
func (p *countingPlayer) Nudge() { p.nudges.Add(1) }
func (p *countingPlayer) Stop()  {}

func TestNudgerNudgesDuringLongUtterance(t *testing.T) {
	player := &countingPlayer{speakFn: func(ctx context.Context) error {
		time.Sleep(50 * time.Millisecond)
		return nil
	}}
	n := NewNudger(player, 10*time.Millisecond)

	require.NoError(t, n.Speak(context.Background(), "a very long utterance", "en-US"))
	assert.Greater(t, player.nudges.Load(), int32(0))
}

func TestNudgerStopsNudgingAfterSpeak(t *testing.T) {
	player := &countingPlayer{}
	n := NewNudger(player, time.Millisecond)

	require.NoError(t, n.Speak(context.Background(), "short", "en-US"))
	settled := player.nudges.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, player.nudges.Load(), "no nudges once playback finished")
}
