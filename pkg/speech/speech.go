// Package speech defines the contracts that bridge the conversation
// layer to external capture and synthesis capabilities. The host
// platform provides the actual microphone and voice; this package pins
// down the event vocabulary and the cancellation guarantees.
package speech

import (
	"context"
	"sync"
	"time"
)

type EventKind int

const (
	Started EventKind = iota
	Interim
	Result
	ErrorEvent
	Ended
)

// Event is one typed capture notification. Text carries the transcript
// for Interim/Result events; Code carries the platform error for
// ErrorEvent.
type Event struct {
	Kind EventKind
	Text string
	Code string
}

// Recognizer captures speech and delivers typed events on a bounded
// channel. Start reports false (and must not panic) when the capability
// is unsupported or permission was denied; typed input remains the
// fallback. After Stop returns, no further events are delivered.
type Recognizer interface {
	Start() bool
	Stop()
	Events() <-chan Event
}

// Stream is the reference Recognizer: the platform side publishes
// events into it and the conversation loop consumes them. A closed gate
// guarantees the no-events-after-Stop contract.
type Stream struct {
	mu      sync.Mutex
	ch      chan Event
	stopped bool
}

func NewStream(buffer int) *Stream {
	if buffer <= 0 {
		buffer = 16
	}
	return &Stream{ch: make(chan Event, buffer)}
}

func (s *Stream) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}
	return true
}

// Publish delivers an event to the consumer. Events published after
// Stop, or past the buffer, are dropped rather than blocking the
// platform callback.
func (s *Stream) Publish(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}
	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

func (s *Stream) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.ch)
}

func (s *Stream) Events() <-chan Event {
	return s.ch
}

// Synthesizer speaks a localized message and returns once playback
// completes. Stop cancels synchronously.
type Synthesizer interface {
	Speak(ctx context.Context, text, locale string) error
	Stop()
}

// Player is the platform voice a Nudger drives. Nudge pokes a silently
// stalled playback; some platforms pause long utterances indefinitely.
type Player interface {
	Speak(ctx context.Context, text, locale string) error
	Nudge()
	Stop()
}

// Nudger wraps a Player and periodically nudges playback while an
// utterance is in flight.
type Nudger struct {
	player   Player
	interval time.Duration
}

func NewNudger(player Player, interval time.Duration) *Nudger {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Nudger{player: player, interval: interval}
}

func (n *Nudger) Speak(ctx context.Context, text, locale string) error {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(n.interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				n.player.Nudge()
			}
		}
	}()
	err := n.player.Speak(ctx, text, locale)
	close(done)
	return err
}

func (n *Nudger) Stop() {
	n.player.Stop()
}

// Unsupported satisfies both contracts on hosts without speech
// capabilities: capture fails fast, synthesis resolves immediately.
type Unsupported struct{}

func (Unsupported) Start() bool { return false }
func (Unsupported) Stop()       {}
func (Unsupported) Events() <-chan Event {
	ch := make(chan Event)
	close(ch)
	return ch
}
func (Unsupported) Speak(context.Context, string, string) error { return nil }
