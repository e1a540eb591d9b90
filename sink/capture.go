package sink

import (
	"sync"

	"github.com/treelog/treelog/core"
)

// CaptureSink buffers accepted events in memory. It is the sink to
// reach for in tests and for embedders that post-process events
// themselves.
type CaptureSink struct {
	level core.Level

	mu     sync.Mutex
	events []*core.Event
}

// NewCaptureSink creates a capturing sink. Events below level are
// ignored.
func NewCaptureSink(level core.Level) *CaptureSink {
	return &CaptureSink{level: level}
}

// Handle records the event.
func (s *CaptureSink) Handle(e *core.Event) error {
	if e.Level < s.level {
		return nil
	}
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
	return nil
}

// Close is a no-op.
func (s *CaptureSink) Close() error { return nil }

// Events returns a snapshot of the captured events.
func (s *CaptureSink) Events() []*core.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*core.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Reset discards captured events.
func (s *CaptureSink) Reset() {
	s.mu.Lock()
	s.events = nil
	s.mu.Unlock()
}
