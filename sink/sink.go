package sink

import (
	"io"
	"os"
	"sync"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/layout"
)

// Sink consumes formatted events. A logger invokes every registered
// sink in order for each accepted event; a Handle error propagates to
// the log caller rather than being swallowed, since suppressing it
// would silently lose log data.
type Sink interface {
	// Handle renders and emits one event.
	Handle(e *core.Event) error

	// Close releases the sink's resources.
	Close() error
}

// flush pushes buffered data through writers that support it, via
// either Flush or Sync. An *os.File write is already visible to tail
// tools, so Sync is not forced there.
func flush(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	if _, ok := w.(*os.File); ok {
		return nil
	}
	if s, ok := w.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

// StreamSink writes laid-out events to a stream, one line per event,
// guarded by a lock. It carries its own level threshold, independent of
// any logger's level.
type StreamSink struct {
	level  core.Level
	w      io.Writer
	owns   bool
	mu     sync.Mutex
	layout layout.Layout
}

// StreamConfig holds StreamSink configuration.
type StreamConfig struct {
	// Writer is the target stream.
	Writer io.Writer
	// Layout renders events (default: text layout with default fields).
	Layout layout.Layout
	// Level is the sink-local threshold; events below it are ignored.
	Level core.Level
	// OwnsWriter transfers ownership of Writer to the sink: Close then
	// closes the stream. Leave it unset for caller-managed streams such
	// as os.Stderr, which Close only flushes.
	OwnsWriter bool
}

// NewStreamSink creates a stream sink.
func NewStreamSink(cfg StreamConfig) *StreamSink {
	if cfg.Layout == nil {
		cfg.Layout = layout.NewTextLayout(layout.TextConfig{})
	}
	return &StreamSink{
		level:  cfg.Level,
		w:      cfg.Writer,
		owns:   cfg.OwnsWriter,
		layout: cfg.Layout,
	}
}

// Handle writes the event to the stream. Formatting, writing and
// flushing happen under the sink's lock so concurrent loggers sharing
// this sink never interleave partial lines. The flush per event keeps
// external tail and rotation tools near-real-time.
func (s *StreamSink) Handle(e *core.Event) error {
	if e.Level < s.level {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(s.w, s.layout.Format(e)+"\n"); err != nil {
		return err
	}
	return flush(s.w)
}

// Close flushes the stream, and closes it when the sink owns it.
// Streams handed in by the caller stay open; closing them here would
// tear down shared writers like os.Stderr process-wide.
func (s *StreamSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := flush(s.w); err != nil {
		return err
	}
	if c, ok := s.w.(io.Closer); ok && s.owns {
		return c.Close()
	}
	return nil
}
