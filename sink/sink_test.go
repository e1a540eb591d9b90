package sink

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/layout"
)

type pathNode string

func (p pathNode) Path() string { return string(p) }

func event(level core.Level, msg string) *core.Event {
	return &core.Event{
		Logger:  pathNode("red.blue"),
		Level:   level,
		Message: msg,
		Time:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStreamSink_Write(t *testing.T) {
	var buf bytes.Buffer
	s := NewStreamSink(StreamConfig{Writer: &buf})

	if err := s.Handle(event(core.INFO, "hello")); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	line := buf.String()
	if !strings.HasSuffix(line, "\n") {
		t.Error("sink must terminate the line")
	}
	if !strings.Contains(line, "hello") || !strings.Contains(line, "red.blue") {
		t.Errorf("unexpected line: %q", line)
	}
}

func TestStreamSink_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	s := NewStreamSink(StreamConfig{Writer: &buf, Level: core.WARNING})

	if err := s.Handle(event(core.INFO, "quiet")); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("below-threshold event must be ignored, got %q", buf.String())
	}

	if err := s.Handle(event(core.WARNING, "loud")); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("at-threshold event must be written, got %q", buf.String())
	}
}

// syncBuffer serializes writes like a real stream would; the point of
// the test below is that each Handle call arrives as one intact line.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStreamSink_NoInterleaving(t *testing.T) {
	out := &syncBuffer{}
	s := NewStreamSink(StreamConfig{
		Writer: out,
		Layout: layout.NewTextLayout(layout.TextConfig{
			Fields: []layout.FieldFunc{layout.MessageField},
		}),
	})

	const writers = 8
	const perWriter = 50
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			msg := strings.Repeat(string(rune('a'+w)), 40)
			for i := 0; i < perWriter; i++ {
				if err := s.Handle(event(core.INFO, msg)); err != nil {
					t.Errorf("Handle failed: %v", err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != writers*perWriter {
		t.Fatalf("expected %d lines, got %d", writers*perWriter, len(lines))
	}
	for _, line := range lines {
		if len(line) != 40 || strings.Count(line, line[:1]) != 40 {
			t.Fatalf("interleaved line detected: %q", line)
		}
	}
}

// closableBuffer records whether a stream sink tried to close it.
type closableBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closableBuffer) Close() error {
	b.closed = true
	return nil
}

func TestStreamSink_CloseKeepsCallerWriterOpen(t *testing.T) {
	w := &closableBuffer{}
	s := NewStreamSink(StreamConfig{Writer: w})

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if w.closed {
		t.Error("caller-provided writer must stay open after Close")
	}
}

func TestStreamSink_CloseOwnedWriter(t *testing.T) {
	w := &closableBuffer{}
	s := NewStreamSink(StreamConfig{Writer: w, OwnsWriter: true})

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !w.closed {
		t.Error("owned writer must be closed with the sink")
	}
}

// syncedBuffer is a WriteSyncer-style stream, like the cores zap wraps.
type syncedBuffer struct {
	bytes.Buffer
	syncs int
}

func (b *syncedBuffer) Sync() error {
	b.syncs++
	return nil
}

func TestStreamSink_SyncOnHandle(t *testing.T) {
	w := &syncedBuffer{}
	s := NewStreamSink(StreamConfig{Writer: w})

	if err := s.Handle(event(core.INFO, "synced")); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if w.syncs != 1 {
		t.Errorf("expected one Sync per handled event, got %d", w.syncs)
	}
}

func TestCaptureSink(t *testing.T) {
	s := NewCaptureSink(core.INFO)

	if err := s.Handle(event(core.DEBUG, "below")); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if err := s.Handle(event(core.ERROR, "kept")); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	got := s.Events()
	if len(got) != 1 || got[0].Message != "kept" {
		t.Fatalf("unexpected capture: %v", got)
	}

	s.Reset()
	if len(s.Events()) != 0 {
		t.Error("Reset must discard events")
	}
}
