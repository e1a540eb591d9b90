package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/layout"
	"github.com/treelog/treelog/sink"
)

// BasicConfig holds the one-call setup for a node.
type BasicConfig struct {
	// Level becomes the node's own level.
	Level core.Level
	// Stream is the output target. Mutually exclusive with Filename.
	// When both are empty, stderr is used.
	Stream io.Writer
	// Filename is opened for appending (created if missing) and used as
	// the output target.
	Filename string
	// Truncate opens Filename truncated instead of appending.
	Truncate bool
	// LayoutFields selects the text layout fields (nil for the default
	// timestamp/path/level/message set).
	LayoutFields []layout.FieldFunc
	// LayoutSep separates layout fields (default: tab).
	LayoutSep string
}

// Basic sets up logging on the node: a single stream sink with a text
// layout, and the given level. It replaces the node's sink list and
// level wholesale, which makes it safe to call repeatedly, but it
// also discards any sink configuration made elsewhere on this node.
func (l *Logger) Basic(cfg BasicConfig) error {
	if cfg.Stream != nil && cfg.Filename != "" {
		return errors.New("basic config: stream and filename are mutually exclusive")
	}

	w := cfg.Stream
	owns := false
	if cfg.Filename != "" {
		flag := os.O_CREATE | os.O_WRONLY | os.O_APPEND
		if cfg.Truncate {
			flag = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		}
		f, err := os.OpenFile(cfg.Filename, flag, 0644)
		if err != nil {
			return errors.Wrapf(err, "basic config: opening %s", cfg.Filename)
		}
		w = f
		owns = true
	}
	if w == nil {
		w = os.Stderr
	}

	// Only a file opened here belongs to the sink. The stderr default
	// and caller-provided streams must survive a Close of this node.
	s := sink.NewStreamSink(sink.StreamConfig{
		Writer:     w,
		OwnsWriter: owns,
		Layout: layout.NewTextLayout(layout.TextConfig{
			Fields: cfg.LayoutFields,
			Sep:    cfg.LayoutSep,
		}),
	})

	l.SetSinks([]sink.Sink{s})
	l.SetLevel(cfg.Level)
	return nil
}
