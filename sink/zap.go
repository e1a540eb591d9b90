package sink

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/layout"
)

// ZapSink forwards accepted events to a zap backend, so a logger tree
// can feed an existing zap pipeline (encoders, cores, tees) without
// re-plumbing call sites.
type ZapSink struct {
	z     *zap.Logger
	level core.Level
}

// NewZapSink creates a sink that bridges into z. Events below level are
// ignored before reaching zap.
func NewZapSink(z *zap.Logger, level core.Level) *ZapSink {
	return &ZapSink{z: z, level: level}
}

// Handle maps the event onto the nearest zap level and attaches the
// originating logger path, args and kwargs as fields.
func (s *ZapSink) Handle(e *core.Event) error {
	if e.Level < s.level {
		return nil
	}

	fields := make([]zap.Field, 0, len(e.Kwargs)+len(e.Args)+2)
	if e.Logger != nil {
		if path := e.Logger.Path(); path != "" {
			fields = append(fields, zap.String("logger", path))
		}
	}
	for i, arg := range e.Args {
		fields = append(fields, zap.Any("arg"+strconv.Itoa(i), arg))
	}
	for k, v := range e.Kwargs {
		fields = append(fields, zap.Any(k, v))
	}
	if e.Err != nil && e.Err.Err != nil {
		fields = append(fields, zap.Error(e.Err.Err))
	}

	msg := layout.Message(e)
	switch {
	case e.Level >= core.ERROR:
		s.z.Error(msg, fields...)
	case e.Level >= core.WARNING:
		s.z.Warn(msg, fields...)
	case e.Level >= core.INFO:
		s.z.Info(msg, fields...)
	default:
		s.z.Debug(msg, fields...)
	}
	return nil
}

// Close flushes the zap backend.
func (s *ZapSink) Close() error {
	return s.z.Sync()
}
