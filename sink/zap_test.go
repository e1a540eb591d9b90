package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/treelog/treelog/core"
)

func TestZapSink_LevelMapping(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	s := NewZapSink(zap.New(obs), core.NOTSET)

	require.NoError(t, s.Handle(event(core.TRACE, "t")))
	require.NoError(t, s.Handle(event(core.DEBUG, "d")))
	require.NoError(t, s.Handle(event(core.INFO, "i")))
	require.NoError(t, s.Handle(event(core.WARNING, "w")))
	require.NoError(t, s.Handle(event(core.ERROR, "e")))

	entries := logs.All()
	require.Len(t, entries, 5)
	levels := make([]zapcore.Level, len(entries))
	for i, entry := range entries {
		levels[i] = entry.Level
	}
	assert.Equal(t, []zapcore.Level{
		zapcore.DebugLevel,
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
	}, levels)
}

func TestZapSink_FieldsAndGate(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	s := NewZapSink(zap.New(obs), core.WARNING)

	require.NoError(t, s.Handle(event(core.INFO, "gated")))
	assert.Zero(t, logs.Len(), "below-threshold event must not reach zap")

	e := event(core.ERROR, "disk %s failing")
	e.Args = []any{"sda"}
	e.Kwargs = map[string]any{"host": "db-1"}
	require.NoError(t, s.Handle(e))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "disk sda failing", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "red.blue", fields["logger"])
	assert.Equal(t, "sda", fields["arg0"])
	assert.Equal(t, "db-1", fields["host"])
}
