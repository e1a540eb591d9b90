package layout

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/treelog/treelog/core"
)

// JSONLayout renders each event as a single JSON object with the fields
// time, message (substituted), args, kwargs, level and traceback.
// Traceback is null unless the event carries error context.
type JSONLayout struct {
	timestampFormat string
}

// JSONConfig holds JSONLayout configuration.
type JSONConfig struct {
	// TimestampFormat specifies the time format (empty for RFC3339Nano).
	TimestampFormat string
}

// NewJSONLayout creates a JSON layout.
func NewJSONLayout(cfg JSONConfig) *JSONLayout {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONLayout{timestampFormat: cfg.TimestampFormat}
}

// jsonEvent fixes the key order of the emitted object.
type jsonEvent struct {
	Time      string         `json:"time"`
	Message   string         `json:"message"`
	Args      []any          `json:"args"`
	Kwargs    map[string]any `json:"kwargs"`
	Level     string         `json:"level"`
	Traceback []string       `json:"traceback"`
}

// Format renders the event as one JSON line. Values that the encoder
// rejects (channels, functions, cyclic structures) are replaced by
// their fmt representation instead of failing the log call.
func (j *JSONLayout) Format(e *core.Event) string {
	obj := jsonEvent{
		Time:      e.Time.Format(j.timestampFormat),
		Message:   Message(e),
		Args:      encodableSlice(e.Args),
		Kwargs:    encodableMap(e.Kwargs),
		Level:     e.Level.String(),
		Traceback: e.Err.Trace(),
	}

	out, err := json.Marshal(obj)
	if err != nil {
		// Only reachable if a value's MarshalJSON misbehaves after the
		// per-value check passed; degrade to the message alone.
		fallback, _ := json.Marshal(jsonEvent{
			Time:    obj.Time,
			Message: obj.Message,
			Level:   obj.Level,
		})
		return string(fallback)
	}
	return string(out)
}

// encodable returns v if the JSON encoder accepts it, otherwise its
// textual representation.
func encodable(v any) any {
	if _, err := json.Marshal(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return v
}

func encodableSlice(vals []any) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = encodable(v)
	}
	return out
}

func encodableMap(vals map[string]any) map[string]any {
	out := make(map[string]any, len(vals))
	for k, v := range vals {
		out[k] = encodable(v)
	}
	return out
}
