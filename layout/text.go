package layout

import (
	"time"

	"github.com/treelog/treelog/core"
)

// FieldFunc extracts one text field from an event.
type FieldFunc func(e *core.Event) string

// TimeField renders the event timestamp.
func TimeField(e *core.Event) string {
	return e.Time.Format(time.RFC3339)
}

// LoggerPathField renders the dotted path of the originating logger.
func LoggerPathField(e *core.Event) string {
	if e.Logger == nil {
		return ""
	}
	return e.Logger.Path()
}

// LevelField renders the level label.
func LevelField(e *core.Event) string {
	return e.Level.String()
}

// MessageField renders the message with safe template substitution.
func MessageField(e *core.Event) string {
	return Message(e)
}

// TextLayout joins an ordered list of field extractors with a
// separator. The default field order is timestamp, logger path, level
// label, substituted message. One line per event, tab separated.
type TextLayout struct {
	fields []FieldFunc
	sep    string
}

// TextConfig holds TextLayout configuration.
type TextConfig struct {
	// Fields are the extractors to apply, in output order. Nil means
	// the default set.
	Fields []FieldFunc
	// Sep separates fields (default: tab).
	Sep string
}

// NewTextLayout creates a text layout.
func NewTextLayout(cfg TextConfig) *TextLayout {
	if cfg.Fields == nil {
		cfg.Fields = []FieldFunc{TimeField, LoggerPathField, LevelField, MessageField}
	}
	if cfg.Sep == "" {
		cfg.Sep = "\t"
	}
	return &TextLayout{fields: cfg.Fields, sep: cfg.Sep}
}

// Format renders the event as one separator-joined line. The field
// count and order are fixed at construction, so output is stable across
// events.
func (t *TextLayout) Format(e *core.Event) string {
	buf := getBuffer()
	defer putBuffer(buf)

	for i, field := range t.fields {
		if i > 0 {
			buf.WriteString(t.sep)
		}
		buf.WriteString(field(e))
	}
	return buf.String()
}
