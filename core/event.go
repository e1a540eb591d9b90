package core

import (
	"fmt"
	"time"
)

// Node is the piece of a logger that events and layouts need: where the
// event came from, as a dotted path. Declared here so that core does not
// depend on the logger package.
type Node interface {
	Path() string
}

// Event is an immutable record of one log occurrence. The same Event
// pointer is handed to every node on the propagation path and to every
// sink; nothing mutates it after construction.
type Event struct {
	// Logger is the node that originated the event. Ancestors observe
	// the originating logger, not themselves.
	Logger Node
	// Level is the severity at creation time.
	Level Level
	// Message is the unformatted message template.
	Message string
	// Args are positional substitution values for the template.
	Args []any
	// Kwargs are named substitution values for the template.
	Kwargs map[string]any
	// Err carries captured error context, if any.
	Err *ErrorInfo
	// Time is the capture time.
	Time time.Time
}

// NewEvent builds an Event, defaulting Time to the current clock
// reading.
func NewEvent(logger Node, level Level, message string, args []any, kwargs map[string]any, errInfo *ErrorInfo) *Event {
	return &Event{
		Logger:  logger,
		Level:   level,
		Message: message,
		Args:    args,
		Kwargs:  kwargs,
		Err:     errInfo,
		Time:    time.Now(),
	}
}

// String describes the event for debugging. It is not a layout; sinks
// format events through the layout package.
func (e *Event) String() string {
	path := ""
	if e.Logger != nil {
		path = e.Logger.Path()
	}
	return fmt.Sprintf("Event(logger=%q, level=%s, message=%q, args=%v, kwargs=%v, time=%s)",
		path, e.Level, e.Message, e.Args, e.Kwargs, e.Time.Format(time.RFC3339Nano))
}
