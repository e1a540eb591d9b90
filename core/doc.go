// Package core defines the shared types used across the treelog engine.
//
// It provides the Level type for severity thresholds, the Event type
// that represents a single log occurrence, and ErrorInfo for captured
// error context.
//
// An Event is created once per log call and treated as immutable: the
// same pointer travels unmodified through every ancestor on the
// propagation path and into every sink. Sinks that need to keep events
// beyond the dispatch call must copy or buffer them explicitly.
//
// Level values are sparse integers (NOTSET=0 through ERROR=40) so that
// callers can define intermediate severities without colliding with the
// built-in ones. NOTSET doubles as the unset sentinel for inherited
// thresholds.
package core
