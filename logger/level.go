package logger

import "github.com/treelog/treelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NOTSET  = core.NOTSET
	TRACE   = core.TRACE
	DEBUG   = core.DEBUG
	INFO    = core.INFO
	WARNING = core.WARNING
	ERROR   = core.ERROR
)

// ParseLevel converts a label to a Level
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
