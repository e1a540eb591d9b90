package core

import "strings"

// Level represents the severity of a log event.
//
// NOTSET is the unset sentinel: a logger whose level is NOTSET inherits
// its threshold from its nearest configured ancestor, and a NOTSET root
// admits everything.
type Level int32

const (
	// NOTSET means "no threshold configured here".
	NOTSET Level = 0
	// TRACE for very fine-grained flow tracing
	TRACE Level = 5
	// DEBUG for detailed debugging information
	DEBUG Level = 10
	// INFO for general informational messages
	INFO Level = 20
	// WARNING for warning messages
	WARNING Level = 30
	// ERROR for error messages
	ERROR Level = 40
)

// String returns the label of the level.
func (l Level) String() string {
	switch l {
	case NOTSET:
		return "NOTSET"
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a label to a Level. Unknown labels map to NOTSET.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARNING
	case "ERROR":
		return ERROR
	default:
		return NOTSET
	}
}
