package logger

import "errors"

// Traced wraps fn so that calling the wrapper emits "entering <name>"
// at trace level, invokes fn, emits "exited <name>", and returns fn's
// result unchanged.
//
//	bark := logger.Traced(log, "bark", func() int { ... })
func Traced[T any](l *Logger, name string, fn func() T) func() T {
	return func() T {
		l.Trace("entering %s", name)
		result := fn()
		l.Trace("exited %s", name)
		return result
	}
}

// TracedErr is Traced for callables that can fail. The exit event is
// emitted only on a nil error, mirroring a non-raising return.
func TracedErr[T any](l *Logger, name string, fn func() (T, error)) func() (T, error) {
	return func() (T, error) {
		l.Trace("entering %s", name)
		result, err := fn()
		if err == nil {
			l.Trace("exited %s", name)
		}
		return result, err
	}
}

// Intercept wraps fn so that an error it returns is logged with
// captured context and then returned unchanged. Logging is a side
// effect here, never a substitute for error propagation. When kinds is
// non-empty, only errors matching one of them (per errors.Is) are
// logged; others pass through silently.
func Intercept[T any](l *Logger, msg string, fn func() (T, error), kinds ...error) func() (T, error) {
	return func() (T, error) {
		result, err := fn()
		if err != nil && matchesKind(err, kinds) {
			// The wrapped callable's failure must reach the caller even
			// if a sink fails while reporting it.
			_ = l.Exception(err, msg)
		}
		return result, err
	}
}

func matchesKind(err error, kinds []error) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
