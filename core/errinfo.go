package core

import (
	"runtime/debug"
	"strings"
)

// ErrorInfo is captured error context for error-reporting log calls: the
// error itself plus the goroutine stack at capture time.
type ErrorInfo struct {
	Err   error
	Stack []byte
}

// CaptureError captures the current goroutine stack together with err.
// err may be nil; the stack alone still locates the call site.
func CaptureError(err error) *ErrorInfo {
	return &ErrorInfo{
		Err:   err,
		Stack: debug.Stack(),
	}
}

// Trace renders the captured context as trace lines, error first.
func (i *ErrorInfo) Trace() []string {
	if i == nil {
		return nil
	}
	var lines []string
	if i.Err != nil {
		lines = append(lines, i.Err.Error())
	}
	stack := strings.TrimRight(string(i.Stack), "\n")
	if stack != "" {
		lines = append(lines, strings.Split(stack, "\n")...)
	}
	return lines
}
