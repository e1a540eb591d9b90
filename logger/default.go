package logger

import (
	"sync"

	"github.com/treelog/treelog/core"
)

var (
	defaultRoot *Logger
	defaultMu   sync.RWMutex
)

func init() {
	defaultRoot = New()
}

// Default returns the process-wide root logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRoot
}

// SetDefault replaces the process-wide root logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRoot = l
}

// Package-level convenience functions using the default root

// Get resolves a dotted path against the default root.
func Get(path string) *Logger {
	return Default().Get(path)
}

// Basic configures the default root.
func Basic(cfg BasicConfig) error {
	return Default().Basic(cfg)
}

// Trace logs a trace message on the default root.
func Trace(msg string, args ...any) error {
	return Default().Trace(msg, args...)
}

// Debug logs a debug message on the default root.
func Debug(msg string, args ...any) error {
	return Default().Debug(msg, args...)
}

// Info logs an info message on the default root.
func Info(msg string, args ...any) error {
	return Default().Info(msg, args...)
}

// Warning logs a warning message on the default root.
func Warning(msg string, args ...any) error {
	return Default().Warning(msg, args...)
}

// Error logs an error message on the default root.
func Error(msg string, args ...any) error {
	return Default().Error(msg, args...)
}

// Exception logs error context on the default root.
func Exception(err error, msg string, args ...any) error {
	return Default().Exception(err, msg, args...)
}

// Log logs at an explicit level on the default root.
func Log(level core.Level, msg string, args ...any) error {
	return Default().Log(level, msg, args...)
}
