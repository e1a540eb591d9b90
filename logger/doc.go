// Package logger is the public API of treelog. Most users only need to
// import this package.
//
// Loggers form a tree of named nodes addressed by dotted paths. Get
// resolves a path lazily: nodes are created on first use and live for
// the process's logging lifetime, so resolving the same path twice
// returns the same node:
//
//	log := logger.Get("dogs.spaniel")
//	log.Info("barked %d times", n)
//
// A node inherits its severity threshold from the nearest ancestor
// with a set level, and an event dispatched on a node propagates
// upward: every ancestor re-applies its *own* effective level, filter
// chain and sinks independently. Raising a child's level silences that
// child's direct emission without muting ancestor aggregation, and a
// filter at any node can veto the event for the rest of the walk.
//
// Logging methods return an error because sink failures (a full disk,
// a failed rotation) surface to the caller rather than being silently
// swallowed; callers that do not care are free to ignore it.
//
// The package keeps a default root; the package-level Get, Basic,
// Info, Error, etc. delegate to it, so simple programs need no setup
// beyond:
//
//	logger.Basic(logger.BasicConfig{Level: logger.WARNING})
package logger
