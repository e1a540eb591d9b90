package logger

import (
	"slices"
	"strings"
	"sync"
	"weak"

	"go.uber.org/multierr"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/sink"
)

// Filter is a predicate over an event. A node's filters run in
// registration order; the first one returning false vetoes the event at
// that node and stops propagation to its ancestors.
type Filter func(e *core.Event) bool

// EventFactory constructs the events a subtree emits. Overriding it on
// a node changes the event type for loggers created under that node.
type EventFactory func(l *Logger, level core.Level, msg string, args []any, kwargs map[string]any, errInfo *core.ErrorInfo) *core.Event

// defaultFactory builds plain core events.
func defaultFactory(l *Logger, level core.Level, msg string, args []any, kwargs map[string]any, errInfo *core.ErrorInfo) *core.Event {
	return core.NewEvent(l, level, msg, args, kwargs, errInfo)
}

// KV carries named substitution values. Passed as the trailing log
// argument, it becomes the event's kwargs:
//
//	log.Info("user {user} logged in", logger.KV{"user": name})
type KV map[string]any

// Logger is one node in the logger tree, identified by the dotted path
// of its ancestors' names. Nodes are created lazily by Get, live for
// the process's logging lifetime, and dispatch events upward through
// their ancestors.
//
// The back-reference to the parent is weak: a node does not keep its
// parent alive, and if the parent is collected the upward walk simply
// ends there.
type Logger struct {
	name   string
	parent weak.Pointer[Logger]

	// mu guards children; the existence check and the insert are one
	// atomic step so concurrent Gets of a fresh path agree on a single
	// node.
	mu       sync.Mutex
	children map[string]*Logger

	// cfgMu guards the mutable configuration below. Dispatch snapshots
	// under the read lock, so configuration changes become visible to
	// subsequent calls without being torn mid-call.
	cfgMu   sync.RWMutex
	level   core.Level
	filters []Filter
	sinks   []sink.Sink
	factory EventFactory
	onSkip  func(e *core.Event)
}

// New creates a root logger: empty name, no parent, unset level.
func New() *Logger {
	return &Logger{factory: defaultFactory}
}

// Get resolves a dotted path relative to this node, lazily creating any
// missing nodes. The empty path resolves to the node itself; segments
// are trimmed of whitespace and empty segments are skipped, so
// " a. b " resolves identically to "a.b". Resolution is idempotent:
// the same effective path always yields the same node. The tree is a
// cache, not a factory.
func (l *Logger) Get(path string) *Logger {
	node := l
	for _, seg := range strings.Split(path, ".") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		node = node.child(seg)
	}
	return node
}

// child looks up or creates the named child under l.mu.
func (l *Logger) child(name string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.children[name]; ok {
		return c
	}
	c := &Logger{
		name:    name,
		parent:  weak.Make(l),
		factory: l.eventFactory(),
	}
	if l.children == nil {
		l.children = make(map[string]*Logger)
	}
	l.children[name] = c
	return c
}

// Parent returns the parent node, or nil for the root or when the
// parent has been collected.
func (l *Logger) Parent() *Logger {
	return l.parent.Value()
}

// Name returns the node's own name segment; empty for the root.
func (l *Logger) Name() string {
	return l.name
}

// Path reconstructs the dotted name: ancestor names joined root to
// leaf, the root's empty name excluded.
func (l *Logger) Path() string {
	var names []string
	for n := l; n != nil; n = n.Parent() {
		if n.name != "" {
			names = append(names, n.name)
		}
	}
	slices.Reverse(names)
	return strings.Join(names, ".")
}

// Level returns the node's own level, NOTSET when unset.
func (l *Logger) Level() core.Level {
	l.cfgMu.RLock()
	defer l.cfgMu.RUnlock()
	return l.level
}

// SetLevel sets the node's own level. NOTSET reverts to inheriting.
func (l *Logger) SetLevel(level core.Level) {
	l.cfgMu.Lock()
	l.level = level
	l.cfgMu.Unlock()
}

// EffectiveLevel is the threshold that actually applies here: the own
// level when set, otherwise the nearest ancestor's, otherwise NOTSET
// (admit everything). Recomputed on every call so children observe
// ancestor changes immediately.
func (l *Logger) EffectiveLevel() core.Level {
	if lvl := l.Level(); lvl != core.NOTSET {
		return lvl
	}
	if p := l.Parent(); p != nil {
		return p.EffectiveLevel()
	}
	return core.NOTSET
}

// AddFilter appends a filter to the node's chain.
func (l *Logger) AddFilter(f Filter) {
	l.cfgMu.Lock()
	l.filters = append(slices.Clip(l.filters), f)
	l.cfgMu.Unlock()
}

// SetFilters replaces the node's filter chain.
func (l *Logger) SetFilters(filters []Filter) {
	l.cfgMu.Lock()
	l.filters = slices.Clone(filters)
	l.cfgMu.Unlock()
}

// AddSink appends a sink to the node's chain.
func (l *Logger) AddSink(s sink.Sink) {
	l.cfgMu.Lock()
	l.sinks = append(slices.Clip(l.sinks), s)
	l.cfgMu.Unlock()
}

// SetSinks replaces the node's sink chain.
func (l *Logger) SetSinks(sinks []sink.Sink) {
	l.cfgMu.Lock()
	l.sinks = slices.Clone(sinks)
	l.cfgMu.Unlock()
}

// Sinks returns a snapshot of the node's sink chain.
func (l *Logger) Sinks() []sink.Sink {
	l.cfgMu.RLock()
	defer l.cfgMu.RUnlock()
	return slices.Clone(l.sinks)
}

// SetEventFactory overrides event construction for this node and for
// children created after the call.
func (l *Logger) SetEventFactory(f EventFactory) {
	l.cfgMu.Lock()
	l.factory = f
	l.cfgMu.Unlock()
}

// SetSkipHook installs a hook invoked whenever this node's gating
// (level or filters) skips an event. Skipping is a silent success, not
// an error; the hook is the only way to observe it.
func (l *Logger) SetSkipHook(hook func(e *core.Event)) {
	l.cfgMu.Lock()
	l.onSkip = hook
	l.cfgMu.Unlock()
}

func (l *Logger) eventFactory() EventFactory {
	l.cfgMu.RLock()
	defer l.cfgMu.RUnlock()
	return l.factory
}

func (l *Logger) filterSnapshot() []Filter {
	l.cfgMu.RLock()
	defer l.cfgMu.RUnlock()
	return l.filters
}

func (l *Logger) sinkSnapshot() []sink.Sink {
	l.cfgMu.RLock()
	defer l.cfgMu.RUnlock()
	return l.sinks
}

func (l *Logger) skipped(e *core.Event) {
	l.cfgMu.RLock()
	hook := l.onSkip
	l.cfgMu.RUnlock()
	if hook != nil {
		hook(e)
	}
}

// Dispatch walks the event from this node to the root. Every node on
// the way applies its own gating independently: its effective level
// first, then its filters in order, then its sinks in order. A level
// or filter rejection stops the walk at that node; a sink error
// propagates to the caller. The event itself is never copied or
// modified, so every ancestor observes the originating logger.
func (l *Logger) Dispatch(e *core.Event) error {
	if l.EffectiveLevel() > e.Level {
		l.skipped(e)
		return nil
	}
	for _, f := range l.filterSnapshot() {
		if !f(e) {
			l.skipped(e)
			return nil
		}
	}
	for _, s := range l.sinkSnapshot() {
		if err := s.Handle(e); err != nil {
			return err
		}
	}
	if p := l.Parent(); p != nil {
		return p.Dispatch(e)
	}
	return nil
}

// Log builds an event at the given level and dispatches it. A trailing
// KV argument becomes the event's kwargs; everything else is positional
// substitution input for the message template.
func (l *Logger) Log(level core.Level, msg string, args ...any) error {
	return l.emit(level, msg, args, nil)
}

func (l *Logger) emit(level core.Level, msg string, args []any, errInfo *core.ErrorInfo) error {
	args, kwargs := splitKwargs(args)
	e := l.eventFactory()(l, level, msg, args, kwargs, errInfo)
	return l.Dispatch(e)
}

// splitKwargs pops trailing KV arguments off the positional list and
// merges them into a kwargs map. The last KV wins on key collisions.
func splitKwargs(args []any) ([]any, map[string]any) {
	var kwargs map[string]any
	for len(args) > 0 {
		kv, ok := args[len(args)-1].(KV)
		if !ok {
			break
		}
		if kwargs == nil {
			kwargs = make(map[string]any, len(kv))
		}
		for k, v := range kv {
			if _, exists := kwargs[k]; !exists {
				kwargs[k] = v
			}
		}
		args = args[:len(args)-1]
	}
	if len(args) == 0 {
		args = nil
	}
	return args, kwargs
}

// Trace logs a trace message.
func (l *Logger) Trace(msg string, args ...any) error {
	return l.Log(core.TRACE, msg, args...)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) error {
	return l.Log(core.DEBUG, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) error {
	return l.Log(core.INFO, msg, args...)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string, args ...any) error {
	return l.Log(core.WARNING, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) error {
	return l.Log(core.ERROR, msg, args...)
}

// Exception logs at error level with captured error context: err plus
// the current goroutine stack. err may be nil; the stack alone still
// locates the call site.
func (l *Logger) Exception(err error, msg string, args ...any) error {
	return l.emit(core.ERROR, msg, args, core.CaptureError(err))
}

// Close closes the sinks of this node and of every node below it,
// aggregating failures. The tree structure itself stays usable.
func (l *Logger) Close() error {
	var err error
	for _, s := range l.Sinks() {
		err = multierr.Append(err, s.Close())
	}
	l.mu.Lock()
	children := make([]*Logger, 0, len(l.children))
	for _, c := range l.children {
		children = append(children, c)
	}
	l.mu.Unlock()
	for _, c := range children {
		err = multierr.Append(err, c.Close())
	}
	return err
}
