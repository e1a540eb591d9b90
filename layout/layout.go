package layout

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/treelog/treelog/core"
)

// Layout turns an event into formatted text. Implementations are pure:
// they do not retain the event and they never fail: substitution and
// encoding problems are recovered internally, falling back to a raw
// representation rather than aborting the log call.
//
// The returned text carries no trailing newline; the sink owns the line
// terminator.
type Layout interface {
	Format(e *core.Event) string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Message applies template substitution to an event's message: first
// positional args through fmt, then {name} placeholders from kwargs.
// Both passes are safe: a substitution that cannot be applied leaves
// the template text as-is instead of failing the log call.
func Message(e *core.Event) string {
	msg := e.Message
	if len(e.Args) > 0 {
		msg = safeSprintf(msg, e.Args)
	}
	if len(e.Kwargs) > 0 {
		msg = substituteNamed(msg, e.Kwargs)
	}
	return msg
}

// fmt flags a template mismatch inline instead of panicking. Every such
// marker has the shape "%!(" or "%!v(" with a single verb letter, e.g.
// "%!d(string=x)", "%!(MISSING)", "%!(EXTRA int=3)".
var fmtErrMarker = regexp.MustCompile(`%![a-zA-Z]?\(`)

// safeSprintf substitutes args into format, falling back to the raw
// format string when the substitution goes wrong. Only fmt's own error
// markers count as failure. A "%!" that an argument carried into the
// output must not discard an otherwise valid substitution.
func safeSprintf(format string, args []any) string {
	out := fmt.Sprintf(format, args...)
	if fmtErrMarker.MatchString(out) && !fmtErrMarker.MatchString(format) {
		return format
	}
	return out
}

// substituteNamed replaces {key} placeholders from kwargs. Placeholders
// with no matching key are left intact.
func substituteNamed(s string, kwargs map[string]any) string {
	if !strings.ContainsRune(s, '{') {
		return s
	}
	pairs := make([]string, 0, 2*len(kwargs))
	for k, v := range kwargs {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
