// Package sink provides the Sink interface and its built-in
// implementations for emitting accepted events.
//
// All sinks are synchronous: Handle runs to completion on the calling
// goroutine, and a write failure propagates to the log caller instead
// of being swallowed. Each sink serializes its own write path with a
// mutex, so loggers sharing one sink instance never interleave partial
// lines.
//
// Built-in sinks:
//
//   - StreamSink writes laid-out events to any io.Writer, flushing per
//     event.
//   - RotateByTimeSink derives its file path from the current time via
//     a time layout template and swaps files when the derived path
//     changes; the rotation check, stream swap and write share one lock
//     acquisition.
//   - CaptureSink buffers events in memory, mainly for tests.
//   - ZapSink bridges events into a go.uber.org/zap backend.
//
// Every sink also carries its own level threshold, a second gate
// independent of the logger tree's levels.
package sink
