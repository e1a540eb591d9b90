// Package layout defines how events are rendered into text.
//
// A Layout is a pure function from event to formatted line; it never
// errors. Message substitution is safe by contract: a template that
// does not match its positional args falls back to the raw template,
// and {name} placeholders with no matching kwarg are left intact.
// Suppressing a log line over a formatting slip would lose data.
//
// TextLayout renders an ordered list of field extractors joined by a
// separator (default: timestamp, logger path, level label, message,
// tab separated). Extractors are plain funcs, so callers can reorder
// the built-ins or add their own.
//
// JSONLayout renders one JSON object per event. Values the encoder
// cannot represent are replaced by their fmt rendering rather than
// failing the whole line.
package layout
