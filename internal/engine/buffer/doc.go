// Package buffer provides the text buffer at the core of the editing
// engine: a raw byte sequence, a derived line index, and conversion
// between the two coordinate systems the engine uses.
//
// Position Types:
//
//   - ByteOffset: absolute byte position in the buffer. The offset
//     equal to the buffer length is valid and denotes end of buffer.
//   - Point: row/column position, 0-indexed, column measured in bytes
//     from the start of the row.
//
// The line index is rebuilt by a full scan after every mutation; it
// always starts with offset 0, is strictly increasing, and has at
// least one entry (an empty buffer has exactly one empty line).
//
// A Point held by a caller is not guaranteed to be clamped to the
// length of its row. Vertical cursor movement can produce a "virtual
// column" past the end of the last row; movement and conversion code
// clamp where needed, the data model never does.
//
// The buffer is exclusively owned by a single Editor and is not safe
// for concurrent use. Out-of-range arguments to conversion or mutation
// methods are programming errors and panic rather than return errors.
package buffer
