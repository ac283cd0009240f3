package buffer

import "fmt"

// Buffer holds the document contents as a raw byte sequence together
// with its derived line index.
//
// Mutating methods (Insert, DeleteByte) deliberately do not rebuild
// the line index: batch operations apply many mutations and rebuild
// once via Reindex. Between public Editor calls the index is always
// current.
type Buffer struct {
	data  []byte
	lines LineIndex
}

// New creates an empty buffer with a single empty line.
func New() *Buffer {
	return &Buffer{lines: NewLineIndex()}
}

// FromString creates a buffer with the given initial content.
func FromString(s string) *Buffer {
	b := New()
	b.SetText(s)
	return b
}

// SetText replaces the entire contents and rebuilds the line index.
func (b *Buffer) SetText(s string) {
	b.data = append(b.data[:0], s...)
	b.lines.Rebuild(b.data)
}

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	return string(b.data)
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	return len(b.data)
}

// LineCount returns the number of lines. Always at least 1.
func (b *Buffer) LineCount() int {
	return b.lines.LineCount()
}

// Line returns the text of a row without its trailing newline.
// Panics if row is out of range.
func (b *Buffer) Line(row int) string {
	start := b.lines.LineStart(row)
	end := b.lineEnd(row)
	return string(b.data[start:end])
}

// LineLen returns the byte length of a row, excluding its newline.
func (b *Buffer) LineLen(row int) int {
	return b.lineEnd(row) - b.lines.LineStart(row)
}

// LineStart returns the byte offset where the given row begins.
func (b *Buffer) LineStart(row int) ByteOffset {
	return b.lines.LineStart(row)
}

// lineEnd returns the offset of the row's newline, or the buffer
// length for the last row.
func (b *Buffer) lineEnd(row int) ByteOffset {
	if row+1 < b.lines.LineCount() {
		return b.lines.LineStart(row+1) - 1
	}
	return len(b.data)
}

// Insert inserts text at the given offset. The line index is not
// rebuilt; call Reindex when the batch is complete.
// Panics if offset is out of [0, Len()].
func (b *Buffer) Insert(offset ByteOffset, text string) {
	if offset < 0 || offset > len(b.data) {
		panic(fmt.Sprintf("buffer: insert offset %d out of range [0,%d]", offset, len(b.data)))
	}
	b.data = append(b.data[:offset], append([]byte(text), b.data[offset:]...)...)
}

// DeleteByte removes the single byte at the given offset. The line
// index is not rebuilt; call Reindex when the batch is complete.
// Panics if offset is out of [0, Len()).
func (b *Buffer) DeleteByte(offset ByteOffset) {
	if offset < 0 || offset >= len(b.data) {
		panic(fmt.Sprintf("buffer: delete offset %d out of range [0,%d)", offset, len(b.data)))
	}
	b.data = append(b.data[:offset], b.data[offset+1:]...)
}

// Reindex rebuilds the line index from the current contents.
func (b *Buffer) Reindex() {
	b.lines.Rebuild(b.data)
}

// PointToOffset converts a row/column position to a byte offset.
//
// The conversion scans the raw bytes and does not consult the line
// index, so it is valid mid-batch while the index is stale. The column
// is not clamped to the row's length except on the last row, where the
// result is clamped to the buffer length (virtual column).
// Panics if p.Row is past the last row or either field is negative.
func (b *Buffer) PointToOffset(p Point) ByteOffset {
	if p.Row < 0 || p.Col < 0 {
		panic(fmt.Sprintf("buffer: negative point %s", p))
	}
	newlines := 0
	lineStart := 0
	for i := 0; i < len(b.data); i++ {
		if b.data[i] == '\n' {
			newlines++
			if newlines == p.Row {
				lineStart = i + 1
			}
		}
	}
	if p.Row > newlines {
		panic(fmt.Sprintf("buffer: row %d out of range [0,%d]", p.Row, newlines))
	}
	offset := lineStart + p.Col
	if p.Row == newlines && offset > len(b.data) {
		offset = len(b.data)
	}
	return offset
}

// OffsetToPoint converts a byte offset to a row/column position using
// the line index. The index must be current (see Reindex).
// Panics if offset is out of [0, Len()].
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	if offset < 0 || offset > len(b.data) {
		panic(fmt.Sprintf("buffer: offset %d out of range [0,%d]", offset, len(b.data)))
	}
	row := b.lines.RowForOffset(offset)
	return Point{Row: row, Col: offset - b.lines.LineStart(row)}
}

// EndPoint returns the point just past the final byte.
func (b *Buffer) EndPoint() Point {
	return b.OffsetToPoint(len(b.data))
}
