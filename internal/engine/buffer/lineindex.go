package buffer

import (
	"fmt"
	"sort"
)

// LineIndex maps row numbers to the byte offsets where rows begin.
// Entry 0 is always 0; entry i is the offset immediately following the
// i-th newline. The index is rebuilt by a full scan after a mutation,
// so it always reflects the buffer it was last rebuilt from.
type LineIndex struct {
	starts []ByteOffset
}

// NewLineIndex creates an index describing an empty buffer:
// a single line starting at offset 0.
func NewLineIndex() LineIndex {
	return LineIndex{starts: []ByteOffset{0}}
}

// Rebuild rescans text and recomputes all line starts.
func (li *LineIndex) Rebuild(text []byte) {
	li.starts = li.starts[:0]
	li.starts = append(li.starts, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			li.starts = append(li.starts, ByteOffset(i)+1)
		}
	}
}

// LineCount returns the number of lines. Always at least 1.
func (li *LineIndex) LineCount() int {
	return len(li.starts)
}

// LineStart returns the byte offset where the given row begins.
// Panics if row is out of range.
func (li *LineIndex) LineStart(row int) ByteOffset {
	if row < 0 || row >= len(li.starts) {
		panic(fmt.Sprintf("lineindex: row %d out of range [0,%d)", row, len(li.starts)))
	}
	return li.starts[row]
}

// RowForOffset returns the row containing the given offset: the last
// row whose start is at or before offset.
func (li *LineIndex) RowForOffset(offset ByteOffset) int {
	// First start past offset, minus one.
	i := sort.Search(len(li.starts), func(k int) bool {
		return li.starts[k] > offset
	})
	return i - 1
}

// Starts returns a copy of all line start offsets.
func (li *LineIndex) Starts() []ByteOffset {
	out := make([]ByteOffset, len(li.starts))
	copy(out, li.starts)
	return out
}
