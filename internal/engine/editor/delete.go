package editor

import (
	"sort"

	"github.com/quilledit/quill/internal/engine/buffer"
	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/quilledit/quill/internal/event"
)

// DeleteBeforeCursors deletes the byte before every cursor in one
// logical step (backspace). A cursor at offset 0 deletes nothing.
//
// Cursor offsets are deduplicated first so coinciding cursors do not
// double-delete, and the deletions are applied from the highest offset
// down so earlier deletions never invalidate pending ones. Every
// selection is then walked back by its "movement": the number of bytes
// removed at or before its own cursor, computed by rank in the sorted
// deletion list.
//
// Selections that become exact duplicates are removed. Selections that
// end up merely touching are deliberately left unmerged; only Append
// runs the merge pass.
func (e *Editor) DeleteBeforeCursors() {
	sels := e.sels.All()
	n := len(sels)

	curOffs := make([]buffer.ByteOffset, n)
	anchOffs := make([]buffer.ByteOffset, n)
	for i, s := range sels {
		curOffs[i] = e.buf.PointToOffset(s.Cursor)
		anchOffs[i] = e.buf.PointToOffset(s.Anchor)
	}

	// Distinct cursor offsets with a byte before them; each removes
	// the byte immediately preceding it.
	deleted := uniqueDeletable(curOffs)
	for k := len(deleted) - 1; k >= 0; k-- {
		e.buf.DeleteByte(deleted[k] - 1)
	}

	e.buf.Reindex()
	e.retokenize()

	// movement is the number of removed bytes at or before the
	// pre-edit offset.
	movement := func(off buffer.ByteOffset) int {
		return sort.SearchInts(deleted, off+1)
	}

	first := 0
	for i := 1; i < n; i++ {
		if curOffs[i] < curOffs[first] {
			first = i
		}
	}

	out := make([]cursor.Selection, n)
	for i := range sels {
		mv := movement(curOffs[i])
		newCur := curOffs[i] - mv

		switch {
		case sels[i].IsCursor():
			out[i] = cursor.NewCursor(e.buf.OffsetToPoint(newCur))

		case sels[i].IsBackward():
			// Both edges sit at or past the cursor's deletion point.
			out[i] = cursor.Selection{
				Anchor: e.buf.OffsetToPoint(anchOffs[i] - mv),
				Cursor: e.buf.OffsetToPoint(newCur),
			}

		default:
			// Forward range: the anchor already reflects one fewer
			// deletion than the cursor, except for the first
			// selection in file order, whose anchor is untouched.
			amv := 0
			if i != first && mv > 0 {
				amv = mv - 1
			}
			newAnch := anchOffs[i] - amv
			if newCur <= newAnch {
				out[i] = cursor.NewCursor(e.buf.OffsetToPoint(newCur))
			} else {
				out[i] = cursor.Selection{
					Anchor: e.buf.OffsetToPoint(newAnch),
					Cursor: e.buf.OffsetToPoint(newCur),
				}
			}
		}
	}

	e.sels.ReplaceAll(out)
	e.sels.DedupeIdentical()

	e.publish(event.TopicBufferDeleted, event.TextDeleted{
		Removed: len(deleted),
		Cursors: n,
	})
}

// uniqueDeletable returns the distinct offsets greater than zero,
// sorted ascending.
func uniqueDeletable(offs []buffer.ByteOffset) []buffer.ByteOffset {
	seen := make(map[buffer.ByteOffset]struct{}, len(offs))
	out := make([]buffer.ByteOffset, 0, len(offs))
	for _, off := range offs {
		if off <= 0 {
			continue
		}
		if _, ok := seen[off]; ok {
			continue
		}
		seen[off] = struct{}{}
		out = append(out, off)
	}
	sort.Ints(out)
	return out
}
