package editor

import (
	"strings"

	"github.com/quilledit/quill/internal/engine/buffer"
	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/quilledit/quill/internal/event"
)

// InsertAtCursors inserts text at every cursor in set order.
//
// Each insertion shifts the selections that lie strictly after its
// insertion point: their row advances by the number of newlines in
// text, and a position on the insertion row is carried to the end of
// the inserted text's last segment. Selections at or before the
// insertion point are unaffected by that particular insertion.
//
// The inserting selection itself ends with its cursor at the end of
// the inserted text; a backward selection shifts both edges, a forward
// one keeps its anchor and extends over the insertion.
//
// The line index is rebuilt once, after all insertions, and the
// disjointness of the selection set is asserted.
func (e *Editor) InsertAtCursors(text string) {
	if text == "" {
		return
	}

	newlines := strings.Count(text, "\n")
	trailing := len(text)
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		trailing = len(text) - i - 1
	}

	sels := e.sels.All()
	for i := range sels {
		at := sels[i].Cursor
		e.buf.Insert(e.buf.PointToOffset(at), text)

		for j := range sels {
			if j == i {
				continue
			}
			sels[j].Anchor = shiftAfterInsert(sels[j].Anchor, at, newlines, trailing, len(text))
			sels[j].Cursor = shiftAfterInsert(sels[j].Cursor, at, newlines, trailing, len(text))
		}

		end := insertEnd(at, newlines, trailing, len(text))
		switch {
		case sels[i].IsCursor():
			sels[i] = cursor.NewCursor(end)
		case sels[i].IsBackward():
			// Anchor is strictly after the insertion point.
			sels[i] = cursor.Selection{
				Anchor: shiftAfterInsert(sels[i].Anchor, at, newlines, trailing, len(text)),
				Cursor: end,
			}
		default:
			sels[i] = cursor.Selection{Anchor: sels[i].Anchor, Cursor: end}
		}
	}

	e.buf.Reindex()
	e.retokenize()
	e.sels.ReplaceAll(sels)
	e.sels.AssertDisjoint()

	e.publish(event.TopicBufferInserted, event.TextInserted{
		Text:    text,
		Cursors: len(sels),
	})
}

// shiftAfterInsert returns p adjusted for an insertion at the point
// at. Positions at or before the insertion point are unchanged.
func shiftAfterInsert(p, at buffer.Point, newlines, trailing, textLen int) buffer.Point {
	if !p.After(at) {
		return p
	}
	if p.Row == at.Row {
		if newlines == 0 {
			return buffer.Point{Row: p.Row, Col: p.Col + textLen}
		}
		return buffer.Point{Row: p.Row + newlines, Col: trailing + (p.Col - at.Col)}
	}
	return buffer.Point{Row: p.Row + newlines, Col: p.Col}
}

// insertEnd returns the position just past text inserted at the
// point at.
func insertEnd(at buffer.Point, newlines, trailing, textLen int) buffer.Point {
	if newlines == 0 {
		return buffer.Point{Row: at.Row, Col: at.Col + textLen}
	}
	return buffer.Point{Row: at.Row + newlines, Col: trailing}
}
