package editor

import (
	"github.com/quilledit/quill/internal/engine/buffer"
	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/quilledit/quill/internal/event"
)

// Movement operations first collapse every selection to its cursor,
// then reposition each cursor by one unit. Cursors that collide
// through movement are intentionally not merged; only AppendSelection
// runs the merge pass.

// MoveLeft moves every cursor one byte left, wrapping to the end of
// the previous row at column 0.
func (e *Editor) MoveLeft() {
	e.moveEach(func(p buffer.Point) buffer.Point {
		off := e.buf.PointToOffset(e.clampToRow(p))
		if off > 0 {
			return e.buf.OffsetToPoint(off - 1)
		}
		return e.buf.OffsetToPoint(0)
	})
}

// MoveRight moves every cursor one byte right, wrapping to column 0 of
// the next row past the end of a row.
func (e *Editor) MoveRight() {
	e.moveEach(func(p buffer.Point) buffer.Point {
		off := e.buf.PointToOffset(e.clampToRow(p))
		if off < e.buf.Len() {
			return e.buf.OffsetToPoint(off + 1)
		}
		return e.buf.OffsetToPoint(off)
	})
}

// MoveUp moves every cursor one row up, clamping the column to the
// target row's length. On the first row the column is only clamped.
func (e *Editor) MoveUp() {
	e.moveEach(func(p buffer.Point) buffer.Point {
		if p.Row > 0 {
			p.Row--
		}
		return e.clampToRow(p)
	})
}

// MoveDown moves every cursor one row down, clamping the column to the
// target row's length. On the last row the cursor moves to the end of
// the buffer.
func (e *Editor) MoveDown() {
	e.moveEach(func(p buffer.Point) buffer.Point {
		if p.Row < e.buf.LineCount()-1 {
			p.Row++
			return e.clampToRow(p)
		}
		return e.buf.EndPoint()
	})
}

// MoveToLineStart moves every cursor to column 0 of its row.
func (e *Editor) MoveToLineStart() {
	e.moveEach(func(p buffer.Point) buffer.Point {
		return buffer.Point{Row: p.Row, Col: 0}
	})
}

// MoveToLineEnd moves every cursor past the last byte of its row.
func (e *Editor) MoveToLineEnd() {
	e.moveEach(func(p buffer.Point) buffer.Point {
		return buffer.Point{Row: p.Row, Col: e.buf.LineLen(p.Row)}
	})
}

// moveEach collapses every selection to its cursor and applies move to
// each cursor position.
func (e *Editor) moveEach(move func(buffer.Point) buffer.Point) {
	sels := e.sels.All()
	for i := range sels {
		sels[i] = cursor.NewCursor(move(sels[i].Cursor))
	}
	e.sels.ReplaceAll(sels)

	e.publish(event.TopicSelectionMoved, event.SelectionMoved{
		Primary: e.sels.Primary().Cursor,
		Count:   e.sels.Count(),
	})
}

// clampToRow clamps a possibly virtual column to the row's length.
func (e *Editor) clampToRow(p buffer.Point) buffer.Point {
	if n := e.buf.LineLen(p.Row); p.Col > n {
		p.Col = n
	}
	return p
}
