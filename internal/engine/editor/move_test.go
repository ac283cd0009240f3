package editor

import (
	"testing"

	"github.com/quilledit/quill/internal/engine/cursor"
)

func TestMoveLeft(t *testing.T) {
	e := newTestEditor(t, "abc", cursor.NewCursor(at(0, 2)))
	e.MoveLeft()

	wantSelections(t, e, cursor.NewCursor(at(0, 1)))
}

func TestMoveLeftWrapsToPreviousRow(t *testing.T) {
	e := newTestEditor(t, "ab\ncd", cursor.NewCursor(at(1, 0)))
	e.MoveLeft()

	wantSelections(t, e, cursor.NewCursor(at(0, 2)))
}

func TestMoveLeftStopsAtOrigin(t *testing.T) {
	e := newTestEditor(t, "abc", cursor.NewCursor(at(0, 0)))
	e.MoveLeft()

	wantSelections(t, e, cursor.NewCursor(at(0, 0)))
}

func TestMoveRight(t *testing.T) {
	e := newTestEditor(t, "abc", cursor.NewCursor(at(0, 1)))
	e.MoveRight()

	wantSelections(t, e, cursor.NewCursor(at(0, 2)))
}

func TestMoveRightWrapsToNextRow(t *testing.T) {
	e := newTestEditor(t, "ab\ncd", cursor.NewCursor(at(0, 2)))
	e.MoveRight()

	wantSelections(t, e, cursor.NewCursor(at(1, 0)))
}

func TestMoveRightStopsAtEnd(t *testing.T) {
	e := newTestEditor(t, "abc", cursor.NewCursor(at(0, 3)))
	e.MoveRight()

	wantSelections(t, e, cursor.NewCursor(at(0, 3)))
}

func TestMoveUpClampsColumn(t *testing.T) {
	e := newTestEditor(t, "ab\ncdef", cursor.NewCursor(at(1, 4)))
	e.MoveUp()

	wantSelections(t, e, cursor.NewCursor(at(0, 2)))
}

func TestMoveUpOnFirstRowOnlyClamps(t *testing.T) {
	e := newTestEditor(t, "abc", cursor.NewCursor(at(0, 9)))
	e.MoveUp()

	wantSelections(t, e, cursor.NewCursor(at(0, 3)))
}

func TestMoveDownClampsColumn(t *testing.T) {
	e := newTestEditor(t, "abcd\nxy", cursor.NewCursor(at(0, 4)))
	e.MoveDown()

	wantSelections(t, e, cursor.NewCursor(at(1, 2)))
}

func TestMoveDownOnLastRowGoesToEnd(t *testing.T) {
	e := newTestEditor(t, "ab\ncd", cursor.NewCursor(at(1, 0)))
	e.MoveDown()

	wantSelections(t, e, cursor.NewCursor(at(1, 2)))
}

func TestMoveVirtualColumnClamps(t *testing.T) {
	e := newTestEditor(t, "abc\nx", cursor.NewCursor(at(0, 9)))
	e.MoveRight()

	wantSelections(t, e, cursor.NewCursor(at(1, 0)))
}

func TestMoveToLineStart(t *testing.T) {
	e := newTestEditor(t, "abc\ndef", cursor.NewCursor(at(1, 2)))
	e.MoveToLineStart()

	wantSelections(t, e, cursor.NewCursor(at(1, 0)))
}

func TestMoveToLineEnd(t *testing.T) {
	e := newTestEditor(t, "abc\ndef", cursor.NewCursor(at(0, 1)))
	e.MoveToLineEnd()

	wantSelections(t, e, cursor.NewCursor(at(0, 3)))
}

func TestMoveCollapsesSelections(t *testing.T) {
	e := newTestEditor(t, "abc",
		cursor.NewSelection(at(0, 0), at(0, 2)),
	)
	e.MoveRight()

	wantSelections(t, e, cursor.NewCursor(at(0, 3)))
}

func TestMoveDoesNotMergeCollidingCursors(t *testing.T) {
	e := newTestEditor(t, "ab",
		cursor.NewCursor(at(0, 0)),
		cursor.NewCursor(at(0, 1)),
	)
	e.MoveLeft()

	wantSelections(t, e,
		cursor.NewCursor(at(0, 0)),
		cursor.NewCursor(at(0, 0)),
	)
}

func TestMoveMultiCursor(t *testing.T) {
	e := newTestEditor(t, "ab\ncd",
		cursor.NewCursor(at(0, 1)),
		cursor.NewCursor(at(1, 1)),
	)
	e.MoveRight()

	wantSelections(t, e,
		cursor.NewCursor(at(0, 2)),
		cursor.NewCursor(at(1, 2)),
	)
}
