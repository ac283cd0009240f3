package event

import "github.com/quilledit/quill/internal/engine/buffer"

// TextInserted is published after a batch insertion completes.
type TextInserted struct {
	// Text is the inserted text (once per cursor).
	Text string

	// Cursors is the number of cursors that inserted.
	Cursors int
}

// TextDeleted is published after a batch backspace completes.
type TextDeleted struct {
	// Removed is the number of bytes removed from the buffer.
	Removed int

	// Cursors is the number of cursors in the batch.
	Cursors int
}

// FileOpened is published after a file is loaded into the buffer.
// An empty Path means the editor was reset to a scratch buffer.
type FileOpened struct {
	Path  string
	Bytes int
}

// FileSaved is published after the buffer is written to disk.
type FileSaved struct {
	Path  string
	Bytes int
}

// FileFormatted is published after an external formatter rewrote the
// buffer contents.
type FileFormatted struct {
	Path  string
	Bytes int
}

// SelectionAppended is published after a selection is added and the
// overlap merge has run.
type SelectionAppended struct {
	// Primary is the primary selection cursor after the merge.
	Primary buffer.Point

	// Count is the resulting number of selections.
	Count int
}

// SelectionMoved is published after a movement operation.
type SelectionMoved struct {
	// Primary is the primary cursor position after the move.
	Primary buffer.Point

	// Count is the number of cursors moved.
	Count int
}
