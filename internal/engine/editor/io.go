package editor

import (
	"fmt"
	"os"
	"strings"

	"github.com/quilledit/quill/internal/engine/buffer"
	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/quilledit/quill/internal/event"
)

// Open reads the whole file at path into the buffer, replacing the
// previous contents, and resets the selection set to a single cursor
// at the origin. On read failure the editor state is left unchanged.
// An empty path resets the editor to an empty scratch buffer.
func (e *Editor) Open(path string) error {
	var text string
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		text = string(data)
	}

	e.buf.SetText(text)
	e.filename = path
	e.sels.Reset(cursor.NewCursor(buffer.Point{}))
	e.retokenize()

	e.publish(event.TopicFileOpened, event.FileOpened{
		Path:  path,
		Bytes: len(text),
	})
	return nil
}

// Save writes the full buffer contents to the path recorded at load
// time. It is a no-op if no path is set. With trim-on-save enabled,
// trailing whitespace is removed from every line first.
func (e *Editor) Save() error {
	if e.filename == "" {
		return nil
	}

	if e.trimOnSave {
		e.trimTrailingWhitespace()
	}

	text := e.buf.Text()
	if err := os.WriteFile(e.filename, []byte(text), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", e.filename, err)
	}

	e.publish(event.TopicFileSaved, event.FileSaved{
		Path:  e.filename,
		Bytes: len(text),
	})
	return nil
}

// trimTrailingWhitespace strips spaces and tabs from the end of every
// line, then reclamps the selections into the shrunken buffer.
func (e *Editor) trimTrailingWhitespace() {
	lines := strings.Split(e.buf.Text(), "\n")
	changed := false
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed != line {
			lines[i] = trimmed
			changed = true
		}
	}
	if !changed {
		return
	}

	e.buf.SetText(strings.Join(lines, "\n"))
	e.retokenize()
	e.reclampSelections()
}

// reclampSelections clamps every selection into the current buffer and
// restores the disjointness invariant. Used after whole-buffer
// replacements (trim, format) where per-cursor shifting is undefined.
func (e *Editor) reclampSelections() {
	sels := e.sels.All()
	for i, s := range sels {
		sels[i] = cursor.Selection{
			Anchor: e.clampPoint(s.Anchor),
			Cursor: e.clampPoint(s.Cursor),
		}
	}
	e.sels.ReplaceAll(sels)
	e.sels.MergeOverlapping()
}

// clampPoint clamps a point into the current buffer.
func (e *Editor) clampPoint(p buffer.Point) buffer.Point {
	if last := e.buf.LineCount() - 1; p.Row > last {
		p.Row = last
	}
	return e.clampToRow(p)
}
