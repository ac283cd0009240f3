package editor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/quilledit/quill/internal/event"
)

// ErrNoFormatter is returned by Format when no formatter is registered
// for the file's extension.
var ErrNoFormatter = errors.New("no formatter for file type")

// Format pipes the whole buffer through the formatter registered for
// the file's extension and replaces the contents with the result.
// The buffer is left unchanged if the formatter fails.
func (e *Editor) Format(ctx context.Context) error {
	if e.formatters == nil {
		return ErrNoFormatter
	}

	ext := filepath.Ext(e.filename)
	f, ok := e.formatters.For(ext)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoFormatter, ext)
	}

	out, err := f.Format(ctx, e.buf.Text())
	if err != nil {
		return err
	}

	e.buf.SetText(out)
	e.retokenize()
	e.reclampSelections()

	e.publish(event.TopicFileFormatted, event.FileFormatted{
		Path:  e.filename,
		Bytes: len(out),
	})
	return nil
}
