package editor

import (
	"github.com/quilledit/quill/internal/engine/buffer"
	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/quilledit/quill/internal/engine/token"
	"github.com/quilledit/quill/internal/event"
	"github.com/quilledit/quill/internal/format"
)

// eventSource identifies the editor in published event metadata.
const eventSource = "editor"

// Editor owns the buffer, the line index, and the selection set, and
// exposes the engine's mutation and query surface.
type Editor struct {
	buf        *buffer.Buffer
	sels       *cursor.Set
	tokenizer  token.Tokenizer
	tokens     []token.Token
	filename   string
	bus        *event.Bus
	formatters *format.Registry
	tabWidth   int
	trimOnSave bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithBus attaches an event bus; the editor publishes buffer,
// selection, and file events to it.
func WithBus(bus *event.Bus) Option {
	return func(e *Editor) {
		e.bus = bus
	}
}

// WithTokenizer replaces the trivial built-in tokenizer.
func WithTokenizer(t token.Tokenizer) Option {
	return func(e *Editor) {
		if t != nil {
			e.tokenizer = t
		}
	}
}

// WithFormatters attaches a formatter registry used by Format.
func WithFormatters(r *format.Registry) Option {
	return func(e *Editor) {
		e.formatters = r
	}
}

// WithTabWidth sets the tab width reported to display layers.
func WithTabWidth(width int) Option {
	return func(e *Editor) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// WithTrimOnSave trims trailing whitespace from every line when the
// buffer is saved.
func WithTrimOnSave(enable bool) Option {
	return func(e *Editor) {
		e.trimOnSave = enable
	}
}

// New creates an editor with an empty buffer, a single cursor at the
// origin, one empty line, and one trivial token.
func New(opts ...Option) *Editor {
	e := &Editor{
		buf:       buffer.New(),
		sels:      cursor.NewSetAt(buffer.Point{}),
		tokenizer: token.Plain{},
		tabWidth:  4,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.retokenize()
	return e
}

// Text returns the full buffer contents.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// Len returns the buffer length in bytes.
func (e *Editor) Len() buffer.ByteOffset {
	return e.buf.Len()
}

// Line returns the text of a row without its trailing newline.
func (e *Editor) Line(row int) string {
	return e.buf.Line(row)
}

// LineCount returns the number of lines. Always at least 1.
func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

// Filename returns the path the buffer was loaded from, if any.
func (e *Editor) Filename() string {
	return e.filename
}

// TabWidth returns the configured tab display width.
func (e *Editor) TabWidth() int {
	return e.tabWidth
}

// Tokens returns a copy of the current token stream.
func (e *Editor) Tokens() []token.Token {
	out := make([]token.Token, len(e.tokens))
	copy(out, e.tokens)
	return out
}

// PrimarySelection returns the primary selection.
func (e *Editor) PrimarySelection() cursor.Selection {
	return e.sels.Primary()
}

// Selections returns a copy of all selections.
func (e *Editor) Selections() []cursor.Selection {
	return e.sels.All()
}

// SelectionCount returns the number of selections.
func (e *Editor) SelectionCount() int {
	return e.sels.Count()
}

// PointToOffset converts a row/column position to a byte offset.
func (e *Editor) PointToOffset(p buffer.Point) buffer.ByteOffset {
	return e.buf.PointToOffset(p)
}

// OffsetToPoint converts a byte offset to a row/column position.
func (e *Editor) OffsetToPoint(offset buffer.ByteOffset) buffer.Point {
	return e.buf.OffsetToPoint(offset)
}

// AppendSelection adds a selection, merging it with any selections it
// overlaps (touching edges count) until the set is disjoint again.
func (e *Editor) AppendSelection(sel cursor.Selection) {
	e.sels.Append(sel)
	e.publish(event.TopicSelectionAppended, event.SelectionAppended{
		Primary: e.sels.Primary().Cursor,
		Count:   e.sels.Count(),
	})
}

// retokenize reruns the tokenizer over the current buffer.
func (e *Editor) retokenize() {
	e.tokens = e.tokenizer.Tokenize(e.buf.Text())
}

// publish sends an event if a bus is attached.
func (e *Editor) publish(topic event.Topic, payload any) {
	if e.bus != nil {
		e.bus.Publish(event.NewEnvelope(topic, payload, eventSource))
	}
}
