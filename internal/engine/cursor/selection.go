package cursor

import "fmt"

// Selection represents a directional range of text.
// Anchor is the fixed edge; Cursor is the active edge where typing
// occurs. When Anchor == Cursor the selection is just a cursor.
// Selection is an immutable value type.
type Selection struct {
	Anchor Point
	Cursor Point
}

// NewSelection creates a selection from anchor to cursor.
func NewSelection(anchor, cursor Point) Selection {
	return Selection{Anchor: anchor, Cursor: cursor}
}

// NewCursor creates a selection representing just a cursor at p.
func NewCursor(p Point) Selection {
	return Selection{Anchor: p, Cursor: p}
}

// IsCursor returns true if the selection has no extent.
func (s Selection) IsCursor() bool {
	return s.Anchor.Equal(s.Cursor)
}

// Range returns the selection's span with direction discarded.
func (s Selection) Range() Range {
	return Range{From: s.Anchor, To: s.Cursor}
}

// IsForward returns true if the cursor is at or after the anchor.
func (s Selection) IsForward() bool {
	return !s.Cursor.Before(s.Anchor)
}

// IsBackward returns true if the cursor precedes the anchor.
func (s Selection) IsBackward() bool {
	return s.Cursor.Before(s.Anchor)
}

// Collapse returns a cursor at the selection's cursor edge.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Cursor, Cursor: s.Cursor}
}

// Equal returns true if anchor and cursor both match ("strict"
// equality: direction matters).
func (s Selection) Equal(other Selection) bool {
	return s.Anchor.Equal(other.Anchor) && s.Cursor.Equal(other.Cursor)
}

// SameRange returns true if both selections cover the same span,
// regardless of direction.
func (s Selection) SameRange(other Selection) bool {
	return s.Range().Equal(other.Range())
}

// Overlaps returns true if the selections share at least one point.
// Touching edges count.
func (s Selection) Overlaps(other Selection) bool {
	return s.Range().Overlaps(other.Range())
}

// Merge combines s with an overlapping selection, preserving the
// direction of s (the dominant input) and reaching only toward the far
// edge of other. In priority order:
//
//  1. If either selection's range contains the other's, the containing
//     selection is returned unchanged.
//  2. If s is a cursor, it extends toward whichever side of other it
//     touches.
//  3. A forward s keeps its cursor and pulls its anchor back, or keeps
//     its anchor and pushes its cursor forward.
//  4. A backward s does the mirror image.
//
// Panics if the selections do not overlap; merging disjoint selections
// is a programming error.
func (s Selection) Merge(other Selection) Selection {
	if !s.Overlaps(other) {
		panic(fmt.Sprintf("cursor: merge of non-overlapping selections %s and %s", s, other))
	}

	sr, or := s.Range(), other.Range()
	if sr.ContainsRange(or) {
		return s
	}
	if or.ContainsRange(sr) {
		return other
	}

	if s.IsCursor() {
		// By containment above the cursor cannot be inside other;
		// it touches one side of it.
		if s.Anchor.Before(or.Before()) {
			return Selection{Anchor: s.Anchor, Cursor: or.After()}
		}
		return Selection{Anchor: or.Before(), Cursor: s.Cursor}
	}

	if s.Anchor.Before(s.Cursor) {
		if s.Anchor.After(or.Before()) {
			return Selection{Anchor: or.Before(), Cursor: s.Cursor}
		}
		return Selection{Anchor: s.Anchor, Cursor: or.After()}
	}

	if s.Cursor.After(or.Before()) {
		return Selection{Anchor: s.Anchor, Cursor: or.Before()}
	}
	return Selection{Anchor: or.After(), Cursor: s.Cursor}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsCursor() {
		return fmt.Sprintf("Cursor%s", s.Cursor)
	}
	return fmt.Sprintf("Selection(%s->%s)", s.Anchor, s.Cursor)
}
