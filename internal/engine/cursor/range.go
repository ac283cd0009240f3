package cursor

import (
	"fmt"

	"github.com/quilledit/quill/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Range represents an unordered pair of points.
// From and To carry no cursor/anchor semantics; use Before and After
// to pick the edge by document order.
type Range struct {
	From Point
	To   Point
}

// NewRange creates a range between two points, in either order.
func NewRange(from, to Point) Range {
	return Range{From: from, To: to}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s-%s]", r.Before(), r.After())
}

// Before returns the earlier of the two edges.
func (r Range) Before() Point {
	return r.From.Min(r.To)
}

// After returns the later of the two edges.
func (r Range) After() Point {
	return r.From.Max(r.To)
}

// IsEmpty returns true if both edges are the same point.
func (r Range) IsEmpty() bool {
	return r.From.Equal(r.To)
}

// Equal returns true if both ranges cover the same span, regardless
// of edge order.
func (r Range) Equal(other Range) bool {
	return r.Before().Equal(other.Before()) && r.After().Equal(other.After())
}

// ContainsPoint returns true if p lies between the edges, inclusive.
func (r Range) ContainsPoint(p Point) bool {
	return p.Compare(r.Before()) >= 0 && p.Compare(r.After()) <= 0
}

// ContainsRange returns true if both edges of other lie within r.
// Equal ranges contain each other.
func (r Range) ContainsRange(other Range) bool {
	return r.ContainsPoint(other.Before()) && r.ContainsPoint(other.After())
}

// Overlaps returns true if the ranges share at least one point.
// Edges that merely touch count as overlap.
func (r Range) Overlaps(other Range) bool {
	return r.ContainsPoint(other.Before()) ||
		r.ContainsPoint(other.After()) ||
		other.ContainsPoint(r.Before())
}
