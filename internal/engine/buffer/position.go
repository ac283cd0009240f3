package buffer

import "fmt"

// ByteOffset is an absolute byte position in the buffer.
// Valid values are [0, Buffer.Len()]; the offset equal to the buffer
// length addresses the position just past the final byte.
type ByteOffset = int

// Point represents a row and column position.
// Both Row and Col are 0-indexed.
// Col is measured in bytes from the start of the row.
type Point struct {
	Row int
	Col int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Points are ordered by row, then by column.
func (p Point) Compare(other Point) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// Equal returns true if p and other are the same position.
func (p Point) Equal(other Point) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// IsZero returns true if this is the zero point (0:0).
func (p Point) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

// Min returns the earlier of p and other.
func (p Point) Min(other Point) Point {
	if p.Compare(other) <= 0 {
		return p
	}
	return other
}

// Max returns the later of p and other.
func (p Point) Max(other Point) Point {
	if p.Compare(other) >= 0 {
		return p
	}
	return other
}
