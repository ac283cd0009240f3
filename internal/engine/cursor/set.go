package cursor

import "fmt"

// Set is the ordered collection of selections owned by an editor.
// Element 0 is the "primary" selection used for cursor display; order
// is otherwise not meaningful.
//
// The set's invariant is that no two selections overlap (touching
// edges count as overlap). Append restores the invariant by merging;
// batch mutation code in the editor maintains it directly and asserts
// it via AssertDisjoint.
type Set struct {
	sels []Selection
}

// NewSet creates a set containing a single selection.
func NewSet(initial Selection) *Set {
	return &Set{sels: []Selection{initial}}
}

// NewSetAt creates a set with a single cursor at p.
func NewSetAt(p Point) *Set {
	return NewSet(NewCursor(p))
}

// Primary returns the primary (first) selection.
func (s *Set) Primary() Selection {
	return s.sels[0]
}

// Count returns the number of selections.
func (s *Set) Count() int {
	return len(s.sels)
}

// Get returns the selection at the given index.
// Panics if index is out of range.
func (s *Set) Get(index int) Selection {
	if index < 0 || index >= len(s.sels) {
		panic(fmt.Sprintf("cursor: selection index %d out of range [0,%d)", index, len(s.sels)))
	}
	return s.sels[index]
}

// All returns a copy of all selections.
func (s *Set) All() []Selection {
	out := make([]Selection, len(s.sels))
	copy(out, s.sels)
	return out
}

// Reset replaces all selections with a single one.
func (s *Set) Reset(sel Selection) {
	s.sels = s.sels[:0]
	s.sels = append(s.sels, sel)
}

// ReplaceAll replaces the set contents verbatim, without merging.
// Callers are responsible for the disjointness invariant; batch
// mutation code uses this together with AssertDisjoint.
func (s *Set) ReplaceAll(sels []Selection) {
	if len(sels) == 0 {
		panic("cursor: selection set must not be empty")
	}
	s.sels = s.sels[:0]
	s.sels = append(s.sels, sels...)
}

// Append adds a selection and restores the disjointness invariant by
// repeatedly merging overlapping pairs until none remain. The loop is
// a fixpoint, not a single pass: a merge can newly overlap a selection
// earlier in the set. It terminates because every merge removes one
// element.
func (s *Set) Append(sel Selection) {
	s.sels = append(s.sels, sel)
	s.MergeOverlapping()
	s.AssertDisjoint()
}

// MergeOverlapping merges pairwise-overlapping selections until the
// set is disjoint.
func (s *Set) MergeOverlapping() {
restart:
	for i := 0; i < len(s.sels); i++ {
		for j := i + 1; j < len(s.sels); j++ {
			if s.sels[i].Overlaps(s.sels[j]) {
				s.sels[i] = s.sels[i].Merge(s.sels[j])
				s.sels = append(s.sels[:j], s.sels[j+1:]...)
				goto restart
			}
		}
	}
}

// DedupeIdentical removes selections that are exact duplicates of an
// earlier one. Unlike Append this performs no merging: selections that
// merely overlap or touch are left alone.
func (s *Set) DedupeIdentical() {
	for i := 0; i < len(s.sels); i++ {
		for j := i + 1; j < len(s.sels); {
			if s.sels[i].Equal(s.sels[j]) {
				s.sels = append(s.sels[:j], s.sels[j+1:]...)
			} else {
				j++
			}
		}
	}
}

// CollapseAll collapses every selection to a cursor at its cursor edge.
func (s *Set) CollapseAll() {
	for i, sel := range s.sels {
		s.sels[i] = sel.Collapse()
	}
}

// AssertDisjoint panics if any two selections overlap. It is the
// postcondition check for every batch mutation; a violation is a bug
// in the mutation algorithm, not a recoverable condition.
func (s *Set) AssertDisjoint() {
	for i := 0; i < len(s.sels); i++ {
		for j := i + 1; j < len(s.sels); j++ {
			if s.sels[i].Overlaps(s.sels[j]) {
				panic(fmt.Sprintf("cursor: selections %s and %s overlap after mutation", s.sels[i], s.sels[j]))
			}
		}
	}
}
