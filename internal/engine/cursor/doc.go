// Package cursor provides the selection algebra for the editing
// engine: unordered ranges, directional selections, and the ordered
// selection set that keeps multiple cursors pairwise disjoint.
//
// Selection Model:
//
// A Selection is a directional pair of points. Anchor is the fixed
// edge; Cursor is the active edge where typing occurs. When
// Anchor == Cursor the selection is just a cursor with no extent.
//
// Overlap Semantics:
//
// Containment and overlap are edge-inclusive: two ranges whose edges
// merely touch, with no gap and no interior overlap, are defined to
// overlap. This rule is load-bearing for merging: appending a
// selection that touches an existing one collapses the pair into a
// single selection.
//
// Merging preserves the direction of the dominant selection and only
// reaches toward the far edge of the other; see Selection.Merge.
package cursor
