// Package editor composes the text buffer, the selection set, and the
// tokenizer hook behind the engine's public mutation and query API.
//
// The editor is single-writer and synchronous: every public operation
// runs to completion (mutate buffer, rebuild line index, retokenize,
// update selections) before returning, so the invariants hold between
// calls: the selection set stays pairwise disjoint and the line index
// always describes the current buffer. Hosts embedding the engine in a
// multi-threaded program must serialize access to an Editor.
//
// Batch mutations treat every cursor in one logical step. Insertion
// applies per selection in set order, shifting the selections that
// follow each insertion point; backspace deduplicates coinciding
// cursors, deletes from the highest offset down so pending offsets
// stay valid, and then walks every selection back by the number of
// bytes removed at or before its own deletion point.
package editor
