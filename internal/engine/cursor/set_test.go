package cursor

import "testing"

func selsEqual(t *testing.T, got, want []Selection) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d selections %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			t.Errorf("selection %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNewSet(t *testing.T) {
	s := NewSetAt(pt(0, 0))

	if got := s.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
	if got := s.Primary(); !got.Equal(NewCursor(pt(0, 0))) {
		t.Errorf("Primary() = %s", got)
	}
}

func TestSetGetPanics(t *testing.T) {
	s := NewSetAt(pt(0, 0))

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	s.Get(1)
}

func TestSetAppendDisjoint(t *testing.T) {
	s := NewSetAt(pt(0, 0))
	s.Append(NewCursor(pt(1, 0)))
	s.Append(NewCursor(pt(2, 0)))

	if got := s.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := s.Primary(); !got.Cursor.Equal(pt(0, 0)) {
		t.Errorf("primary moved: %s", got)
	}
}

func TestSetAppendMergesOverlap(t *testing.T) {
	s := NewSet(NewSelection(pt(0, 2), pt(0, 5)))
	s.Append(NewSelection(pt(0, 4), pt(0, 9)))

	selsEqual(t, s.All(), []Selection{NewSelection(pt(0, 2), pt(0, 9))})
}

func TestSetAppendCascadingMerge(t *testing.T) {
	// The third selection bridges the first two; one Append collapses
	// all three into a single span.
	s := NewSet(NewSelection(pt(0, 2), pt(0, 3)))
	s.Append(NewSelection(pt(0, 6), pt(0, 8)))
	if got := s.Count(); got != 2 {
		t.Fatalf("disjoint selections merged early: %v", s.All())
	}

	s.Append(NewSelection(pt(0, 3), pt(0, 9)))
	selsEqual(t, s.All(), []Selection{NewSelection(pt(0, 2), pt(0, 9))})
}

func TestSetAppendIdenticalCursor(t *testing.T) {
	s := NewSetAt(pt(0, 3))
	s.Append(NewCursor(pt(0, 3)))

	selsEqual(t, s.All(), []Selection{NewCursor(pt(0, 3))})
}

func TestSetReplaceAll(t *testing.T) {
	s := NewSetAt(pt(0, 0))
	want := []Selection{NewCursor(pt(0, 1)), NewCursor(pt(1, 1))}
	s.ReplaceAll(want)

	selsEqual(t, s.All(), want)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty replacement")
		}
	}()
	s.ReplaceAll(nil)
}

func TestSetDedupeIdentical(t *testing.T) {
	s := NewSetAt(pt(0, 0))
	s.ReplaceAll([]Selection{
		NewCursor(pt(0, 2)),
		NewCursor(pt(0, 2)),
		NewCursor(pt(0, 3)),
		NewCursor(pt(0, 2)),
	})
	s.DedupeIdentical()

	selsEqual(t, s.All(), []Selection{NewCursor(pt(0, 2)), NewCursor(pt(0, 3))})
}

func TestSetDedupeLeavesTouchingAlone(t *testing.T) {
	touching := []Selection{
		NewSelection(pt(0, 0), pt(0, 2)),
		NewSelection(pt(0, 2), pt(0, 4)),
	}
	s := NewSetAt(pt(0, 0))
	s.ReplaceAll(touching)
	s.DedupeIdentical()

	selsEqual(t, s.All(), touching)
}

func TestSetCollapseAll(t *testing.T) {
	s := NewSetAt(pt(0, 0))
	s.ReplaceAll([]Selection{
		NewSelection(pt(0, 0), pt(0, 2)),
		NewSelection(pt(1, 4), pt(1, 1)),
	})
	s.CollapseAll()

	selsEqual(t, s.All(), []Selection{NewCursor(pt(0, 2)), NewCursor(pt(1, 1))})
}

func TestSetReset(t *testing.T) {
	s := NewSetAt(pt(0, 0))
	s.Append(NewCursor(pt(1, 0)))
	s.Reset(NewCursor(pt(2, 2)))

	selsEqual(t, s.All(), []Selection{NewCursor(pt(2, 2))})
}

func TestSetAssertDisjointPanics(t *testing.T) {
	s := NewSetAt(pt(0, 0))
	s.ReplaceAll([]Selection{
		NewSelection(pt(0, 0), pt(0, 5)),
		NewSelection(pt(0, 3), pt(0, 8)),
	})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for overlapping selections")
		}
	}()
	s.AssertDisjoint()
}

func TestSetAllReturnsCopy(t *testing.T) {
	s := NewSetAt(pt(0, 0))
	all := s.All()
	all[0] = NewCursor(pt(9, 9))

	if got := s.Primary(); !got.Cursor.Equal(pt(0, 0)) {
		t.Error("All() must not alias the set's storage")
	}
}
