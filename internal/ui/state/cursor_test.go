package state

import "testing"

func newTestList(names ...string) *List {
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = Entry{Name: name, Title: name + " help", HasTitle: true}
	}
	return NewList("commands", entries)
}

func TestMoveCursorHomeAndEnd(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", l.Cursor)
	}
	if !l.MoveCursorEnd() || l.Cursor != 2 {
		t.Fatalf("expected cursor at 2, got %d", l.Cursor)
	}
	if l.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}

	empty := newTestList()
	empty.Cursor = 5
	if empty.MoveCursorHome() || empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorUpDownWraps(t *testing.T) {
	l := newTestList("a", "b", "c")
	if !l.MoveCursorUp() || l.Cursor != 2 {
		t.Fatalf("expected wrap to last entry, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected wrap to first entry, got %d", l.Cursor)
	}
	single := newTestList("only")
	if single.MoveCursorDown() {
		t.Fatalf("expected single entry list not to move")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(10) || l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestPagingRespectsFilter(t *testing.T) {
	l := newTestList("ls", "cd", "lsof", "pwd")
	l.SetFilter("ls", 2)
	l.MoveCursorPageDown(10)
	if l.Cursor != 1 {
		t.Fatalf("expected cursor on last visible entry, got %d", l.Cursor)
	}
	idx, _ := l.Current()
	if l.Entries[idx].Name != "lsof" {
		t.Fatalf("expected lsof under cursor, got %q", l.Entries[idx].Name)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}

func TestScrollToTop(t *testing.T) {
	l := newTestList("a", "b", "c", "d")
	l.Cursor = 3
	l.ViewportOffset = 2
	l.ScrollToTop()
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected cursor and offset at 0, got %d/%d", l.Cursor, l.ViewportOffset)
	}
}
