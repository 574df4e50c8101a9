package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/groupme-info/internal/store"
)

func TestEntriesFromCommands(t *testing.T) {
	entries := EntriesFromCommands([]store.Command{
		{Name: "ls", Description: "Lists files", HasDescription: true, TimesUsed: 7},
		{Name: "motd", TimesUsed: -3},
	})
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
	if entries[0].Title != "Lists files" || !entries[0].HasTitle || entries[0].TimesUsed != 7 {
		t.Fatalf("unexpected entry %#v", entries[0])
	}
	if entries[1].HasTitle || entries[1].TimesUsed != 0 {
		t.Fatalf("expected untitled zero-usage entry, got %#v", entries[1])
	}
}

func TestTooltipText(t *testing.T) {
	got := TooltipText(Entry{Name: "ls", Title: "Lists files", HasTitle: true, TimesUsed: 7})
	if got != "Lists files\nTimes used: 7" {
		t.Fatalf("unexpected tooltip %q", got)
	}
}

func TestToggleTooltipIsExclusive(t *testing.T) {
	l := newTestList("a", "b", "c")
	if change := l.ToggleTooltip(0); change != TooltipOpened {
		t.Fatalf("expected open, got %v", change)
	}
	if change := l.ToggleTooltip(2); change != TooltipOpened {
		t.Fatalf("expected open, got %v", change)
	}
	if l.Entries[0].Tooltip || !l.Entries[2].Tooltip {
		t.Fatalf("expected only c open, got %#v", l.Entries)
	}
	if idx, ok := l.OpenTooltip(); !ok || idx != 2 {
		t.Fatalf("expected open tooltip at 2, got %d/%v", idx, ok)
	}
	if change := l.ToggleTooltip(2); change != TooltipClosed {
		t.Fatalf("expected close, got %v", change)
	}
	if _, ok := l.OpenTooltip(); ok {
		t.Fatalf("expected no tooltip open")
	}
	if change := l.ToggleTooltip(9); change != TooltipSkipped {
		t.Fatalf("expected out of range toggle skipped, got %v", change)
	}
}

func TestToggleTooltipSkipsUntitledEntries(t *testing.T) {
	l := NewList("commands", []Entry{{Name: "motd"}, {Name: "ls", Title: "Lists files", HasTitle: true}})
	l.ToggleTooltip(1)
	if change := l.ToggleTooltip(0); change != TooltipSkipped {
		t.Fatalf("expected skip, got %v", change)
	}
	if !l.Entries[1].Tooltip {
		t.Fatalf("expected existing tooltip to stay open")
	}
}

func TestToggleTooltipAtCursorAndClose(t *testing.T) {
	l := newTestList("a", "b")
	l.Cursor = 1
	change, entry := l.ToggleTooltipAtCursor()
	if change != TooltipOpened || entry.Name != "b" {
		t.Fatalf("unexpected toggle %v on %q", change, entry.Name)
	}
	if !l.CloseTooltips() || l.CloseTooltips() {
		t.Fatalf("expected exactly one close")
	}
	l.SetFilter("zzz", 3)
	if change, _ := l.ToggleTooltipAtCursor(); change != TooltipSkipped {
		t.Fatalf("expected skip with nothing visible, got %v", change)
	}
}

func TestSortByUsageIsStableDescending(t *testing.T) {
	l := NewList("commands", []Entry{
		{Name: "a", TimesUsed: 1},
		{Name: "b", TimesUsed: 5},
		{Name: "c", TimesUsed: 1},
		{Name: "d", TimesUsed: 0},
		{Name: "e", TimesUsed: 5},
	})
	l.Cursor = 2
	if !l.SortByUsage() {
		t.Fatalf("expected order change")
	}
	if got := names(l.Entries); !reflect.DeepEqual(got, []string{"b", "e", "a", "c", "d"}) {
		t.Fatalf("unexpected order %v", got)
	}
	idx, _ := l.Current()
	if l.Entries[idx].Name != "c" {
		t.Fatalf("expected cursor to follow c, got %q", l.Entries[idx].Name)
	}
	if l.SortByUsage() {
		t.Fatalf("expected second sort to be a no-op")
	}
}

func TestSortByUsageKeepsTooltipAndFilter(t *testing.T) {
	l := NewList("commands", []Entry{
		{Name: "cd", Title: "change directory", HasTitle: true, TimesUsed: 2},
		{Name: "ls", Title: "Lists files", HasTitle: true, TimesUsed: 7},
		{Name: "lsof", Title: "open files", HasTitle: true, TimesUsed: 9},
	})
	l.ToggleTooltip(1)
	l.SetFilter("ls", 2)
	l.SortByUsage()
	if got := names(l.Entries); !reflect.DeepEqual(got, []string{"lsof", "ls", "cd"}) {
		t.Fatalf("unexpected order %v", got)
	}
	if !l.Entries[1].Tooltip {
		t.Fatalf("expected tooltip to travel with ls")
	}
	if !l.Entries[2].Hidden {
		t.Fatalf("expected cd to stay hidden")
	}
}

func TestUpdateEntriesMerges(t *testing.T) {
	l := NewList("commands", []Entry{
		{Name: "ls", Title: "Lists files", HasTitle: true, TimesUsed: 7},
		{Name: "cd", Title: "change directory", HasTitle: true, TimesUsed: 2},
		{Name: "gone", Title: "removed", HasTitle: true},
	})
	l.SortByUsage()
	l.ToggleTooltip(l.IndexOf("cd"))
	l.Cursor = l.VisiblePos(l.IndexOf("cd"))
	l.SetFilter("c", 1)

	l.UpdateEntries([]Entry{
		{Name: "cd", Title: "change dir", HasTitle: true, TimesUsed: 3},
		{Name: "ls", Title: "Lists files", HasTitle: true, TimesUsed: 8},
		{Name: "cat", Title: "print file", HasTitle: true},
	})

	if got := names(l.Entries); !reflect.DeepEqual(got, []string{"ls", "cd", "cat"}) {
		t.Fatalf("unexpected merged order %v", got)
	}
	cd := l.Entries[1]
	if !cd.Tooltip || cd.Title != "change dir" || cd.TimesUsed != 3 {
		t.Fatalf("unexpected merged cd %#v", cd)
	}
	if !l.Entries[0].Hidden || l.Entries[2].Hidden {
		t.Fatalf("expected filter re-applied, got %#v", l.Entries)
	}
	idx, _ := l.Current()
	if l.Entries[idx].Name != "cd" {
		t.Fatalf("expected cursor to stay on cd, got %q", l.Entries[idx].Name)
	}
}
