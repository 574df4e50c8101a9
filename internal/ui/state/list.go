package state

// List owns the ordered command entries together with the filter query,
// cursor and viewport. The cursor indexes the visible entries only.
type List struct {
	ID             string
	Entries        []Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int

	visible []int
}

// NewList constructs a List holding a copy of entries.
func NewList(id string, entries []Entry) *List {
	l := &List{ID: id, LastCursor: -1}
	l.Entries = CloneEntries(entries)
	l.applyFilter()
	return l
}

// Visible returns the indexes into Entries of the entries the filter shows,
// in list order.
func (l *List) Visible() []int {
	return append([]int(nil), l.visible...)
}

// VisibleCount is the number of entries the filter shows.
func (l *List) VisibleCount() int {
	return len(l.visible)
}

// VisibleEntries returns copies of the shown entries in list order.
func (l *List) VisibleEntries() []Entry {
	out := make([]Entry, 0, len(l.visible))
	for _, idx := range l.visible {
		out = append(out, l.Entries[idx])
	}
	return out
}

// EntryAt maps a visible position to its index in Entries.
func (l *List) EntryAt(pos int) (int, bool) {
	if pos < 0 || pos >= len(l.visible) {
		return -1, false
	}
	return l.visible[pos], true
}

// Current returns the index in Entries of the entry under the cursor.
func (l *List) Current() (int, bool) {
	return l.EntryAt(l.Cursor)
}

// IndexOf returns the index in Entries of the named entry, or -1.
func (l *List) IndexOf(name string) int {
	for i, e := range l.Entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// VisiblePos returns the visible position of the entry at index idx, or -1.
func (l *List) VisiblePos(idx int) int {
	for pos, v := range l.visible {
		if v == idx {
			return pos
		}
	}
	return -1
}

// UpdateEntries merges a fresh set of entries into the list. Entries already
// present keep their position, tooltip flag and cursor; their title and usage
// are refreshed. New entries are appended and vanished ones dropped.
func (l *List) UpdateEntries(fresh []Entry) {
	currentName := ""
	if idx, ok := l.Current(); ok {
		currentName = l.Entries[idx].Name
	}
	incoming := make(map[string]Entry, len(fresh))
	for _, e := range fresh {
		incoming[e.Name] = e
	}
	merged := make([]Entry, 0, len(fresh))
	seen := make(map[string]struct{}, len(fresh))
	for _, old := range l.Entries {
		next, ok := incoming[old.Name]
		if !ok {
			continue
		}
		next.Tooltip = old.Tooltip && next.HasTitle
		merged = append(merged, next)
		seen[old.Name] = struct{}{}
	}
	for _, e := range fresh {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		e.Tooltip = false
		merged = append(merged, e)
		seen[e.Name] = struct{}{}
	}
	l.Entries = merged
	l.applyFilter()
	l.restoreCursor(currentName)
}

func (l *List) restoreCursor(name string) {
	if name == "" {
		return
	}
	if pos := l.VisiblePos(l.IndexOf(name)); pos >= 0 {
		l.Cursor = pos
	}
}
