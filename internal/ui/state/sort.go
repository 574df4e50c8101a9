package state

import (
	"cmp"
	"slices"
)

// SortByUsage reorders entries by descending usage count. Equal counts keep
// their current relative order, and the cursor follows its entry. Tooltip and
// filter state travel with the entries.
func (l *List) SortByUsage() bool {
	currentName := ""
	if idx, ok := l.Current(); ok {
		currentName = l.Entries[idx].Name
	}
	before := names(l.Entries)
	slices.SortStableFunc(l.Entries, func(a, b Entry) int {
		return cmp.Compare(b.TimesUsed, a.TimesUsed)
	})
	l.applyFilter()
	l.restoreCursor(currentName)
	return !slices.Equal(before, names(l.Entries))
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
