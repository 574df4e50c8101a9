package state

import (
	"fmt"

	"github.com/atomicstack/groupme-info/internal/store"
)

// Entry is one command row of the list.
type Entry struct {
	Name      string
	Title     string
	HasTitle  bool
	TimesUsed int
	Tooltip   bool
	Hidden    bool
}

// EntriesFromCommands converts stored commands into list entries.
func EntriesFromCommands(cmds []store.Command) []Entry {
	entries := make([]Entry, 0, len(cmds))
	for _, c := range cmds {
		usage := c.TimesUsed
		if usage < 0 {
			usage = 0
		}
		entries = append(entries, Entry{
			Name:      c.Name,
			Title:     c.Description,
			HasTitle:  c.HasDescription,
			TimesUsed: usage,
		})
	}
	return entries
}

// TooltipText is the body of an entry's usage tooltip.
func TooltipText(e Entry) string {
	return fmt.Sprintf("%s\nTimes used: %d", e.Title, e.TimesUsed)
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
