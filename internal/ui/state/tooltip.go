package state

// TooltipChange describes the outcome of a tooltip toggle.
type TooltipChange int

const (
	TooltipSkipped TooltipChange = iota
	TooltipOpened
	TooltipClosed
)

func (c TooltipChange) String() string {
	switch c {
	case TooltipOpened:
		return "opened"
	case TooltipClosed:
		return "closed"
	default:
		return "skipped"
	}
}

// ToggleTooltip flips the tooltip of the entry at index idx in Entries.
// Opening one tooltip closes any other, so at most one is open at a time.
// Entries without a title never show a tooltip.
func (l *List) ToggleTooltip(idx int) TooltipChange {
	if idx < 0 || idx >= len(l.Entries) || !l.Entries[idx].HasTitle {
		return TooltipSkipped
	}
	if l.Entries[idx].Tooltip {
		l.Entries[idx].Tooltip = false
		return TooltipClosed
	}
	for i := range l.Entries {
		l.Entries[i].Tooltip = false
	}
	l.Entries[idx].Tooltip = true
	return TooltipOpened
}

// ToggleTooltipAtCursor toggles the tooltip of the entry under the cursor.
func (l *List) ToggleTooltipAtCursor() (TooltipChange, Entry) {
	idx, ok := l.Current()
	if !ok {
		return TooltipSkipped, Entry{}
	}
	change := l.ToggleTooltip(idx)
	return change, l.Entries[idx]
}

// OpenTooltip returns the index of the entry whose tooltip is open.
func (l *List) OpenTooltip() (int, bool) {
	for i, e := range l.Entries {
		if e.Tooltip {
			return i, true
		}
	}
	return -1, false
}

// CloseTooltips closes every open tooltip and reports whether one was open.
func (l *List) CloseTooltips() bool {
	closed := false
	for i := range l.Entries {
		if l.Entries[i].Tooltip {
			l.Entries[i].Tooltip = false
			closed = true
		}
	}
	return closed
}
