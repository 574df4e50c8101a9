package ui

import (
	"github.com/atomicstack/groupme-info/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg scrolls with the wheel, switches panels on tab clicks and
// toggles tooltips on item clicks.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveBy(-1)
	case tea.MouseButtonWheelDown:
		m.moveBy(1)
	case tea.MouseButtonLeft:
		if ev.Action == tea.MouseActionPress {
			m.handleClick(ev.X, ev.Y)
		}
	}
	return nil
}

func (m *Model) handleClick(x, y int) {
	if y == tabBarRow {
		_, spans := m.tabSegments()
		for _, span := range spans {
			if x >= span.start && x < span.end {
				m.activateLink(span.link)
				return
			}
		}
		return
	}
	row := y - bodyTop
	if row < 0 || !m.listShown() || m.list.VisibleCount() == 0 {
		return
	}
	rows := m.listRows()
	if row >= len(rows) {
		return
	}
	hit := rows[row]
	if m.list.SetCursor(hit.pos) {
		events.UI.Cursor(m.list.ID, m.list.Cursor)
	}
	change := m.list.ToggleTooltip(hit.entry)
	m.traceTooltip(change, m.list.Entries[hit.entry])
	m.syncList()
}
