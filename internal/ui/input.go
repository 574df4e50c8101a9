package ui

import (
	"unicode"

	"github.com/atomicstack/groupme-info/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filterPlaceholder = "(type to filter commands)"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// editFilter runs one caret or text edit against the list and reports whether
// it changed anything. Text edits re-apply the filter inside the list.
func (m *Model) editFilter(edit func() bool) bool {
	before := m.list.FilterCursorPos()
	if !edit() {
		return false
	}
	if before != m.list.FilterCursorPos() {
		m.filterCursorDirty = true
	}
	return true
}

func (m *Model) filterChanged(trace func(listID, filter string)) {
	m.forceClearInfo()
	m.errMsg = ""
	if trace != nil {
		trace(m.list.ID, m.list.Filter)
	}
	events.Filter.Apply(m.list.ID, m.list.Filter, m.list.VisibleCount(), len(m.list.Entries))
	m.syncList()
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if !m.listShown() {
		return false
	}
	l := m.list
	switch msg.String() {
	case "ctrl+u":
		if !m.editFilter(l.ClearFilter) {
			return false
		}
		m.filterChanged(func(id, _ string) { events.Filter.Cleared(id) })
		return true
	case "ctrl+w":
		if !m.editFilter(l.DeleteFilterWordBackward) {
			return false
		}
		m.filterChanged(events.Filter.WordBackspace)
		return true
	case "ctrl+a":
		return m.moveCaret(l.MoveFilterCursorStart, events.Filter.Cursor)
	case "ctrl+e":
		return m.moveCaret(l.MoveFilterCursorEnd, events.Filter.Cursor)
	case "alt+b":
		return m.moveCaret(l.MoveFilterCursorWordBackward, events.Filter.CursorWord)
	case "alt+f":
		return m.moveCaret(l.MoveFilterCursorWordForward, events.Filter.CursorWord)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.editFilter(l.DeleteFilterRuneBackward) {
			return false
		}
		m.filterChanged(events.Filter.Backspace)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		return m.moveCaret(l.MoveFilterCursorRuneBackward, events.Filter.Cursor)
	case tea.KeyRight:
		return m.moveCaret(l.MoveFilterCursorRuneForward, events.Filter.Cursor)
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if !m.editFilter(func() bool { return m.list.InsertFilterText(text) }) {
		return false
	}
	m.filterChanged(events.Filter.Append)
	return true
}

func (m *Model) moveCaret(move func() bool, trace func(listID string, pos int)) bool {
	if !m.editFilter(move) {
		return false
	}
	trace(m.list.ID, m.list.FilterCursor)
	return true
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if m.list.Filter == "" {
		runes := []rune(filterPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(m.list.Filter)
	pos := m.list.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune, after := " ", ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
