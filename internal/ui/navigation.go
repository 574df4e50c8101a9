package ui

import (
	"context"
	"fmt"

	"github.com/atomicstack/groupme-info/internal/backend"
	"github.com/atomicstack/groupme-info/internal/logging"
	"github.com/atomicstack/groupme-info/internal/logging/events"
	"github.com/atomicstack/groupme-info/internal/store"
	"github.com/atomicstack/groupme-info/internal/ui/command"
	uistate "github.com/atomicstack/groupme-info/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// actionResultMsg reports the outcome of a side-effecting action.
type actionResultMsg struct {
	info string
	err  error
}

type reloadedMsg struct {
	snapshot store.Snapshot
	err      error
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "tab":
		m.nextLink()
		return nil
	case "shift+tab":
		m.prevLink()
		return nil
	case "ctrl+s":
		m.sortByUsage()
		return nil
	case "ctrl+r":
		return m.reload()
	case "ctrl+y":
		return m.copyCurrent()
	case "enter":
		m.toggleTooltipAtCursor()
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "up":
		m.moveBy(-1)
	case "down":
		m.moveBy(1)
	case "pgup":
		m.movePage(-1)
	case "pgdown":
		m.movePage(1)
	case "home":
		m.moveEdge(false)
	case "end":
		m.moveEdge(true)
	}
	return nil
}

// handleEscapeKey closes an open tooltip, else clears the filter, else quits.
func (m *Model) handleEscapeKey() tea.Cmd {
	if idx, ok := m.list.OpenTooltip(); ok && m.listShown() {
		name := m.list.Entries[idx].Name
		m.list.CloseTooltips()
		events.Tooltip.Close(name)
		m.syncList()
		return nil
	}
	if m.listShown() && m.list.Filter != "" {
		m.editFilter(m.list.ClearFilter)
		m.filterChanged(func(id, _ string) { events.Filter.Cleared(id) })
		return nil
	}
	return tea.Quit
}

func (m *Model) toggleTooltipAtCursor() {
	if !m.listShown() {
		return
	}
	change, entry := m.list.ToggleTooltipAtCursor()
	m.traceTooltip(change, entry)
	m.syncList()
}

func (m *Model) traceTooltip(change uistate.TooltipChange, entry uistate.Entry) {
	switch change {
	case uistate.TooltipOpened:
		events.Tooltip.Open(entry.Name)
	case uistate.TooltipClosed:
		events.Tooltip.Close(entry.Name)
	default:
		events.Tooltip.Skip(entry.Name)
	}
}

func (m *Model) sortByUsage() {
	changed := m.list.SortByUsage()
	events.Sort.Usage(len(m.list.Entries))
	m.syncList()
	if changed {
		m.setInfo("Sorted by usage")
	}
}

func (m *Model) reload() tea.Cmd {
	if m.source == nil {
		m.setInfo("Reload unavailable without a database")
		return nil
	}
	source, groupID := m.source, m.groupID
	return m.bus.Execute(command.Request{
		ID:    "reload",
		Label: groupID,
		Handler: func(ctx context.Context) tea.Msg {
			snap, err := fetchSnapshot(ctx, source, groupID)
			return reloadedMsg{snapshot: snap, err: err}
		},
	})
}

func fetchSnapshot(ctx context.Context, source backend.Source, groupID string) (store.Snapshot, error) {
	data, err := backend.FetchGroup(ctx, source, groupID)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("reload group %s: %w", groupID, err)
	}
	commands, err := source.Commands(ctx, groupID)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("reload commands for %s: %w", groupID, err)
	}
	return store.Snapshot{
		Group:    data.Group,
		Members:  data.Members,
		Mods:     store.ModsOf(data.Members),
		Commands: commands,
	}, nil
}

func (m *Model) copyCurrent() tea.Cmd {
	if !m.listShown() {
		return nil
	}
	idx, ok := m.list.Current()
	if !ok {
		return nil
	}
	text := "!" + m.list.Entries[idx].Name
	write := m.clipboard
	return m.bus.Execute(command.Request{
		ID:    "copy",
		Label: text,
		Handler: func(context.Context) tea.Msg {
			if err := write(text); err != nil {
				return actionResultMsg{err: fmt.Errorf("copy %s: %w", text, err)}
			}
			return actionResultMsg{info: fmt.Sprintf("Copied %s to clipboard", text)}
		},
	})
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(actionResultMsg)
	if !ok {
		return nil
	}
	if res.err != nil {
		logging.Error(res.err)
		events.Action.Error(res.err)
		m.errMsg = res.err.Error()
		return nil
	}
	events.Action.Success(res.info)
	m.errMsg = ""
	m.setInfo(res.info)
	return nil
}

func (m *Model) handleReloadedMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(reloadedMsg)
	if !ok {
		return nil
	}
	if res.err != nil {
		logging.Error(res.err)
		events.Action.Error(res.err)
		m.errMsg = res.err.Error()
		return nil
	}
	m.errMsg = ""
	m.applyResult(m.dispatcher.Seed(res.snapshot), "reload")
	m.setInfo(fmt.Sprintf("Reloaded %d commands", len(m.list.Entries)))
	return nil
}

func (m *Model) moveBy(delta int) {
	if vp := m.textViewport(); vp != nil {
		vp.SetYOffset(vp.YOffset + delta)
		return
	}
	if !m.listShown() {
		return
	}
	var moved bool
	if delta < 0 {
		moved = m.list.MoveCursorUp()
	} else {
		moved = m.list.MoveCursorDown()
	}
	m.afterCursorMove(moved)
}

func (m *Model) movePage(direction int) {
	if vp := m.textViewport(); vp != nil {
		vp.SetYOffset(vp.YOffset + direction*vp.Height)
		return
	}
	if !m.listShown() {
		return
	}
	var moved bool
	if direction < 0 {
		moved = m.list.MoveCursorPageUp(m.listCapacity())
	} else {
		moved = m.list.MoveCursorPageDown(m.listCapacity())
	}
	m.afterCursorMove(moved)
}

func (m *Model) moveEdge(end bool) {
	if vp := m.textViewport(); vp != nil {
		if end {
			vp.GotoBottom()
		} else {
			vp.GotoTop()
		}
		return
	}
	if !m.listShown() {
		return
	}
	var moved bool
	if end {
		moved = m.list.MoveCursorEnd()
	} else {
		moved = m.list.MoveCursorHome()
	}
	m.afterCursorMove(moved)
}

func (m *Model) afterCursorMove(moved bool) {
	if moved {
		events.UI.Cursor(m.list.ID, m.list.Cursor)
	}
	m.syncList()
}

// syncList keeps the cursor row inside the list viewport.
func (m *Model) syncList() {
	m.list.EnsureCursorVisible(m.listCapacity())
}

// listCapacity is the number of entry rows that fit beside an open tooltip.
func (m *Model) listCapacity() int {
	h := m.bodyHeight()
	if h <= 0 {
		return -1
	}
	if idx, ok := m.list.OpenTooltip(); ok && !m.list.Entries[idx].Hidden {
		h -= len(tooltipLines(m.list.Entries[idx]))
	}
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.resizeViewports()
	m.syncList()
	return nil
}
