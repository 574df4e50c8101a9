package ui

import (
	"github.com/atomicstack/groupme-info/internal/backend"
	"github.com/atomicstack/groupme-info/internal/data/dispatcher"
	"github.com/atomicstack/groupme-info/internal/logging/events"
	uistate "github.com/atomicstack/groupme-info/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		return
	}
	if m.backendHealthy() {
		m.backendLastErr = ""
	}
	m.applyResult(m.dispatcher.Handle(evt), evt.Kind.String())
}

func (m *Model) backendHealthy() bool {
	for _, err := range m.backendState {
		if err != nil {
			return false
		}
	}
	return true
}

// applyResult pushes refreshed store contents into the on-screen state.
func (m *Model) applyResult(res dispatcher.Result, kind string) {
	if res.CommandsUpdated {
		m.list.UpdateEntries(uistate.EntriesFromCommands(m.commands.Commands()))
		events.UI.Refresh(kind, len(m.list.Entries))
		m.syncList()
	}
	if res.GroupUpdated {
		m.refreshTextPanels()
	}
}
