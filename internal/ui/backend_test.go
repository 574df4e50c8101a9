package ui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/groupme-info/internal/backend"
	"github.com/atomicstack/groupme-info/internal/store"
)

func TestBackendCommandsEventMergesList(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	m.list.SetFilter("ls", 2)
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindCommands, Data: []store.Command{
		{Name: "lsof", Description: "open files", HasDescription: true, TimesUsed: 10},
		{Name: "ls", Description: "Lists files", HasDescription: true, TimesUsed: 7},
		{Name: "lsblk", Description: "block devices", HasDescription: true},
	}}})
	if got := entryNames(m); !reflect.DeepEqual(got, []string{"ls", "lsof", "lsblk"}) {
		t.Fatalf("unexpected merged order %v", got)
	}
	if got := visibleNames(m); !reflect.DeepEqual(got, []string{"ls", "lsof", "lsblk"}) {
		t.Fatalf("expected filter re-applied, got %v", got)
	}
	if m.list.Entries[1].TimesUsed != 10 {
		t.Fatalf("expected refreshed usage, got %d", m.list.Entries[1].TimesUsed)
	}
}

func TestBackendGroupEventRefreshesTextPanels(t *testing.T) {
	h := newTestHarness(t, func(o *Options) { o.InitialPanel = "mods" })
	h.View()
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindGroup, Data: backend.GroupData{
		Group:   store.Group{ID: "1001", Name: "friends", Found: true},
		Members: []store.Member{{UserID: "u3", Username: "cat", Mod: true}},
	}}})
	if !containsLine(h.View(), "cat") {
		t.Fatalf("expected new moderator in view:\n%s", h.View())
	}
}

func TestBackendErrorShownUntilRecovery(t *testing.T) {
	h := newTestHarness(t)
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindCommands, Err: errors.New("database is locked")}})
	if !strings.Contains(h.View(), "Backend: database is locked") {
		t.Fatalf("expected backend error in view:\n%s", h.View())
	}
	if len(h.Model().list.Entries) != 4 {
		t.Fatalf("expected failed poll to leave the list alone")
	}
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindCommands, Data: []store.Command{{Name: "ls"}}}})
	if strings.Contains(h.View(), "Backend:") {
		t.Fatalf("expected backend error cleared:\n%s", h.View())
	}
}

func TestBackendDoneStopsWaiting(t *testing.T) {
	h := newTestHarness(t)
	h.Send(backendDoneMsg{})
	if h.Model().backend != nil {
		t.Fatalf("expected watcher detached")
	}
}
