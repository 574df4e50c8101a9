package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/groupme-info/internal/panel"
	tea "github.com/charmbracelet/bubbletea"
)

func containsLine(view, want string) bool {
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, want) {
			return true
		}
	}
	return false
}

func TestViewShowsHeaderTabsAndItems(t *testing.T) {
	h := newTestHarness(t)
	view := h.View()
	lines := strings.Split(view, "\n")
	if !strings.Contains(lines[0], "groupme-info · friends") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	for _, label := range []string{"Commands", "Built-in", "Mods", "Group", "Stats"} {
		if !strings.Contains(lines[tabBarRow], label) {
			t.Fatalf("expected tab %q in %q", label, lines[tabBarRow])
		}
	}
	if !strings.Contains(lines[bodyTop], "ls") || !strings.Contains(lines[bodyTop+3], "lsof") {
		t.Fatalf("unexpected list rows:\n%s", view)
	}
	if !containsLine(view, "type to filter") {
		t.Fatalf("expected filter prompt placeholder:\n%s", view)
	}
}

func TestViewRespectsHeight(t *testing.T) {
	h := newTestHarness(t, func(o *Options) { o.Height = 6 })
	lines := strings.Split(h.View(), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 rows, got %d:\n%s", len(lines), h.View())
	}
	h.Press(tea.KeyEnd)
	if !containsLine(h.View(), "lsof") {
		t.Fatalf("expected cursor row scrolled into view:\n%s", h.View())
	}
}

func TestTextPanelRendersFromStores(t *testing.T) {
	h := newTestHarness(t, func(o *Options) { o.InitialPanel = panel.ModsID })
	view := h.View()
	if !containsLine(view, "ann") || containsLine(view, "bob") {
		t.Fatalf("expected only moderators listed:\n%s", view)
	}
	if containsLine(view, "type to filter") {
		t.Fatalf("expected no filter prompt on a text panel:\n%s", view)
	}
}

func TestClickOnTabSwitchesPanel(t *testing.T) {
	h := newTestHarness(t)
	_, spans := h.Model().tabSegments()
	h.Click(spans[2].start, tabBarRow)
	if got := h.Model().VisiblePanel(); got != panel.ModsID {
		t.Fatalf("expected mods panel after click, got %q", got)
	}
	if h.Model().ActiveLink() != 2 {
		t.Fatalf("expected clicked link active, got %d", h.Model().ActiveLink())
	}
}

func TestClickOnItemTogglesTooltip(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	h.Click(3, bodyTop+1)
	if !m.list.Entries[1].Tooltip || m.list.Cursor != 1 {
		t.Fatalf("expected cd tooltip open under cursor, got cursor %d %#v", m.list.Cursor, m.list.Entries)
	}
	// first tooltip line sits directly below cd
	h.Click(6, bodyTop+2)
	if m.list.Entries[1].Tooltip {
		t.Fatalf("expected click on tooltip to close it")
	}
	h.Click(3, bodyTop+10)
	if _, ok := m.list.OpenTooltip(); ok {
		t.Fatalf("expected click below the list to do nothing")
	}
}

func TestWheelScrollsList(t *testing.T) {
	h := newTestHarness(t)
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if h.Model().list.Cursor != 1 {
		t.Fatalf("expected wheel to move cursor, got %d", h.Model().list.Cursor)
	}
}

func TestWindowSizeAdjustsUnfixedDimensions(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Width = 0
		o.Height = 0
	})
	h.Send(tea.WindowSizeMsg{Width: 50, Height: 9})
	m := h.Model()
	if m.width != 50 || m.height != 9 {
		t.Fatalf("expected size 50x9, got %dx%d", m.width, m.height)
	}
	if got := m.bodyHeight(); got != 5 {
		t.Fatalf("expected 5 body rows, got %d", got)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("expected short text untouched, got %q", got)
	}
}
