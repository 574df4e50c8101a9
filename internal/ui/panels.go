package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/groupme-info/internal/logging/events"
	"github.com/atomicstack/groupme-info/internal/panel"
	"github.com/charmbracelet/bubbles/viewport"
)

const defaultPanelWidth = 80

func (m *Model) applyInitialPanel(requested string) {
	id := strings.TrimSpace(requested)
	if id == "" {
		id = panel.CommandsID
	}
	p, ok := m.registry.Resolve(id)
	if !ok {
		m.errMsg = fmt.Sprintf("Unknown panel %q", requested)
		p, ok = m.registry.Find(panel.CommandsID)
	}
	if !ok {
		return
	}
	m.visiblePanel = p.ID
	m.activeLink = m.registry.LinkIndexFor(p.ID)
}

// activateLink marks link i active and shows the panel its target selects.
// A target that resolves to nothing leaves every panel hidden.
func (m *Model) activateLink(i int) {
	if i < 0 || i >= len(m.links) {
		return
	}
	link := m.links[i]
	m.activeLink = i
	p, ok := m.registry.Resolve(link.Target)
	events.Panel.Switch(link.ID, link.Target, ok)
	if !ok {
		m.visiblePanel = ""
		return
	}
	m.visiblePanel = p.ID
	m.scrollToTop(p)
}

func (m *Model) nextLink() {
	if len(m.links) == 0 {
		return
	}
	m.activateLink((m.activeLink + 1) % len(m.links))
}

func (m *Model) prevLink() {
	n := len(m.links)
	if n == 0 {
		return
	}
	i := m.activeLink - 1
	if i < 0 {
		i = n - 1
	}
	m.activateLink(i)
}

func (m *Model) scrollToTop(p *panel.Panel) {
	switch p.Kind {
	case panel.KindList:
		m.list.ScrollToTop()
		m.syncList()
	case panel.KindText:
		m.viewportFor(p).GotoTop()
	}
}

func (m *Model) currentPanel() (*panel.Panel, bool) {
	if m.visiblePanel == "" {
		return nil, false
	}
	return m.registry.Find(m.visiblePanel)
}

func (m *Model) listShown() bool {
	p, ok := m.currentPanel()
	return ok && p.Kind == panel.KindList
}

func (m *Model) textViewport() *viewport.Model {
	p, ok := m.currentPanel()
	if !ok || p.Kind != panel.KindText {
		return nil
	}
	return m.viewportFor(p)
}

func (m *Model) panelContext() panel.Context {
	return panel.Context{
		Group:    m.groups.Group(),
		Members:  m.groups.Members(),
		Mods:     m.groups.Mods(),
		BuiltIns: panel.BuiltIns(),
	}
}

func (m *Model) viewportFor(p *panel.Panel) *viewport.Model {
	if vp, ok := m.viewports[p.ID]; ok {
		return vp
	}
	width, height := m.panelSize()
	vp := viewport.New(width, height)
	vp.SetContent(m.renderPanelBody(p))
	m.viewports[p.ID] = &vp
	return &vp
}

func (m *Model) renderPanelBody(p *panel.Panel) string {
	if p.Render == nil {
		return ""
	}
	return strings.Join(p.Render(m.panelContext()), "\n")
}

// refreshTextPanels re-renders every text panel viewport, keeping scroll
// positions where the new content allows.
func (m *Model) refreshTextPanels() {
	for id, vp := range m.viewports {
		p, ok := m.registry.Find(id)
		if !ok {
			continue
		}
		offset := vp.YOffset
		vp.SetContent(m.renderPanelBody(p))
		vp.SetYOffset(offset)
	}
}

func (m *Model) resizeViewports() {
	width, height := m.panelSize()
	for _, vp := range m.viewports {
		vp.Width = width
		vp.Height = height
		vp.SetYOffset(vp.YOffset)
	}
}

func (m *Model) panelSize() (int, int) {
	width := m.width
	if width <= 0 {
		width = defaultPanelWidth
	}
	height := m.bodyHeight()
	if height <= 0 {
		height = 20
	}
	return width, height
}
