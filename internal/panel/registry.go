package panel

import "strings"

// Registry resolves link targets to panels.
type Registry struct {
	order  []string
	panels map[string]*Panel
	links  []Link
}

// BuildRegistry constructs the registry of the info screen.
func BuildRegistry() *Registry {
	return NewRegistry(DefaultPanels(), DefaultLinks())
}

// NewRegistry builds a registry from explicit panels and links. Links are not
// validated; a target that names no panel simply fails to resolve.
func NewRegistry(panels []Panel, links []Link) *Registry {
	r := &Registry{panels: make(map[string]*Panel, len(panels))}
	for i := range panels {
		p := panels[i]
		id := normalizeID(p.ID)
		if id == "" {
			continue
		}
		if _, dup := r.panels[id]; dup {
			continue
		}
		p.ID = id
		r.panels[id] = &p
		r.order = append(r.order, id)
	}
	r.links = append([]Link(nil), links...)
	return r
}

// Links returns the tab links in display order.
func (r *Registry) Links() []Link {
	return append([]Link(nil), r.links...)
}

// Panels returns the panels in registration order.
func (r *Registry) Panels() []*Panel {
	out := make([]*Panel, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.panels[id])
	}
	return out
}

// Find locates a panel by ID.
func (r *Registry) Find(id string) (*Panel, bool) {
	p, ok := r.panels[normalizeID(id)]
	return p, ok
}

// Resolve interprets a link target as a selector. "#stats" and "stats" both
// name the stats panel.
func (r *Registry) Resolve(target string) (*Panel, bool) {
	return r.Find(strings.TrimPrefix(strings.TrimSpace(target), "#"))
}

// LinkIndexFor returns the first link whose target resolves to panelID, or -1.
func (r *Registry) LinkIndexFor(panelID string) int {
	want := normalizeID(panelID)
	for i, link := range r.links {
		if p, ok := r.Resolve(link.Target); ok && p.ID == want {
			return i
		}
	}
	return -1
}

// Known reports whether id names one of the default panels.
func Known(id string) bool {
	_, ok := BuildRegistry().Resolve(id)
	return ok
}

// IDs lists the default panel identifiers.
func IDs() []string {
	panels := DefaultPanels()
	ids := make([]string, 0, len(panels))
	for _, p := range panels {
		ids = append(ids, p.ID)
	}
	return ids
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
