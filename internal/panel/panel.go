package panel

import (
	"github.com/atomicstack/groupme-info/internal/store"
)

// Kind distinguishes the interactive command list from read-only panels.
type Kind int

const (
	KindList Kind = iota
	KindText
)

// Context carries the data text panels render from.
type Context struct {
	Group    store.Group
	Members  []store.Member
	Mods     []store.Member
	BuiltIns []BuiltIn
}

// Renderer produces the body lines of a text panel.
type Renderer func(Context) []string

// Panel is one mutually exclusive content section.
type Panel struct {
	ID     string
	Title  string
	Kind   Kind
	Render Renderer
}

// Link is a tab that selects a panel through its Target selector.
type Link struct {
	ID     string
	Label  string
	Target string
}

const (
	CommandsID = "commands"
	BuiltinID  = "builtin"
	ModsID     = "mods"
	GroupID    = "group"
	StatsID    = "stats"
)

// DefaultPanels returns the panels of the info screen in display order.
func DefaultPanels() []Panel {
	return []Panel{
		{ID: CommandsID, Title: "Commands", Kind: KindList},
		{ID: BuiltinID, Title: "Built-in", Kind: KindText, Render: renderBuiltIns},
		{ID: ModsID, Title: "Mods", Kind: KindText, Render: renderMods},
		{ID: GroupID, Title: "Group", Kind: KindText, Render: renderGroup},
		{ID: StatsID, Title: "Stats", Kind: KindText, Render: renderStats},
	}
}

// DefaultLinks returns one tab per default panel.
func DefaultLinks() []Link {
	panels := DefaultPanels()
	links := make([]Link, 0, len(panels))
	for _, p := range panels {
		links = append(links, Link{ID: "link:" + p.ID, Label: p.Title, Target: "#" + p.ID})
	}
	return links
}
