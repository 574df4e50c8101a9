package dispatcher

import (
	"github.com/atomicstack/groupme-info/internal/backend"
	"github.com/atomicstack/groupme-info/internal/state"
	"github.com/atomicstack/groupme-info/internal/store"
)

type Result struct {
	CommandsUpdated bool
	GroupUpdated    bool
}

type Dispatcher struct {
	groups   state.GroupStore
	commands state.CommandStore
}

func New(g state.GroupStore, c state.CommandStore) *Dispatcher {
	return &Dispatcher{groups: g, commands: c}
}

// Handle copies event payloads into the stores. Failed polls leave the stores
// untouched.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindCommands:
		if commands, ok := evt.Data.([]store.Command); ok {
			d.commands.SetCommands(commands)
			res.CommandsUpdated = true
		}
	case backend.KindGroup:
		if data, ok := evt.Data.(backend.GroupData); ok {
			d.groups.SetGroup(data.Group)
			d.groups.SetMembers(data.Members)
			res.GroupUpdated = true
		}
	}
	return res
}

// Seed loads a full snapshot into the stores, as if both pollers had reported.
func (d *Dispatcher) Seed(snap store.Snapshot) Result {
	d.commands.SetCommands(snap.Commands)
	d.groups.SetGroup(snap.Group)
	d.groups.SetMembers(snap.Members)
	return Result{CommandsUpdated: true, GroupUpdated: true}
}
