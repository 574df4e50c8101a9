package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/groupme-info/internal/backend"
	"github.com/atomicstack/groupme-info/internal/state"
	"github.com/atomicstack/groupme-info/internal/store"
)

func TestHandleRoutesEventsToStores(t *testing.T) {
	groups := state.NewGroupStore()
	commands := state.NewCommandStore()
	d := New(groups, commands)

	res := d.Handle(backend.Event{Kind: backend.KindCommands, Data: []store.Command{{Name: "ls"}}})
	if !res.CommandsUpdated || res.GroupUpdated {
		t.Fatalf("unexpected result %#v", res)
	}
	if got := commands.Commands(); len(got) != 1 || got[0].Name != "ls" {
		t.Fatalf("expected ls in command store, got %#v", got)
	}

	res = d.Handle(backend.Event{Kind: backend.KindGroup, Data: backend.GroupData{
		Group:   store.Group{ID: "g", Name: "friends", Found: true},
		Members: []store.Member{{Username: "ann", Mod: true}, {Username: "bob"}},
	}})
	if !res.GroupUpdated {
		t.Fatalf("expected group update")
	}
	if groups.Group().Name != "friends" {
		t.Fatalf("unexpected group %#v", groups.Group())
	}
	if mods := groups.Mods(); len(mods) != 1 || mods[0].Username != "ann" {
		t.Fatalf("unexpected mods %#v", mods)
	}
}

func TestHandleIgnoresFailedPolls(t *testing.T) {
	commands := state.NewCommandStore()
	commands.SetCommands([]store.Command{{Name: "keep"}})
	d := New(state.NewGroupStore(), commands)
	res := d.Handle(backend.Event{Kind: backend.KindCommands, Err: errors.New("locked")})
	if res.CommandsUpdated {
		t.Fatalf("expected no update on error")
	}
	if got := commands.Commands(); len(got) != 1 || got[0].Name != "keep" {
		t.Fatalf("expected store untouched, got %#v", got)
	}
}

func TestSeedFillsBothStores(t *testing.T) {
	groups := state.NewGroupStore()
	commands := state.NewCommandStore()
	res := New(groups, commands).Seed(store.Snapshot{
		Group:    store.Group{Name: "friends"},
		Commands: []store.Command{{Name: "a"}, {Name: "b"}},
	})
	if !res.CommandsUpdated || !res.GroupUpdated {
		t.Fatalf("expected both flags, got %#v", res)
	}
	if len(commands.Commands()) != 2 || groups.Group().Name != "friends" {
		t.Fatalf("stores not seeded")
	}
}
