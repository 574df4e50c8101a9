package state

import "github.com/atomicstack/groupme-info/internal/store"

// CommandStore holds the latest command rows in storage order.
type CommandStore interface {
	Commands() []store.Command
	SetCommands([]store.Command)
}

type commandStore struct {
	commands []store.Command
}

func NewCommandStore() CommandStore {
	return &commandStore{}
}

func (s *commandStore) Commands() []store.Command {
	return cloneCommands(s.commands)
}

func (s *commandStore) SetCommands(commands []store.Command) {
	s.commands = cloneCommands(commands)
}

func cloneCommands(commands []store.Command) []store.Command {
	if len(commands) == 0 {
		return nil
	}
	dup := make([]store.Command, len(commands))
	copy(dup, commands)
	return dup
}
