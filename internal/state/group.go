package state

import "github.com/atomicstack/groupme-info/internal/store"

// GroupStore holds the latest group row and member list.
type GroupStore interface {
	Group() store.Group
	SetGroup(store.Group)
	Members() []store.Member
	SetMembers([]store.Member)
	Mods() []store.Member
}

type groupStore struct {
	group   store.Group
	members []store.Member
}

func NewGroupStore() GroupStore {
	return &groupStore{}
}

func (s *groupStore) Group() store.Group {
	return s.group
}

func (s *groupStore) SetGroup(group store.Group) {
	s.group = group
}

func (s *groupStore) Members() []store.Member {
	return cloneMembers(s.members)
}

func (s *groupStore) SetMembers(members []store.Member) {
	s.members = cloneMembers(members)
}

func (s *groupStore) Mods() []store.Member {
	return store.ModsOf(s.members)
}

func cloneMembers(members []store.Member) []store.Member {
	if len(members) == 0 {
		return nil
	}
	dup := make([]store.Member, len(members))
	copy(dup, members)
	return dup
}
