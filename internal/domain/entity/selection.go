package entity

import (
	"slices"
)

// Selection is the set of generators opted into a shared pickup.
// The self generator is always a member and cannot be removed.
// A Selection is not safe for concurrent use; callers own one per session.
// The zero value is an empty selection with no self member; use NewSelection
// for a selection anchored on a generator.
type Selection struct {
	selfID  string
	members map[string]struct{}
}

// NewSelection returns a selection containing only the self generator.
func NewSelection(selfID string) *Selection {
	s := &Selection{selfID: selfID}
	s.Reset()

	return s
}

// SelfID returns the id of the mandatory member.
func (s *Selection) SelfID() string {
	return s.selfID
}

// Toggle removes id when it is a member and adds it otherwise.
// Toggling the self id is a no-op. It reports whether id is a member afterwards.
func (s *Selection) Toggle(id string) bool {
	if id == s.selfID {
		return true
	}

	if _, ok := s.members[id]; ok {
		delete(s.members, id)

		return false
	}

	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	s.members[id] = struct{}{}

	return true
}

// Reset restores the selection to {self}.
func (s *Selection) Reset() {
	s.members = map[string]struct{}{s.selfID: {}}
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id string) bool {
	_, ok := s.members[id]

	return ok
}

// Len returns the number of selected ids, including ids unknown to the registry.
func (s *Selection) Len() int {
	return len(s.members)
}

// IDs returns the selected ids in ascending order.
func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.members))
	for id := range s.members {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Clone returns an independent copy of the selection.
func (s *Selection) Clone() *Selection {
	cloned := &Selection{
		selfID:  s.selfID,
		members: make(map[string]struct{}, len(s.members)),
	}
	for id := range s.members {
		cloned.members[id] = struct{}{}
	}

	return cloned
}
