package domain

import (
	"slices"

	"github.com/google/uuid"
)

// TopicSet is a set of topic identifiers. Add and Remove are idempotent, so
// callers never deduplicate by hand.
type TopicSet map[uuid.UUID]struct{}

// NewTopicSet builds a set from ids, collapsing duplicates.
func NewTopicSet(ids ...uuid.UUID) TopicSet {
	s := make(TopicSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id and reports whether the set changed.
func (s TopicSet) Add(id uuid.UUID) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Remove deletes id and reports whether the set changed.
func (s TopicSet) Remove(id uuid.UUID) bool {
	if _, ok := s[id]; !ok {
		return false
	}
	delete(s, id)
	return true
}

// Has reports membership. Safe on a nil set.
func (s TopicSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the cardinality. Safe on a nil set.
func (s TopicSet) Len() int { return len(s) }

// IntersectCount returns |s ∩ other| without allocating.
func (s TopicSet) IntersectCount(other TopicSet) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for id := range small {
		if large.Has(id) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (s TopicSet) Clone() TopicSet {
	out := make(TopicSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// IDs returns the members in a stable (lexicographic) order.
func (s TopicSet) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	return ids
}
