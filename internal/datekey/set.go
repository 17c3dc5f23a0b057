package datekey

import (
	"fmt"
	"sort"
)

// Set holds completion days. Duplicates collapse; order is irrelevant.
type Set struct {
	keys map[DateKey]struct{}
}

// NewSet parses every key and fails on the first malformed one.
func NewSet(keys ...string) (Set, error) {
	s := Set{keys: make(map[DateKey]struct{}, len(keys))}
	for _, raw := range keys {
		k, err := Parse(raw)
		if err != nil {
			return Set{}, fmt.Errorf("completion set: %w", err)
		}
		s.keys[k] = struct{}{}
	}
	return s, nil
}

// SetOf builds a set from already-validated keys. Zero keys are dropped.
func SetOf(keys ...DateKey) Set {
	s := Set{keys: make(map[DateKey]struct{}, len(keys))}
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add inserts k. The zero key is ignored.
func (s *Set) Add(k DateKey) {
	if k.IsZero() {
		return
	}
	if s.keys == nil {
		s.keys = make(map[DateKey]struct{})
	}
	s.keys[k] = struct{}{}
}

// Has reports membership.
func (s Set) Has(k DateKey) bool {
	_, ok := s.keys[k]
	return ok
}

func (s Set) Len() int { return len(s.keys) }

// Sorted returns the keys in ascending (chronological) order.
func (s Set) Sorted() []DateKey {
	out := make([]DateKey, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].s < out[j].s })
	return out
}
