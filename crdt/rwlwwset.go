package crdt

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// RWLWWSet is the last-writer-wins set of spec §4.7: each member carries
// a (timestamp, removed?) pair joined lexicographically, so the later
// write always wins and, on an exact timestamp tie, removal wins.
type RWLWWSet[U constraints.Ordered, V comparable] struct {
	M map[V]Pair[U, bool]
}

// NewRWLWWSet returns an empty LWW set.
func NewRWLWWSet[U constraints.Ordered, V comparable]() *RWLWWSet[U, V] {
	return &RWLWWSet[U, V]{M: make(map[V]Pair[U, bool])}
}

func boolTieRemoveWins(l, r bool) bool { return l || r }

// Add writes (t, v) with removed=false, lexjoined against whatever entry
// v already has.
func (s *RWLWWSet[U, V]) Add(t U, v V) *RWLWWSet[U, V] {
	return s.write(t, v, false)
}

// Rmv writes (t, v) with removed=true, lexjoined against whatever entry
// v already has.
func (s *RWLWWSet[U, V]) Rmv(t U, v V) *RWLWWSet[U, V] {
	return s.write(t, v, true)
}

func (s *RWLWWSet[U, V]) write(t U, v V, removed bool) *RWLWWSet[U, V] {
	entry := Pair[U, bool]{First: t, Second: removed}
	if cur, ok := s.M[v]; ok {
		merged, err := LexJoin(cur, entry, boolTieRemoveWins)
		if err != nil {
			logDebug("msg", "rwlwwset lexjoin unordered, keeping incoming write", "value", v, "err", err)
			merged = entry
		}
		entry = merged
	}
	s.M[v] = entry
	return &RWLWWSet[U, V]{M: map[V]Pair[U, bool]{v: entry}}
}

// In reports whether v is a member: present and not removed.
func (s *RWLWWSet[U, V]) In(v V) bool {
	e, ok := s.M[v]
	return ok && !e.Second
}

// Read returns the current members; order is unspecified.
func (s *RWLWWSet[U, V]) Read() []V {
	res := make([]V, 0, len(s.M))
	for v, e := range s.M {
		if !e.Second {
			res = append(res, v)
		}
	}
	return res
}

// Join lexjoins per key.
func (s *RWLWWSet[U, V]) Join(o *RWLWWSet[U, V]) {
	if s == o {
		return
	}
	for v, oe := range o.M {
		if cur, ok := s.M[v]; ok {
			merged, err := LexJoin(cur, oe, boolTieRemoveWins)
			if err != nil {
				logDebug("msg", "rwlwwset lexjoin unordered during join, keeping other side", "value", v, "err", err)
				merged = oe
			}
			s.M[v] = merged
		} else {
			s.M[v] = oe
		}
	}
}

// Clone returns an independent copy.
func (s *RWLWWSet[U, V]) Clone() *RWLWWSet[U, V] {
	res := NewRWLWWSet[U, V]()
	for v, e := range s.M {
		res.M[v] = e
	}
	return res
}

func (s *RWLWWSet[U, V]) String() string {
	return fmt.Sprintf("RWLWWSet%v", s.Read())
}
