package crdt

import "fmt"

// RWORSet is the remove-wins observed-remove set of spec §4.9: the dual
// of AWORSet, where a concurrent add and remove of the same element
// resolves in favor of the remove. The kernel payload carries the
// element alongside an added? flag so both adds and removes leave a
// trace that Read can weigh.
type RWORSet[E comparable, K comparable] struct {
	DK *DotKernel[Pair[E, bool], K]
}

// NewRWORSet returns an empty remove-wins set that owns its own causal
// context.
func NewRWORSet[E comparable, K comparable]() *RWORSet[E, K] {
	return &RWORSet[E, K]{DK: NewDotKernel[Pair[E, bool], K]()}
}

// NewEmbeddedRWORSet returns an empty remove-wins set whose kernel shares
// c, the construction ORMap uses for a remove-wins-valued entry.
func NewEmbeddedRWORSet[E comparable, K comparable](c *CausalContext[K]) *RWORSet[E, K] {
	return &RWORSet[E, K]{DK: NewEmbeddedDotKernel[Pair[E, bool], K](c)}
}

func (s *RWORSet[E, K]) write(self K, v E, added bool) *RWORSet[E, K] {
	delta := NewDotKernel[Pair[E, bool], K]()
	for d, p := range s.DK.DS {
		if p.First == v {
			delta.C.InsertDot(d, false)
			delete(s.DK.DS, d)
		}
	}
	dot := s.DK.C.MakeDot(self)
	payload := Pair[E, bool]{First: v, Second: added}
	s.DK.DS[dot] = payload
	delta.DS[dot] = payload
	delta.C.InsertDot(dot, false)
	delta.C.Flush()
	return &RWORSet[E, K]{DK: delta}
}

// Add removes every dot (add or remove) currently recorded for v, then
// adds a fresh dot recording (v, added=true).
func (s *RWORSet[E, K]) Add(self K, v E) *RWORSet[E, K] {
	return s.write(self, v, true)
}

// Rmv removes every dot currently recorded for v, then adds a fresh dot
// recording (v, added=false); the fresh removal dot dominates any
// concurrent add that didn't yet observe it, giving remove-wins.
func (s *RWORSet[E, K]) Rmv(self K, v E) *RWORSet[E, K] {
	return s.write(self, v, false)
}

// Reset removes every active dot.
func (s *RWORSet[E, K]) Reset() *RWORSet[E, K] {
	return &RWORSet[E, K]{DK: s.DK.RemoveAll()}
}

// In reports whether v is a member: present, and every active dot
// recorded for v says added=true.
func (s *RWORSet[E, K]) In(v E) bool {
	found := false
	for _, p := range s.DK.DS {
		if p.First != v {
			continue
		}
		found = true
		if !p.Second {
			return false
		}
	}
	return found
}

// Read returns every element for which In holds; order is unspecified.
func (s *RWORSet[E, K]) Read() []E {
	allTrue := make(map[E]bool)
	seen := make(map[E]bool)
	for _, p := range s.DK.DS {
		seen[p.First] = true
		if cur, ok := allTrue[p.First]; !ok {
			allTrue[p.First] = p.Second
		} else {
			allTrue[p.First] = cur && p.Second
		}
	}
	res := make([]E, 0, len(seen))
	for v := range seen {
		if allTrue[v] {
			res = append(res, v)
		}
	}
	return res
}

// Context returns the kernel's causal context.
func (s *RWORSet[E, K]) Context() *CausalContext[K] {
	return s.DK.Context()
}

// Rehome returns a shallow copy sharing c instead of the receiver's
// current context, preserving every active dot and payload.
func (s *RWORSet[E, K]) Rehome(c *CausalContext[K]) *RWORSet[E, K] {
	nk := NewEmbeddedDotKernel[Pair[E, bool], K](c)
	for d, p := range s.DK.DS {
		nk.DS[d] = p
	}
	return &RWORSet[E, K]{DK: nk}
}

// Join merges o into s.
func (s *RWORSet[E, K]) Join(o *RWORSet[E, K]) {
	s.DK.Join(o.DK)
}

// Clone returns an independent copy.
func (s *RWORSet[E, K]) Clone() *RWORSet[E, K] {
	return &RWORSet[E, K]{DK: s.DK.Clone()}
}

func (s *RWORSet[E, K]) String() string {
	return fmt.Sprintf("RWORSet%v", s.Read())
}
