package crdt

import "fmt"

// AWORSet is the add-wins observed-remove set of spec §4.9: a dot kernel
// keyed by element value, where a concurrent add and remove of the same
// element resolves in favor of the add.
type AWORSet[E comparable, K comparable] struct {
	DK *DotKernel[E, K]
}

// NewAWORSet returns an empty add-wins set that owns its own causal
// context.
func NewAWORSet[E comparable, K comparable]() *AWORSet[E, K] {
	return &AWORSet[E, K]{DK: NewDotKernel[E, K]()}
}

// NewEmbeddedAWORSet returns an empty add-wins set whose kernel shares c,
// the construction ORMap uses for an add-wins-valued entry.
func NewEmbeddedAWORSet[E comparable, K comparable](c *CausalContext[K]) *AWORSet[E, K] {
	return &AWORSet[E, K]{DK: NewEmbeddedDotKernel[E, K](c)}
}

// Add removes every dot currently carrying v (so a stale add cannot
// resurrect v past this point) and adds a fresh dot carrying v, both in
// one delta: the add-wins guarantee comes from the fresh dot not being
// causally dominated by any concurrent remove that didn't observe it.
func (s *AWORSet[E, K]) Add(self K, v E) *AWORSet[E, K] {
	delta := NewDotKernel[E, K]()
	for d, val := range s.DK.DS {
		if val == v {
			delta.C.InsertDot(d, false)
			delete(s.DK.DS, d)
		}
	}
	dot := s.DK.C.MakeDot(self)
	s.DK.DS[dot] = v
	delta.DS[dot] = v
	delta.C.InsertDot(dot, false)
	delta.C.Flush()
	return &AWORSet[E, K]{DK: delta}
}

// Rmv removes every dot currently carrying v.
func (s *AWORSet[E, K]) Rmv(v E) *AWORSet[E, K] {
	return &AWORSet[E, K]{DK: s.DK.RemoveValue(v)}
}

// Reset removes every active dot.
func (s *AWORSet[E, K]) Reset() *AWORSet[E, K] {
	return &AWORSet[E, K]{DK: s.DK.RemoveAll()}
}

// In reports whether v has at least one active dot.
func (s *AWORSet[E, K]) In(v E) bool {
	for _, val := range s.DK.DS {
		if val == v {
			return true
		}
	}
	return false
}

// Read returns the distinct active payloads; order is unspecified.
func (s *AWORSet[E, K]) Read() []E {
	seen := make(map[E]struct{}, len(s.DK.DS))
	for _, v := range s.DK.DS {
		seen[v] = struct{}{}
	}
	res := make([]E, 0, len(seen))
	for v := range seen {
		res = append(res, v)
	}
	return res
}

// Context returns the kernel's causal context.
func (s *AWORSet[E, K]) Context() *CausalContext[K] {
	return s.DK.Context()
}

// Rehome returns a shallow copy sharing c instead of the receiver's
// current context, preserving every active dot and payload. ORMap uses
// this to rebuild its embedded values around a freshly cloned shared
// context.
func (s *AWORSet[E, K]) Rehome(c *CausalContext[K]) *AWORSet[E, K] {
	nk := NewEmbeddedDotKernel[E, K](c)
	for d, v := range s.DK.DS {
		nk.DS[d] = v
	}
	return &AWORSet[E, K]{DK: nk}
}

// Join merges o into s.
func (s *AWORSet[E, K]) Join(o *AWORSet[E, K]) {
	s.DK.Join(o.DK)
}

// Clone returns an independent copy.
func (s *AWORSet[E, K]) Clone() *AWORSet[E, K] {
	return &AWORSet[E, K]{DK: s.DK.Clone()}
}

func (s *AWORSet[E, K]) String() string {
	return fmt.Sprintf("AWORSet%v", s.Read())
}
