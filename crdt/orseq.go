package crdt

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// orSeqEntry is one slot of an ORSeq: a fractional position, the dot
// that created it, and its payload. Entries are always kept sorted by
// (Pos, Dot.ID), the total order spec §4.16 requires across replicas.
type orSeqEntry[T any, K constraints.Ordered] struct {
	Pos Position
	Dot Dot[K]
	Val T
}

// ORSeq is the add-wins ordered sequence of spec §4.16: elements carry a
// fractional position computed via Among rather than an integer index.
// Among is deterministic, so concurrent inserts between the same two
// neighbors receive equal positions; such entries are ordered by the
// inserting replica's ID (Dot.ID), so both survive a merge. Removal is
// the same tombstone-free, causal-context-tracked deletion every other
// type in this package uses.
type ORSeq[T any, K constraints.Ordered] struct {
	Entries []orSeqEntry[T, K]
	C       *CausalContext[K]
}

// NewORSeq returns an empty sequence that owns its own causal context.
func NewORSeq[T any, K constraints.Ordered]() *ORSeq[T, K] {
	return &ORSeq[T, K]{C: NewCausalContext[K]()}
}

// NewEmbeddedORSeq returns an empty sequence whose context is shared
// with c.
func NewEmbeddedORSeq[T any, K constraints.Ordered](c *CausalContext[K]) *ORSeq[T, K] {
	return &ORSeq[T, K]{C: c}
}

func (s *ORSeq[T, K]) posAt(i int) Position {
	switch {
	case i < 0:
		return Position{false}
	case i >= len(s.Entries):
		return Position{true}
	default:
		return s.Entries[i].Pos
	}
}

func (s *ORSeq[T, K]) insertSorted(e orSeqEntry[T, K]) {
	idx := sort.Search(len(s.Entries), func(i int) bool {
		c := s.Entries[i].Pos.Compare(e.Pos)
		if c != 0 {
			return c >= 0
		}
		return s.Entries[i].Dot.ID >= e.Dot.ID
	})
	s.Entries = append(s.Entries, orSeqEntry[T, K]{})
	copy(s.Entries[idx+1:], s.Entries[idx:])
	s.Entries[idx] = e
}

// insertAt places v at logical index i (0 <= i <= len), computing a
// fresh position strictly between i's current neighbors via Among, and
// returns a delta containing only that one new entry.
func (s *ORSeq[T, K]) insertAt(i int, self K, v T) *ORSeq[T, K] {
	pos := Among(s.posAt(i-1), s.posAt(i), 0)
	dot := s.C.MakeDot(self)
	e := orSeqEntry[T, K]{Pos: pos, Dot: dot, Val: v}
	s.insertSorted(e)

	deltaC := NewCausalContext[K]()
	deltaC.InsertDot(dot, true)
	return &ORSeq[T, K]{Entries: []orSeqEntry[T, K]{e}, C: deltaC}
}

// PushFront inserts v as the new first element.
func (s *ORSeq[T, K]) PushFront(self K, v T) *ORSeq[T, K] {
	return s.insertAt(0, self, v)
}

// PushBack inserts v as the new last element.
func (s *ORSeq[T, K]) PushBack(self K, v T) *ORSeq[T, K] {
	return s.insertAt(len(s.Entries), self, v)
}

// Insert places v immediately before logical index i.
func (s *ORSeq[T, K]) Insert(i int, self K, v T) *ORSeq[T, K] {
	return s.insertAt(i, self, v)
}

// Erase removes the element at logical index i, recording its dot in the
// delta's causal context so the removal is tombstone-free, not marked.
func (s *ORSeq[T, K]) Erase(i int) *ORSeq[T, K] {
	deltaC := NewCausalContext[K]()
	if i >= 0 && i < len(s.Entries) {
		dot := s.Entries[i].Dot
		s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
		deltaC.InsertDot(dot, false)
		deltaC.Flush()
	}
	return &ORSeq[T, K]{C: deltaC}
}

// Reset removes every element.
func (s *ORSeq[T, K]) Reset() *ORSeq[T, K] {
	deltaC := NewCausalContext[K]()
	for _, e := range s.Entries {
		deltaC.InsertDot(e.Dot, false)
	}
	s.Entries = nil
	deltaC.Flush()
	return &ORSeq[T, K]{C: deltaC}
}

// Len returns the number of elements.
func (s *ORSeq[T, K]) Len() int {
	return len(s.Entries)
}

// Read returns the elements in order.
func (s *ORSeq[T, K]) Read() []T {
	res := make([]T, len(s.Entries))
	for i, e := range s.Entries {
		res[i] = e.Val
	}
	return res
}

// Context returns the sequence's causal context.
func (s *ORSeq[T, K]) Context() *CausalContext[K] {
	return s.C
}

// Join merges o into s using the same walk-merge skeleton as DotKernel
// (spec §4.16): an entry present only locally is kept unless the other
// side's context has observed its dot; an entry only on the other side
// is imported unless self's context has observed its dot; an entry
// present on both sides (identical dot) is kept as is. The merged list
// is re-sorted by (position, owning-replica-id).
func (s *ORSeq[T, K]) Join(o *ORSeq[T, K]) {
	if s == o {
		return
	}
	inOther := make(map[Dot[K]]struct{}, len(o.Entries))
	for _, e := range o.Entries {
		inOther[e.Dot] = struct{}{}
	}
	inSelf := make(map[Dot[K]]struct{}, len(s.Entries))
	for _, e := range s.Entries {
		inSelf[e.Dot] = struct{}{}
	}

	kept := make([]orSeqEntry[T, K], 0, len(s.Entries)+len(o.Entries))
	for _, e := range s.Entries {
		if _, both := inOther[e.Dot]; both {
			kept = append(kept, e)
			continue
		}
		if o.C.DotIn(e.Dot) {
			continue
		}
		kept = append(kept, e)
	}
	for _, e := range o.Entries {
		if _, both := inSelf[e.Dot]; both {
			continue
		}
		if s.C.DotIn(e.Dot) {
			continue
		}
		kept = append(kept, e)
	}

	sort.Slice(kept, func(i, j int) bool {
		c := kept[i].Pos.Compare(kept[j].Pos)
		if c != 0 {
			return c < 0
		}
		return kept[i].Dot.ID < kept[j].Dot.ID
	})
	s.Entries = kept
	s.C.Join(o.C)
}

// Clone returns an independent copy.
func (s *ORSeq[T, K]) Clone() *ORSeq[T, K] {
	res := &ORSeq[T, K]{
		Entries: make([]orSeqEntry[T, K], len(s.Entries)),
		C:       s.C.Clone(),
	}
	copy(res.Entries, s.Entries)
	return res
}

// Rehome returns a shallow copy sharing c instead of the receiver's
// current context, preserving every entry.
func (s *ORSeq[T, K]) Rehome(c *CausalContext[K]) *ORSeq[T, K] {
	res := &ORSeq[T, K]{Entries: make([]orSeqEntry[T, K], len(s.Entries)), C: c}
	copy(res.Entries, s.Entries)
	return res
}

func (s *ORSeq[T, K]) String() string {
	return fmt.Sprintf("ORSeq%v", s.Read())
}
