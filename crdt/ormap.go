package crdt

import "fmt"

// Embeddable is satisfied by every CRDT type in this package that can
// live as an ORMap value: a kernel-based type exposing its causal
// context, a Reset that erases it for ORMap.Erase to harvest, and a
// Rehome that lets ORMap rebuild its entries around a freshly cloned
// shared context.
type Embeddable[V any, K comparable] interface {
	Lattice[V]
	Cloner[V]
	Context() *CausalContext[K]
	Reset() V
	Rehome(c *CausalContext[K]) V
}

// ORMap is the embeddable OR-map of spec §4.15: a keyed collection of
// CRDT values that all share a single causal context, so that deleting a
// key is just erasing its local entry — the shared context still
// remembers every dot that was ever written there, which is what lets a
// concurrent add to the same key after a delete be told apart from a
// resurrection of the deleted value.
type ORMap[N comparable, V Embeddable[V, K], K comparable] struct {
	M   map[N]V
	C   *CausalContext[K]
	New func(c *CausalContext[K]) V
}

// NewORMap returns an empty OR-map. newFn constructs a fresh, empty
// embedded value sharing whatever context it's given — the same
// constructor used both for map entries and for internal deltas.
func NewORMap[N comparable, V Embeddable[V, K], K comparable](newFn func(c *CausalContext[K]) V) *ORMap[N, V, K] {
	return &ORMap[N, V, K]{M: make(map[N]V), C: NewCausalContext[K](), New: newFn}
}

func (m *ORMap[N, V, K]) emptyDelta() *ORMap[N, V, K] {
	return NewORMap[N, V, K](m.New)
}

// At returns the value stored for n, inserting a fresh entry under the
// map's shared context first if n is absent.
func (m *ORMap[N, V, K]) At(n N) V {
	if v, ok := m.M[n]; ok {
		return v
	}
	v := m.New(m.C)
	m.M[n] = v
	return v
}

// Erase drops n's local entry after resetting it, returning a delta that
// carries only the dots the reset collected — joining this delta
// anywhere propagates the deletion without any tombstone on the key
// itself.
func (m *ORMap[N, V, K]) Erase(n N) *ORMap[N, V, K] {
	delta := m.emptyDelta()
	if v, ok := m.M[n]; ok {
		rd := v.Reset()
		delta.C = rd.Context()
		delete(m.M, n)
		logDebug("msg", "ormap key erased", "key", n)
	}
	return delta
}

// Reset erases every key.
func (m *ORMap[N, V, K]) Reset() *ORMap[N, V, K] {
	delta := m.emptyDelta()
	for n, v := range m.M {
		rd := v.Reset()
		delta.C.Join(rd.Context())
		delete(m.M, n)
	}
	return delta
}

// Join merges o into m (spec §4.15): a key present only in m is joined
// against an empty value built under o's context, so that any dot o has
// causally observed as removed is dropped locally too; a key present
// only in o is inserted and joined under m's own context; a key in both
// is joined directly. The shared contexts are joined last.
func (m *ORMap[N, V, K]) Join(o *ORMap[N, V, K]) {
	if m == o {
		return
	}
	// Every entry shares m.C, and each entry's own Join folds the other
	// side's context into it; restore the pre-join context after each
	// entry so later entries still see o's dots as unobserved.
	ic := m.C.Clone()
	restore := func() { *m.C = *ic.Clone() }
	for n, v := range m.M {
		if _, ok := o.M[n]; !ok {
			empty := m.New(o.C)
			v.Join(empty)
			restore()
		}
	}
	for n, ov := range o.M {
		if v, ok := m.M[n]; ok {
			v.Join(ov)
		} else {
			nv := m.New(m.C)
			nv.Join(ov)
			m.M[n] = nv
		}
		restore()
	}
	m.C.Join(o.C)
}

// Context returns the map's shared causal context.
func (m *ORMap[N, V, K]) Context() *CausalContext[K] {
	return m.C
}

// Clone returns an independent copy: the shared context is cloned once,
// and every entry is rehomed around the clone so the one-context-per-map
// invariant survives the copy.
func (m *ORMap[N, V, K]) Clone() *ORMap[N, V, K] {
	res := &ORMap[N, V, K]{M: make(map[N]V), C: m.C.Clone(), New: m.New}
	for n, v := range m.M {
		res.M[n] = v.Rehome(res.C)
	}
	return res
}

func (m *ORMap[N, V, K]) String() string {
	return fmt.Sprintf("ORMap(%d keys)", len(m.M))
}
