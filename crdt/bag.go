package crdt

import "fmt"

// Bag is the dot kernel of spec §4.12 where the payload is itself
// joinable: concurrent updates landing under the same dot merge their
// payloads via DeepJoin instead of one side winning outright. Each
// replica keeps at most one "current" dot — the most recently allocated
// one it owns — which Update mutates in place; Fresh lets a caller force
// a brand-new current dot, the mechanism RWCounter uses to survive a
// concurrent reset.
type Bag[V comparableValueJoiner[V], K comparable] struct {
	DK *DotKernel[V, K]
}

// NewBag returns an empty bag that owns its own causal context.
func NewBag[V comparableValueJoiner[V], K comparable]() *Bag[V, K] {
	return &Bag[V, K]{DK: NewDotKernel[V, K]()}
}

// NewEmbeddedBag returns an empty bag whose kernel shares c.
func NewEmbeddedBag[V comparableValueJoiner[V], K comparable](c *CausalContext[K]) *Bag[V, K] {
	return &Bag[V, K]{DK: NewEmbeddedDotKernel[V, K](c)}
}

// MyDot returns the most recently allocated dot self owns, if any.
func (b *Bag[V, K]) MyDot(self K) (Dot[K], bool) {
	var best Dot[K]
	found := false
	for d := range b.DK.DS {
		if d.ID != self {
			continue
		}
		if !found || d.Seq > best.Seq {
			best, found = d, true
		}
	}
	return best, found
}

// Fresh unconditionally allocates a new current dot for self, with the
// zero value of V, leaving any prior dot self owned untouched in DS.
// MyDot always prefers the highest-Seq dot, so this new dot becomes
// self's current one. Calling it before further updates is what lets
// an increment survive a reset a peer made after observing only the
// old dot: the reset's delta can only ever name dots it actually saw.
func (b *Bag[V, K]) Fresh(self K) *Bag[V, K] {
	var zero V
	dot := b.DK.AddDot(self, zero)
	delta := NewDotKernel[V, K]()
	delta.DS[dot] = zero
	delta.C.InsertDot(dot, true)
	return &Bag[V, K]{DK: delta}
}

// Update applies f to self's current payload (allocating a fresh dot
// with the zero value first if self has none yet), stores the result,
// and returns a delta carrying the new payload under that dot.
func (b *Bag[V, K]) Update(self K, f func(V) V) *Bag[V, K] {
	dot, found := b.MyDot(self)
	if !found {
		var zero V
		dot = b.DK.C.MakeDot(self)
		b.DK.DS[dot] = zero
	}
	newVal := f(b.DK.DS[dot])
	b.DK.DS[dot] = newVal

	delta := NewDotKernel[V, K]()
	delta.DS[dot] = newVal
	delta.C.InsertDot(dot, true)
	return &Bag[V, K]{DK: delta}
}

// Reset removes every active dot.
func (b *Bag[V, K]) Reset() *Bag[V, K] {
	return &Bag[V, K]{DK: b.DK.RemoveAll()}
}

// Context returns the kernel's causal context.
func (b *Bag[V, K]) Context() *CausalContext[K] {
	return b.DK.Context()
}

// Rehome returns a shallow copy sharing c instead of the receiver's
// current context, preserving every active dot and payload.
func (b *Bag[V, K]) Rehome(c *CausalContext[K]) *Bag[V, K] {
	nk := NewEmbeddedDotKernel[V, K](c)
	for d, v := range b.DK.DS {
		nk.DS[d] = v
	}
	return &Bag[V, K]{DK: nk}
}

// Join merges o into b via DeepJoin, so a dot active on both sides with
// differing payloads joins those payloads instead of picking one.
func (b *Bag[V, K]) Join(o *Bag[V, K]) {
	DeepJoin(b.DK, o.DK)
}

// Clone returns an independent copy.
func (b *Bag[V, K]) Clone() *Bag[V, K] {
	return &Bag[V, K]{DK: b.DK.Clone()}
}

func (b *Bag[V, K]) String() string {
	return fmt.Sprintf("Bag(%d entries)", len(b.DK.DS))
}
