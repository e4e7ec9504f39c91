package crdt

import "fmt"

// MVReg is the multi-value register of spec §4.10: concurrent writes are
// retained side by side as a set of payloads rather than arbitrated by a
// timestamp, leaving resolution to the application (or to ResolveMVReg,
// when the payload is itself a lattice).
type MVReg[V comparable, K comparable] struct {
	DK *DotKernel[V, K]
}

// NewMVReg returns an empty multi-value register.
func NewMVReg[V comparable, K comparable]() *MVReg[V, K] {
	return &MVReg[V, K]{DK: NewDotKernel[V, K]()}
}

// NewEmbeddedMVReg returns an empty multi-value register whose kernel
// shares c.
func NewEmbeddedMVReg[V comparable, K comparable](c *CausalContext[K]) *MVReg[V, K] {
	return &MVReg[V, K]{DK: NewEmbeddedDotKernel[V, K](c)}
}

// Write removes every currently active payload and adds v under a fresh
// dot, in one delta — the "remove-all then add" shape spec §4.10
// prescribes.
func (r *MVReg[V, K]) Write(self K, v V) *MVReg[V, K] {
	delta := NewDotKernel[V, K]()
	for d := range r.DK.DS {
		delta.C.InsertDot(d, false)
		delete(r.DK.DS, d)
	}
	dot := r.DK.C.MakeDot(self)
	r.DK.DS[dot] = v
	delta.DS[dot] = v
	delta.C.InsertDot(dot, false)
	delta.C.Flush()
	return &MVReg[V, K]{DK: delta}
}

// Read returns the set of distinct currently active payloads; more than
// one entry means concurrent writes haven't yet been reconciled by a
// later Write or ResolveMVReg.
func (r *MVReg[V, K]) Read() []V {
	seen := make(map[V]struct{}, len(r.DK.DS))
	for _, v := range r.DK.DS {
		seen[v] = struct{}{}
	}
	res := make([]V, 0, len(seen))
	for v := range seen {
		res = append(res, v)
	}
	return res
}

// Context returns the kernel's causal context.
func (r *MVReg[V, K]) Context() *CausalContext[K] {
	return r.DK.Context()
}

// Reset removes every active payload.
func (r *MVReg[V, K]) Reset() *MVReg[V, K] {
	return &MVReg[V, K]{DK: r.DK.RemoveAll()}
}

// Rehome returns a shallow copy sharing c instead of the receiver's
// current context, preserving every active dot and payload.
func (r *MVReg[V, K]) Rehome(c *CausalContext[K]) *MVReg[V, K] {
	nk := NewEmbeddedDotKernel[V, K](c)
	for d, v := range r.DK.DS {
		nk.DS[d] = v
	}
	return &MVReg[V, K]{DK: nk}
}

// Join merges o into r.
func (r *MVReg[V, K]) Join(o *MVReg[V, K]) {
	r.DK.Join(o.DK)
}

// Clone returns an independent copy.
func (r *MVReg[V, K]) Clone() *MVReg[V, K] {
	return &MVReg[V, K]{DK: r.DK.Clone()}
}

func (r *MVReg[V, K]) String() string {
	return fmt.Sprintf("MVReg%v", r.Read())
}

// ResolveMVReg is the register-shrinking delta of spec §9/original
// source: when the payload type V is itself a lattice (pure Join(V) V,
// rather than the in-place Lattice[V] every top-level CRDT uses), any
// currently held value that is dominated by another held value is
// dropped, collapsing the register towards its maximal elements. It is
// a standalone function rather than a method because most MVReg
// instantiations (plain strings, UUIDs) have no such join and should
// never be required to provide one just to satisfy the type's method
// set.
func ResolveMVReg[V comparableValueJoiner[V], K comparable](r *MVReg[V, K]) *MVReg[V, K] {
	delta := NewDotKernel[V, K]()
	for d, v := range r.DK.DS {
		dominated := false
		for d2, v2 := range r.DK.DS {
			if d == d2 || v == v2 {
				continue
			}
			if v.Join(v2) == v2 {
				dominated = true
				break
			}
		}
		if dominated {
			delta.C.InsertDot(d, false)
			delete(r.DK.DS, d)
		}
	}
	delta.C.Flush()
	return &MVReg[V, K]{DK: delta}
}
