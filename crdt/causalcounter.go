package crdt

import "fmt"

// CausalCounter is the reset-resilient signed counter of spec §4.11: a
// dot kernel with one payload slot per replica, where inc/dec fold into
// a fresh dot off the replica's own current maximum rather than blindly
// summing, so that a decrement can't be undone by joining an older
// increment from the same replica.
type CausalCounter[V Number, K comparable] struct {
	DK *DotKernel[V, K]
}

// NewCausalCounter returns a zero-valued causal counter that owns its
// own causal context.
func NewCausalCounter[V Number, K comparable]() *CausalCounter[V, K] {
	return &CausalCounter[V, K]{DK: NewDotKernel[V, K]()}
}

// NewEmbeddedCausalCounter returns a zero-valued causal counter whose
// kernel shares c.
func NewEmbeddedCausalCounter[V Number, K comparable](c *CausalContext[K]) *CausalCounter[V, K] {
	return &CausalCounter[V, K]{DK: NewEmbeddedDotKernel[V, K](c)}
}

func (c *CausalCounter[V, K]) apply(self K, delta V, sign V) *CausalCounter[V, K] {
	var base V
	var ownDots []Dot[K]
	for d, v := range c.DK.DS {
		if d.ID != self {
			continue
		}
		ownDots = append(ownDots, d)
		if v > base {
			base = v
		}
	}

	out := NewDotKernel[V, K]()
	for _, d := range ownDots {
		out.C.InsertDot(d, false)
		delete(c.DK.DS, d)
	}
	newVal := base + sign*delta
	dot := c.DK.AddDot(self, newVal)
	out.DS[dot] = newVal
	out.C.InsertDot(dot, false)
	out.C.Flush()
	return &CausalCounter[V, K]{DK: out}
}

// Inc folds delta into a fresh dot replacing self's prior dots.
func (c *CausalCounter[V, K]) Inc(self K, delta V) *CausalCounter[V, K] {
	return c.apply(self, delta, 1)
}

// Dec folds -delta into a fresh dot replacing self's prior dots.
func (c *CausalCounter[V, K]) Dec(self K, delta V) *CausalCounter[V, K] {
	return c.apply(self, delta, V(0)-V(1))
}

// Read sums every active dot's payload across every replica.
func (c *CausalCounter[V, K]) Read() V {
	var total V
	for _, v := range c.DK.DS {
		total += v
	}
	return total
}

// Reset removes every active dot. Concurrent increments from other
// replicas that this reset never observed survive the merge, since
// Join only drops dots the other side's context has seen.
func (c *CausalCounter[V, K]) Reset() *CausalCounter[V, K] {
	return &CausalCounter[V, K]{DK: c.DK.RemoveAll()}
}

// Context returns the kernel's causal context.
func (c *CausalCounter[V, K]) Context() *CausalContext[K] {
	return c.DK.Context()
}

// Rehome returns a shallow copy sharing nc instead of the receiver's
// current context, preserving every active dot and payload.
func (c *CausalCounter[V, K]) Rehome(nc *CausalContext[K]) *CausalCounter[V, K] {
	nk := NewEmbeddedDotKernel[V, K](nc)
	for d, v := range c.DK.DS {
		nk.DS[d] = v
	}
	return &CausalCounter[V, K]{DK: nk}
}

// Join merges o into c.
func (c *CausalCounter[V, K]) Join(o *CausalCounter[V, K]) {
	c.DK.Join(o.DK)
}

// Clone returns an independent copy.
func (c *CausalCounter[V, K]) Clone() *CausalCounter[V, K] {
	return &CausalCounter[V, K]{DK: c.DK.Clone()}
}

func (c *CausalCounter[V, K]) String() string {
	return fmt.Sprintf("CausalCounter=%v", c.Read())
}
