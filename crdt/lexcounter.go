package crdt

import "fmt"

// LexCounter is the per-replica (priority, value) counter of spec §4.8.
// Plain per-key max (as GCounter uses) cannot tell a later decrement
// from an earlier, larger increment at the same replica; prepending a
// priority that only decrements ever bump totally orders each replica's
// own history, so lexicographic join picks the right side.
type LexCounter[V Number, K comparable] struct {
	M map[K]Pair[uint64, V]
}

// NewLexCounter returns an empty lex counter.
func NewLexCounter[V Number, K comparable]() *LexCounter[V, K] {
	return &LexCounter[V, K]{M: make(map[K]Pair[uint64, V])}
}

// Inc adds delta to self's value, leaving its priority untouched, and
// returns a one-entry delta.
func (c *LexCounter[V, K]) Inc(self K, delta V) *LexCounter[V, K] {
	cur := c.M[self]
	cur.Second += delta
	c.M[self] = cur
	return &LexCounter[V, K]{M: map[K]Pair[uint64, V]{self: cur}}
}

// Dec bumps self's priority and subtracts delta from its value; the
// priority bump is what lets this decrement dominate any earlier
// increment the same replica made at an equal or lower priority.
func (c *LexCounter[V, K]) Dec(self K, delta V) *LexCounter[V, K] {
	cur := c.M[self]
	cur.First++
	cur.Second -= delta
	c.M[self] = cur
	return &LexCounter[V, K]{M: map[K]Pair[uint64, V]{self: cur}}
}

// Read sums every replica's current value.
func (c *LexCounter[V, K]) Read() V {
	var total V
	for _, p := range c.M {
		total += p.Second
	}
	return total
}

func maxV[V Number](l, r V) V { return MaxJoin(l, r) }

// Join lexjoins per replica key: the higher priority wins outright, a
// tied priority joins the values by max.
func (c *LexCounter[V, K]) Join(o *LexCounter[V, K]) {
	if c == o {
		return
	}
	for k, op := range o.M {
		if cur, ok := c.M[k]; ok {
			merged, err := LexJoin(cur, op, maxV[V])
			if err != nil {
				logDebug("msg", "lexcounter lexjoin unordered during join, keeping other side", "key", k, "err", err)
				merged = op
			}
			c.M[k] = merged
		} else {
			c.M[k] = op
		}
	}
}

// Clone returns an independent copy.
func (c *LexCounter[V, K]) Clone() *LexCounter[V, K] {
	res := NewLexCounter[V, K]()
	for k, p := range c.M {
		res.M[k] = p
	}
	return res
}

func (c *LexCounter[V, K]) String() string {
	return fmt.Sprintf("LexCounter(%v)=%v", c.M, c.Read())
}
