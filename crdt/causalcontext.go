package crdt

// CausalContext records every dot a replica has ever observed, whether or
// not that dot is still active in some dot store. It is kept compact: a
// dense per-replica prefix (Compact) plus a sparse cloud of out-of-order
// dots (Cloud) that have not yet been folded into the prefix.
//
// A CausalContext on its own answers exactly one question: "has this
// replica ever seen dot d?" That is enough to distinguish, without any
// tombstone, "I never saw this" from "I saw it and it was removed."
type CausalContext[K comparable] struct {
	Compact map[K]uint64
	Cloud   map[Dot[K]]struct{}
}

// NewCausalContext returns an empty causal context.
func NewCausalContext[K comparable]() *CausalContext[K] {
	return &CausalContext[K]{
		Compact: make(map[K]uint64),
		Cloud:   make(map[Dot[K]]struct{}),
	}
}

// Clone returns a deep copy, so callers can Join into it without aliasing
// the receiver's maps.
func (c *CausalContext[K]) Clone() *CausalContext[K] {
	res := NewCausalContext[K]()
	for k, v := range c.Compact {
		res.Compact[k] = v
	}
	for d := range c.Cloud {
		res.Cloud[d] = struct{}{}
	}
	return res
}

// DotIn reports whether dot d has ever been observed: either it falls
// within the dense prefix for d.ID, or it is sitting in the cloud.
func (c *CausalContext[K]) DotIn(d Dot[K]) bool {
	if seq, ok := c.Compact[d.ID]; ok && d.Seq <= seq {
		return true
	}
	_, ok := c.Cloud[d]
	return ok
}

// MakeDot allocates the next dot owned by replica id: compact[id]+1. The
// caller is expected to be the sole owner of id, so the returned dot never
// needs to go through the cloud — it is immediately folded into Compact.
func (c *CausalContext[K]) MakeDot(id K) Dot[K] {
	c.Compact[id]++
	return Dot[K]{ID: id, Seq: c.Compact[id]}
}

// InsertDot records d as observed. If compactNow is true (the common
// case), Compact is run immediately afterwards; callers that are about to
// insert many dots in a row may pass false and call Flush once at the
// end.
func (c *CausalContext[K]) InsertDot(d Dot[K], compactNow bool) {
	c.Cloud[d] = struct{}{}
	if compactNow {
		c.doCompact()
	}
}

// Flush folds the cloud into the dense prefix to a fixpoint: any cloud
// dot that is contiguous with its replica's prefix moves into Compact;
// any cloud dot already dominated by Compact is simply dropped. Exported
// so callers that batch InsertDot with compactNow=false can finish the
// batch.
func (c *CausalContext[K]) Flush() {
	c.doCompact()
}

func (c *CausalContext[K]) doCompact() {
	for {
		progressed := false
		for d := range c.Cloud {
			seq, ok := c.Compact[d.ID]
			switch {
			case !ok && d.Seq == 1:
				c.Compact[d.ID] = 1
				delete(c.Cloud, d)
				progressed = true
			case ok && d.Seq == seq+1:
				c.Compact[d.ID] = seq + 1
				delete(c.Cloud, d)
				progressed = true
			case ok && d.Seq <= seq:
				delete(c.Cloud, d)
			}
		}
		if !progressed {
			logDebug("msg", "causal context compacted", "cloud", len(c.Cloud))
			return
		}
	}
}

// Join merges another causal context into the receiver: per-replica max
// on the compact prefixes, union of the clouds, then a compaction pass.
func (c *CausalContext[K]) Join(o *CausalContext[K]) {
	if c == o {
		return
	}
	for id, seq := range o.Compact {
		if cur, ok := c.Compact[id]; !ok || seq > cur {
			c.Compact[id] = seq
		}
	}
	for d := range o.Cloud {
		c.Cloud[d] = struct{}{}
	}
	c.doCompact()
}
