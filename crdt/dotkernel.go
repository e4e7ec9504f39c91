package crdt

// DotKernel is the causal hub most composite CRDTs in this package embed
// (spec §4.4): a map from active dots to payloads, plus the causal
// context that records every dot ever observed — active or not. A dot
// present in the context but absent from DS is a tombstone-free removal:
// the context still says "I saw this," the store just no longer holds a
// value for it.
//
// The causal context may be owned outright (the common case, for a
// top-level CRDT) or shared by reference with sibling kernels embedded in
// the same ORMap (spec §4.15); DotKernel does not care which, it only
// ever reads and mutates through the pointer.
type DotKernel[T comparable, K comparable] struct {
	DS map[Dot[K]]T
	C  *CausalContext[K]
}

// NewDotKernel returns an empty kernel that owns a fresh causal context.
func NewDotKernel[T comparable, K comparable]() *DotKernel[T, K] {
	return &DotKernel[T, K]{
		DS: make(map[Dot[K]]T),
		C:  NewCausalContext[K](),
	}
}

// NewEmbeddedDotKernel returns an empty kernel that shares c with its
// siblings, the construction ORMap uses for its embedded values.
func NewEmbeddedDotKernel[T comparable, K comparable](c *CausalContext[K]) *DotKernel[T, K] {
	return &DotKernel[T, K]{
		DS: make(map[Dot[K]]T),
		C:  c,
	}
}

// Clone returns a deep copy with its own, independently owned causal
// context. It is what lets the free function Join produce a result
// without mutating its arguments; it is not used on embedded kernels,
// whose whole point is to keep sharing a context.
func (dk *DotKernel[T, K]) Clone() *DotKernel[T, K] {
	res := NewDotKernel[T, K]()
	for d, v := range dk.DS {
		res.DS[d] = v
	}
	res.C = dk.C.Clone()
	return res
}

// Context returns the kernel's causal context, per spec §9's
// recommendation to expose an accessor instead of a public field.
func (dk *DotKernel[T, K]) Context() *CausalContext[K] {
	return dk.C
}

// Add allocates a fresh dot owned by id, stores val under it, and returns
// a delta kernel containing only that one dot (in both DS and its own
// fresh causal context).
func (dk *DotKernel[T, K]) Add(id K, val T) *DotKernel[T, K] {
	dot := dk.C.MakeDot(id)
	dk.DS[dot] = val

	res := NewDotKernel[T, K]()
	res.DS[dot] = val
	res.C.InsertDot(dot, true)
	return res
}

// AddDot is Add without building a delta: it allocates the dot, stores
// val, and returns the bare dot. Used internally where a caller is about
// to fold several additions into one larger delta itself (CausalCounter,
// Bag.Fresh), matching the reference's dotAdd.
func (dk *DotKernel[T, K]) AddDot(id K, val T) Dot[K] {
	dot := dk.C.MakeDot(id)
	dk.DS[dot] = val
	return dot
}

// RemoveValue removes every active dot whose payload equals val, and
// returns a delta kernel recording those dots (in cloud form, then
// compacted) without re-adding them to its own DS.
func (dk *DotKernel[T, K]) RemoveValue(val T) *DotKernel[T, K] {
	res := NewDotKernel[T, K]()
	for d, v := range dk.DS {
		if v == val {
			res.C.InsertDot(d, false)
			delete(dk.DS, d)
		}
	}
	res.C.Flush()
	return res
}

// RemoveDot removes a single dot, if active, and returns a delta
// recording it.
func (dk *DotKernel[T, K]) RemoveDot(d Dot[K]) *DotKernel[T, K] {
	res := NewDotKernel[T, K]()
	if _, ok := dk.DS[d]; ok {
		res.C.InsertDot(d, false)
		delete(dk.DS, d)
	}
	res.C.Flush()
	return res
}

// RemoveAll drops every active dot, returning a delta that records all of
// them as removed.
func (dk *DotKernel[T, K]) RemoveAll() *DotKernel[T, K] {
	res := NewDotKernel[T, K]()
	for d := range dk.DS {
		res.C.InsertDot(d, false)
		delete(dk.DS, d)
	}
	res.C.Flush()
	return res
}

// Join is the central merge of spec §4.4: a dot active only on one side
// survives iff the other side's causal context has never observed it —
// otherwise it was causally removed there and must go. A dot active on
// both sides is assumed to carry the same payload on both (the common
// case for every type except Bag) and is simply kept.
func (dk *DotKernel[T, K]) Join(o *DotKernel[T, K]) {
	if dk == o {
		return
	}
	for d := range dk.DS {
		if _, ok := o.DS[d]; !ok && o.C.DotIn(d) {
			delete(dk.DS, d)
		}
	}
	for d, v := range o.DS {
		if _, ok := dk.DS[d]; !ok && !dk.C.DotIn(d) {
			dk.DS[d] = v
		}
	}
	dk.C.Join(o.C)
	logDebug("msg", "dot kernel joined", "size", len(dk.DS))
}

// comparableValueJoiner is satisfied by payload types whose join is a
// pure function (not an in-place mutation), appropriate for storage as a
// map value: Bag's payload type, and any MVReg payload passed through
// ResolveMVReg, must satisfy it.
type comparableValueJoiner[T any] interface {
	comparable
	Join(T) T
}

// DeepJoin is the variant of Join used by Bag (spec §4.12): when a dot is
// active on both sides with differing payloads, instead of assuming they
// match, the payloads themselves are joined via T's pure Join method.
// This lifts the kernel from a set-of-observed-dots to a
// map-of-mergeable-payloads per dot.
func DeepJoin[T comparableValueJoiner[T], K comparable](dk, o *DotKernel[T, K]) {
	if dk == o {
		return
	}
	for d := range dk.DS {
		if _, ok := o.DS[d]; !ok && o.C.DotIn(d) {
			delete(dk.DS, d)
		}
	}
	for d, ov := range o.DS {
		if v, ok := dk.DS[d]; ok {
			if v != ov {
				dk.DS[d] = v.Join(ov)
			}
		} else if !dk.C.DotIn(d) {
			dk.DS[d] = ov
		}
	}
	dk.C.Join(o.C)
}
