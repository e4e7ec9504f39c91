package crdt

import "fmt"

// MaxBox wraps a single scalar as a join-by-max lattice, the shape
// BCounter needs for its per-edge transfer ledger: each (from, to) entry
// is written only by from, monotonically, so two replicas' views of the
// same entry reconcile by keeping the larger.
type MaxBox[V Number] struct {
	N V
}

// Join keeps the larger of the two values.
func (m *MaxBox[V]) Join(o *MaxBox[V]) {
	m.N = MaxJoin(m.N, o.N)
}

// Clone returns an independent copy.
func (m *MaxBox[V]) Clone() *MaxBox[V] {
	return &MaxBox[V]{N: m.N}
}

// BCounter is the bounded counter of spec §4.13: a PNCounter giving each
// replica a grow/shrink allowance, plus a directed transfer ledger that
// lets replicas move allowance between each other without ever needing a
// coordinator, while keeping local() >= 0 everywhere at every time.
type BCounter[V Number, K comparable] struct {
	PNC       *PNCounter[V, K]
	Transfers *GMap[Pair[K, K], *MaxBox[V]]
}

func zeroMaxBox[V Number]() *MaxBox[V] { return &MaxBox[V]{} }

// NewBCounter returns a zero-valued bounded counter.
func NewBCounter[V Number, K comparable]() *BCounter[V, K] {
	return &BCounter[V, K]{
		PNC:       NewPNCounter[V, K](),
		Transfers: NewGMap[Pair[K, K], *MaxBox[V]](zeroMaxBox[V]),
	}
}

func emptyBCounterDelta[V Number, K comparable]() *BCounter[V, K] {
	return &BCounter[V, K]{
		PNC:       NewPNCounter[V, K](),
		Transfers: NewGMap[Pair[K, K], *MaxBox[V]](zeroMaxBox[V]),
	}
}

// Inc adds delta to self's grow side; a bounded counter's supply only
// ever grows through Inc, never through a transfer.
func (bc *BCounter[V, K]) Inc(self K, delta V) *BCounter[V, K] {
	res := emptyBCounterDelta[V, K]()
	res.PNC = bc.PNC.Inc(self, delta)
	return res
}

// Local returns self's spendable quota: its own net PNCounter
// contribution, plus everything transferred to it, minus everything it
// has transferred away.
func (bc *BCounter[V, K]) Local(self K) V {
	local := bc.PNC.LocalRead(self)
	for k, box := range bc.Transfers.M {
		switch {
		case k.Second == self:
			local += box.N
		case k.First == self:
			local -= box.N
		}
	}
	return local
}

// Dec shrinks self's allowance by delta, but only if self's current
// local() covers it; otherwise it is a silent no-op, returning an empty
// delta (spec §7: bounded-counter quota violations never error, callers
// must check local() themselves).
func (bc *BCounter[V, K]) Dec(self K, delta V) *BCounter[V, K] {
	if bc.Local(self) < delta {
		logDebug("msg", "bcounter dec insufficient capacity", "replica", self, "requested", delta, "err", ErrInsufficientCapacity)
		return emptyBCounterDelta[V, K]()
	}
	res := emptyBCounterDelta[V, K]()
	res.PNC = bc.PNC.Dec(self, delta)
	return res
}

// Mv moves q units of self's allowance to to, succeeding only if self's
// local() covers q.
func (bc *BCounter[V, K]) Mv(self K, q V, to K) *BCounter[V, K] {
	if bc.Local(self) < q {
		logDebug("msg", "bcounter mv insufficient capacity", "from", self, "to", to, "requested", q, "err", ErrInsufficientCapacity)
		return emptyBCounterDelta[V, K]()
	}
	key := Pair[K, K]{First: self, Second: to}
	box := bc.Transfers.At(key)
	box.N += q

	res := emptyBCounterDelta[V, K]()
	res.Transfers.M[key] = &MaxBox[V]{N: box.N}
	return res
}

// Read returns the counter's global value: the transfer ledger only
// redistributes allowance between replicas, it never changes the total.
func (bc *BCounter[V, K]) Read() V {
	return bc.PNC.Read()
}

// Join merges o into bc.
func (bc *BCounter[V, K]) Join(o *BCounter[V, K]) {
	bc.PNC.Join(o.PNC)
	bc.Transfers.Join(o.Transfers)
}

// Clone returns an independent copy.
func (bc *BCounter[V, K]) Clone() *BCounter[V, K] {
	return &BCounter[V, K]{PNC: bc.PNC.Clone(), Transfers: bc.Transfers.Clone()}
}

func (bc *BCounter[V, K]) String() string {
	return fmt.Sprintf("BCounter=%v", bc.Read())
}
