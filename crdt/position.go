package crdt

import "github.com/pkg/errors"

// Position is a fractional identifier for a slot in an OR-Sequence (§4.2,
// §4.16): a finite sequence of bits, ordered lexicographically with the
// convention that false < true, and that a strict prefix of another
// position sorts before it (so []bool{false} behaves as a virtual left
// sentinel and []bool{true} as a virtual right sentinel, without either
// ever needing to be materialized as an actual element's position).
type Position []bool

// Compare returns -1, 0 or 1 as p is less than, equal to, or greater than
// q, using bit-vector lexicographic order.
func (p Position) Compare(q Position) int {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}
	for i := 0; i < n; i++ {
		if p[i] != q[i] {
			if !p[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(p) < len(q):
		return -1
	case len(p) > len(q):
		return 1
	default:
		return 0
	}
}

func (p Position) less(q Position) bool      { return p.Compare(q) < 0 }
func (p Position) greaterEq(q Position) bool { return p.Compare(q) >= 0 }
func (p Position) greater(q Position) bool   { return p.Compare(q) > 0 }

// Clone returns a copy, so callers can grow it (append) without aliasing
// another position's backing array.
func (p Position) Clone() Position {
	res := make(Position, len(p))
	copy(res, p)
	return res
}

// Among computes a position strictly between l and r (spec §4.2). j
// controls how many leading false bits are used when neither endpoint
// offers a short prefix to reuse; callers normally pass 0, the reference
// implementation's default, and only raise it to spread concurrent
// inserts at the same spot across a wider fan-out of bits.
//
// Among panics with ErrAmongPrecondition if l is not strictly less than
// r: spec §7 calls this a programming error that must fail loudly, not a
// data condition callers are expected to recover from.
func Among(l, r Position, j int) Position {
	if !l.less(r) {
		panic(errors.WithStack(ErrAmongPrecondition))
	}

	res := Position{}
	for is := 0; is <= len(l); is++ {
		res = l[:is].Clone()
		if is < len(l) {
			res = append(res, true)
			if res.greaterEq(l) && res.less(r) {
				break
			}
		}
	}

	if res.greater(l) {
		return res
	}

	for i := 0; i < j; i++ {
		res = append(res, false)
	}
	res = append(res, true)

	for res.greaterEq(r) {
		res[len(res)-1] = false
		for i := 0; i < j; i++ {
			res = append(res, false)
		}
		res = append(res, true)
	}

	return res
}
