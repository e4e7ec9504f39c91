package crdt

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Number is satisfied by any type this package uses as a counter payload:
// integers and floats, joined via Max, ordered via the usual operators.
type Number interface {
	constraints.Integer | constraints.Float
}

// Lattice is implemented by every CRDT type in this package. Join merges
// the argument into the receiver in place; it must be associative,
// commutative and idempotent.
type Lattice[T any] interface {
	Join(o T)
}

// Cloner is implemented by CRDT types whose Join mutates internal maps or
// slices, so that the free function Join below can produce a result
// without mutating either of its arguments.
type Cloner[T any] interface {
	Clone() T
}

// Join returns l ⊔ r without mutating l or r, for any type that is both a
// Lattice and a Cloner. This is the free function required by spec §6: a
// pure merge alongside each type's in-place Join method.
func Join[T interface {
	Lattice[T]
	Cloner[T]
}](l, r T) T {
	res := l.Clone()
	res.Join(r)
	return res
}

// MaxJoin is the join operator for any totally ordered scalar: the larger
// of the two values. GCounter and friends use this directly rather than
// wrapping scalars in a maxord type (spec §9, Open Question ii).
func MaxJoin[T constraints.Ordered](l, r T) T {
	if l > r {
		return l
	}
	return r
}

// MinJoin is the dual of MaxJoin, kept for symmetry; no type in this
// package currently needs a min-wins scalar lattice, but BCounter-style
// extensions may.
func MinJoin[T constraints.Ordered](l, r T) T {
	if l < r {
		return l
	}
	return r
}

// ErrLexJoinUnordered is returned by LexJoin when neither first component
// compares greater than, less than, or equal to the other — possible for
// constraints.Ordered types whose ordering is not total in practice, the
// textbook case being NaN under float64's <, >, ==. Spec §9, Open
// Question (i) asks implementations to choose and document either a
// neutral-value fallback or an explicit failure; this package returns an
// explicit error from the utility itself, and the in-place Join methods
// built on it (LexCounter, RWLWWSet) fall back to the neutral "keep r"
// choice while logging the condition, since their own Join signature is
// void per spec §6.
var ErrLexJoinUnordered = errors.New("crdt: lexjoin: first components are not totally ordered")

// Pair is a generic two-tuple: the (timestamp, removed?) entries of
// RWLWWSet and the (priority, value) entries of LexCounter, both merged
// via LexJoin, and the (from, to) key of BCounter's transfer ledger.
type Pair[A, B any] struct {
	First  A
	Second B
}

// LexJoin implements §4.1's lexicographic pair join: the pair with the
// strictly larger First wins outright; on a tie, Second is joined via
// joinSecond. Second is frequently a plain scalar joined with MaxJoin
// rather than a Lattice, so joinSecond is a parameter, not a method
// constraint.
func LexJoin[A constraints.Ordered, B any](l, r Pair[A, B], joinSecond func(l, r B) B) (Pair[A, B], error) {
	switch {
	case l.First > r.First:
		return l, nil
	case r.First > l.First:
		return r, nil
	case l.First == r.First:
		return Pair[A, B]{First: r.First, Second: joinSecond(l.Second, r.Second)}, nil
	default:
		return Pair[A, B]{}, ErrLexJoinUnordered
	}
}
