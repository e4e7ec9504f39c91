package crdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// lawSubject is what checkLaws needs from a CRDT value: join in place,
// and clone so the laws can be checked without mutating the samples
// out from under each other.
type lawSubject[T any] interface {
	Lattice[T]
	Cloner[T]
}

// checkLaws asserts idempotence, commutativity and associativity of
// Join over every pairing (and, for associativity, every triple) drawn
// from samples. equal compares two joined results for the purposes of
// this check; it is a parameter rather than a method constraint because
// most of this package's Read() results come back in map-iteration
// order, so callers normally wrap a sorted-slice comparison rather than
// relying on reflect.DeepEqual or a String render.
func checkLaws[T lawSubject[T]](t *testing.T, samples []T, equal func(a, b T) bool) {
	t.Helper()

	for i, a := range samples {
		idem := a.Clone()
		idem.Join(a)
		assert.True(t, equal(a, idem), "idempotence failed at sample %d", i)
	}

	for i, a := range samples {
		for j, b := range samples {
			ab := a.Clone()
			ab.Join(b)
			ba := b.Clone()
			ba.Join(a)
			assert.True(t, equal(ab, ba), "commutativity failed for samples %d and %d", i, j)
		}
	}

	for i, a := range samples {
		for j, b := range samples {
			for k, c := range samples {
				abThenC := a.Clone()
				abThenC.Join(b)
				abThenC.Join(c)

				bcFirst := b.Clone()
				bcFirst.Join(c)
				aThenBC := a.Clone()
				aThenBC.Join(bcFirst)

				assert.True(t, equal(abThenC, aThenBC), "associativity failed for samples %d, %d, %d", i, j, k)
			}
		}
	}
}

// sameSet reports whether a and b hold the same elements, ignoring
// order; each element must occur the same number of times in both —
// the equality checkLaws needs for any type whose Read() walks a map.
func sameSet[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[T]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		seen[v]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}
