package crdt

import "testing"

func TestCausalCounterIncDec(t *testing.T) {
	c := NewCausalCounter[int, string]()
	c.Join(c.Inc("x", 5))
	c.Join(c.Dec("x", 2))

	if got := c.Read(); got != 3 {
		t.Fatalf("[crdt.TestCausalCounterIncDec] expected 3, got %d", got)
	}
}

// TestCausalCounterIndependentReplicaSurvivesReset checks that a reset
// issued by one replica can never remove a dot it never observed,
// regardless of which replica owns that dot.
func TestCausalCounterIndependentReplicaSurvivesReset(t *testing.T) {
	i := NewCausalCounter[int, string]()
	i.Join(i.Inc("I", 5))

	j := NewCausalCounter[int, string]()
	j.Join(i.Clone())
	resetDelta := j.Reset()

	other := NewCausalCounter[int, string]()
	other.Join(other.Inc("J", 3))

	i.Join(resetDelta)
	i.Join(other)

	if got := i.Read(); got != 3 {
		t.Fatalf("[crdt.TestCausalCounterIndependentReplicaSurvivesReset] expected 3, got %d", got)
	}
}

// TestCausalCounterOwnFreshIncrementSurvivesConcurrentReset checks that,
// unlike Bag, CausalCounter.Inc already replaces the caller's own prior
// dot with a fresh one on every call, so a second increment from the
// same replica needs no explicit Fresh to outlive a reset that only
// observed the first.
func TestCausalCounterOwnFreshIncrementSurvivesConcurrentReset(t *testing.T) {
	i := NewCausalCounter[int, string]()
	i.Join(i.Inc("I", 1))

	j := NewCausalCounter[int, string]()
	j.Join(i.Clone())
	j.Join(j.Reset())

	i.Join(i.Inc("I", 1))

	i.Join(j)

	if got := i.Read(); got != 2 {
		t.Fatalf("[crdt.TestCausalCounterOwnFreshIncrementSurvivesConcurrentReset] expected 2, got %d", got)
	}
}

func TestCausalCounterJoinLaws(t *testing.T) {
	a := NewCausalCounter[int, string]()
	a.Join(a.Inc("x", 5))

	b := NewCausalCounter[int, string]()
	b.Join(b.Inc("y", 2))
	b.Join(b.Dec("y", 1))

	c := NewCausalCounter[int, string]()

	checkLaws(t, []*CausalCounter[int, string]{a, b, c}, func(p, q *CausalCounter[int, string]) bool {
		return p.Read() == q.Read()
	})
}
