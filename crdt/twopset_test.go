package crdt

import "testing"

func TestTwoPSetAddRemoveIsPermanent(t *testing.T) {
	s := NewTwoPSet[string]()
	s.Add("a")
	if !s.In("a") {
		t.Fatalf("[crdt.TestTwoPSetAddRemoveIsPermanent] expected a to be present")
	}

	s.Rmv("a")
	if s.In("a") {
		t.Fatalf("[crdt.TestTwoPSetAddRemoveIsPermanent] expected a to be removed")
	}

	s.Add("a")
	if s.In("a") {
		t.Fatalf("[crdt.TestTwoPSetAddRemoveIsPermanent] re-adding a tombstoned element must stay a no-op")
	}
}

func TestTwoPSetJoinLaws(t *testing.T) {
	a := NewTwoPSet[int]()
	a.Add(1)
	a.Add(2)

	b := NewTwoPSet[int]()
	b.Add(2)
	b.Rmv(2)
	b.Add(3)

	c := NewTwoPSet[int]()
	c.Rmv(1)

	checkLaws(t, []*TwoPSet[int]{a, b, c}, func(x, y *TwoPSet[int]) bool {
		return sameSet(x.Read(), y.Read()) && sameSet(keys(x.Tombstones), keys(y.Tombstones))
	})
}

func TestTwoPSetConcurrentAddAndRemoveFavorsRemove(t *testing.T) {
	x := NewTwoPSet[string]()
	x.Add("apple")

	y := NewTwoPSet[string]()
	y.Rmv("apple")

	x.Join(y)
	if x.In("apple") {
		t.Fatalf("[crdt.TestTwoPSetConcurrentAddAndRemoveFavorsRemove] tombstone must dominate a concurrent add")
	}
}
