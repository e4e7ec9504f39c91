package crdt

import "testing"

func TestGSetAddAndRead(t *testing.T) {
	s := NewGSet[string]()
	s.Add("a")
	s.Add("b")

	if !s.In("a") || !s.In("b") {
		t.Fatalf("[crdt.TestGSetAddAndRead] expected a and b to be members, got %v", s.Read())
	}
	if s.In("c") {
		t.Fatalf("[crdt.TestGSetAddAndRead] expected c to not be a member")
	}
}

func TestGSetJoinLaws(t *testing.T) {
	a := NewGSet[int]()
	a.Add(1)
	a.Add(2)

	b := NewGSet[int]()
	b.Add(2)
	b.Add(3)

	c := NewGSet[int]()
	c.Add(4)

	checkLaws(t, []*GSet[int]{a, b, c}, func(x, y *GSet[int]) bool {
		return sameSet(x.Read(), y.Read())
	})
}

func TestGSetDeltaIsSingleton(t *testing.T) {
	s := NewGSet[int]()
	delta := s.Add(7)
	if !sameSet(delta.Read(), []int{7}) {
		t.Fatalf("[crdt.TestGSetDeltaIsSingleton] expected delta {7}, got %v", delta.Read())
	}
}
