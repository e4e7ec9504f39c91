package crdt

import "testing"

func TestRWLWWSetAddRmv(t *testing.T) {
	s := NewRWLWWSet[int, string]()
	s.Add(1, "apple")
	if !s.In("apple") {
		t.Fatalf("[crdt.TestRWLWWSetAddRmv] expected apple to be a member")
	}

	s.Rmv(2, "apple")
	if s.In("apple") {
		t.Fatalf("[crdt.TestRWLWWSetAddRmv] expected apple to be removed after a later timestamp")
	}
}

func TestRWLWWSetTiedTimestampFavorsRemove(t *testing.T) {
	x := NewRWLWWSet[int, string]()
	x.Add(5, "apple")

	y := NewRWLWWSet[int, string]()
	y.Rmv(5, "apple")

	x.Join(y)
	if x.In("apple") {
		t.Fatalf("[crdt.TestRWLWWSetTiedTimestampFavorsRemove] a tied timestamp must favor removal")
	}
}

func TestRWLWWSetJoinLaws(t *testing.T) {
	a := NewRWLWWSet[int, string]()
	a.Add(1, "apple")

	b := NewRWLWWSet[int, string]()
	b.Rmv(2, "apple")
	b.Add(3, "juice")

	c := NewRWLWWSet[int, string]()
	c.Add(1, "apple")

	checkLaws(t, []*RWLWWSet[int, string]{a, b, c}, func(p, q *RWLWWSet[int, string]) bool {
		return sameSet(p.Read(), q.Read())
	})
}
