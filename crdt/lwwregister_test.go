package crdt

import "testing"

func TestLWWRegWriteKeepsLargerTimestamp(t *testing.T) {
	r := NewLWWReg[int, string]()
	r.Write(5, "first")
	r.Write(3, "stale")

	if got := r.Read(); got != "first" {
		t.Fatalf("[crdt.TestLWWRegWriteKeepsLargerTimestamp] expected 'first', got %q", got)
	}

	r.Write(9, "latest")
	if got := r.Read(); got != "latest" {
		t.Fatalf("[crdt.TestLWWRegWriteKeepsLargerTimestamp] expected 'latest', got %q", got)
	}
}

func TestLWWRegJoinLaws(t *testing.T) {
	a := NewLWWReg[int, string]()
	a.Write(1, "a")

	b := NewLWWReg[int, string]()
	b.Write(4, "b")

	c := NewLWWReg[int, string]()
	c.Write(4, "b")

	checkLaws(t, []*LWWReg[int, string]{a, b, c}, func(p, q *LWWReg[int, string]) bool {
		return p.T == q.T && p.Read() == q.Read()
	})
}
