package crdt

import "testing"

func TestEWFlagEnableDisable(t *testing.T) {
	f := NewEWFlag[string]()
	if f.Read() {
		t.Fatalf("[crdt.TestEWFlagEnableDisable] expected a fresh flag to read disabled")
	}

	f.Enable("x")
	if !f.Read() {
		t.Fatalf("[crdt.TestEWFlagEnableDisable] expected the flag to read enabled after Enable")
	}

	f.Disable()
	if f.Read() {
		t.Fatalf("[crdt.TestEWFlagEnableDisable] expected the flag to read disabled after Disable")
	}
}

func TestEWFlagConcurrentEnableAndDisableFavorsEnable(t *testing.T) {
	x, y := NewEWFlag[string](), NewEWFlag[string]()

	x.Enable("x")
	y.Enable("y")
	y.Disable()

	x.Join(y)
	if !x.Read() {
		t.Fatalf("[crdt.TestEWFlagConcurrentEnableAndDisableFavorsEnable] a concurrent enable must survive a disable that never observed it")
	}
}

func TestEWFlagJoinLaws(t *testing.T) {
	a := NewEWFlag[string]()
	a.Enable("x")

	b := NewEWFlag[string]()

	c := NewEWFlag[string]()
	c.Enable("z")
	c.Disable()

	checkLaws(t, []*EWFlag[string]{a, b, c}, func(p, q *EWFlag[string]) bool {
		return p.Read() == q.Read()
	})
}
