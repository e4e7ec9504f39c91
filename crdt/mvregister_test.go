package crdt

import "testing"

func TestMVRegConcurrentWritesRetainBoth(t *testing.T) {
	x, y := NewMVReg[string, string](), NewMVReg[string, string]()

	x.Write("x", "red")
	y.Write("y", "blue")

	x.Join(y)

	got := x.Read()
	want := []string{"red", "blue"}
	if !sameSet(got, want) {
		t.Fatalf("[crdt.TestMVRegConcurrentWritesRetainBoth] expected %v, got %v", want, got)
	}
}

func TestMVRegLaterWriteSupersedesBoth(t *testing.T) {
	x, y := NewMVReg[string, string](), NewMVReg[string, string]()

	x.Write("x", "red")
	y.Write("y", "blue")
	x.Join(y)

	x.Write("x", "green")
	if got := x.Read(); !sameSet(got, []string{"green"}) {
		t.Fatalf("[crdt.TestMVRegLaterWriteSupersedesBoth] expected a fresh write to clear every prior value, got %v", got)
	}
}

func TestMVRegJoinLaws(t *testing.T) {
	a := NewMVReg[string, string]()
	a.Write("x", "red")

	b := NewMVReg[string, string]()
	b.Write("y", "blue")

	c := NewMVReg[string, string]()

	checkLaws(t, []*MVReg[string, string]{a, b, c}, func(p, q *MVReg[string, string]) bool {
		return sameSet(p.Read(), q.Read())
	})
}

// TestResolveMVRegDropsDominatedValues uses rwCounterCell as its payload,
// the one type in this package with a pure comparable Join(T) T method
// (component-wise max), so it is the natural witness for a
// comparableValueJoiner used as a register payload.
func TestResolveMVRegDropsDominatedValues(t *testing.T) {
	x, y := NewMVReg[rwCounterCell[int], string](), NewMVReg[rwCounterCell[int], string]()

	x.Write("x", rwCounterCell[int]{Inc: 1})
	y.Write("y", rwCounterCell[int]{Inc: 2})

	x.Join(y)
	if got := len(x.Read()); got != 2 {
		t.Fatalf("[crdt.TestResolveMVRegDropsDominatedValues] expected both concurrent values before resolving, got %d", got)
	}

	delta := ResolveMVReg(x)
	x.Join(delta)

	got := x.Read()
	if len(got) != 1 || got[0].Inc != 2 {
		t.Fatalf("[crdt.TestResolveMVRegDropsDominatedValues] expected resolving to leave only the dominating value, got %v", got)
	}
}
