package crdt

import (
	"sort"
	"testing"
)

// TestE1AddWinsORSet exercises spec.md §8's E1: a concurrent add and
// remove of the same element resolve in favor of the add.
func TestE1AddWinsORSet(t *testing.T) {
	x, y := NewAWORSet[string, string](), NewAWORSet[string, string]()

	x.Add("x", "apple")
	x.Rmv("apple")
	y.Add("y", "juice")
	y.Add("y", "apple")

	x.Join(y)

	got := x.Read()
	sort.Strings(got)
	want := []string{"apple", "juice"}
	if !sameSet(got, want) {
		t.Fatalf("[crdt.TestE1AddWinsORSet] expected %v, got %v", want, got)
	}
}

// TestE2RemoveWinsORSet exercises spec.md §8's E2: the same actions as
// E1 against a remove-wins set instead resolve in favor of the remove.
func TestE2RemoveWinsORSet(t *testing.T) {
	x, y := NewRWORSet[string, string](), NewRWORSet[string, string]()

	x.Add("x", "apple")
	x.Rmv("x", "apple")
	y.Add("y", "juice")
	y.Add("y", "apple")

	x.Join(y)

	got := x.Read()
	want := []string{"juice"}
	if !sameSet(got, want) {
		t.Fatalf("[crdt.TestE2RemoveWinsORSet] expected %v, got %v", want, got)
	}
}

// TestE3DeltaShippedGSet exercises spec.md §8's E3: joining a sequence
// of small deltas reaches the same fixpoint as joining the equivalent
// full state would.
func TestE3DeltaShippedGSet(t *testing.T) {
	x := NewGSet[int]()
	x.Add(1)
	x.Add(4)

	y := x.Clone()
	d2 := y.Add(2)
	d3 := y.Add(3)

	merged := x.Clone()
	merged.Join(d2)
	merged.Join(d3)

	got := merged.Read()
	sort.Ints(got)
	want := []int{1, 2, 3, 4}
	if !sameSet(got, want) {
		t.Fatalf("[crdt.TestE3DeltaShippedGSet] expected %v, got %v", want, got)
	}

	direct := x.Clone()
	direct.Join(y)
	directGot := direct.Read()
	sort.Ints(directGot)
	if !sameSet(directGot, want) {
		t.Fatalf("[crdt.TestE3DeltaShippedGSet] delta join and full-state join disagree: delta=%v, full=%v", got, directGot)
	}
}

func newTestColorMap() *ORMap[string, *AWORSet[string, string], string] {
	return NewORMap[string, *AWORSet[string, string], string](
		func(c *CausalContext[string]) *AWORSet[string, string] {
			return NewEmbeddedAWORSet[string, string](c)
		})
}

// TestE4ORMapTombstoneFreeRemove exercises spec.md §8's E4: a
// concurrent add into a key survives that key's own concurrent erase,
// because the erase only removes the local entry, never a causal
// context it never observed.
func TestE4ORMapTombstoneFreeRemove(t *testing.T) {
	x := newTestColorMap()
	x.At("color").Add("x", "red")
	x.At("color").Add("x", "blue")

	y := x.Clone()

	y.Erase("color")
	x.At("color").Add("x", "black")

	x.Join(y)

	got := x.At("color").Read()
	want := []string{"black"}
	if !sameSet(got, want) {
		t.Fatalf("[crdt.TestE4ORMapTombstoneFreeRemove] expected %v, got %v", want, got)
	}
}

// TestE5BoundedCounterQuotaAndTransfer exercises spec.md §8's E5: a
// decrement beyond local capacity is a silent no-op, and a subsequent
// transfer redistributes allowance without changing the global total.
func TestE5BoundedCounterQuotaAndTransfer(t *testing.T) {
	a := NewBCounter[int, string]()
	a.Join(a.Inc("A", 10))

	a.Join(a.Dec("A", 15))
	if a.Local("A") != 10 {
		t.Fatalf("[crdt.TestE5BoundedCounterQuotaAndTransfer] dec(15) should have been a no-op, local=%d", a.Local("A"))
	}

	a.Join(a.Dec("A", 5))
	if a.Local("A") != 5 {
		t.Fatalf("[crdt.TestE5BoundedCounterQuotaAndTransfer] dec(5) should have succeeded, local=%d", a.Local("A"))
	}

	mv := a.Mv("A", 3, "B")
	a.Join(mv)

	b := NewBCounter[int, string]()
	b.Join(mv)

	if a.Local("A") != 2 {
		t.Fatalf("[crdt.TestE5BoundedCounterQuotaAndTransfer] expected a.Local(A)=2, got %d", a.Local("A"))
	}
	if b.Local("B") != 3 {
		t.Fatalf("[crdt.TestE5BoundedCounterQuotaAndTransfer] expected b.Local(B)=3, got %d", b.Local("B"))
	}
	if a.Read() != 5 {
		t.Fatalf("[crdt.TestE5BoundedCounterQuotaAndTransfer] expected a.Read()=5, got %d", a.Read())
	}
}

// TestE6RWCounterFreshSurvivesReset exercises spec.md §8's E6: replica
// I increments, J observes only that and resets, and I's post-reset
// fresh()+inc(1) is not wiped out by a reset that never observed it.
func TestE6RWCounterFreshSurvivesReset(t *testing.T) {
	i := NewRWCounter[int, string]()
	i.Join(i.Inc("I", 1))

	j := NewRWCounter[int, string]()
	j.Join(i.Clone())
	j.Join(j.Reset())

	i.Join(i.Fresh("I"))
	i.Join(i.Inc("I", 1))

	i.Join(j)

	if i.Read() != 1 {
		t.Fatalf("[crdt.TestE6RWCounterFreshSurvivesReset] expected read()==1, got %d", i.Read())
	}
}
