package crdt

import "testing"

func TestBCounterDecRejectsOverQuota(t *testing.T) {
	a := NewBCounter[int, string]()
	a.Join(a.Inc("A", 10))

	a.Join(a.Dec("A", 15))
	if got := a.Local("A"); got != 10 {
		t.Fatalf("[crdt.TestBCounterDecRejectsOverQuota] expected dec beyond quota to be a no-op, got %d", got)
	}

	a.Join(a.Dec("A", 5))
	if got := a.Local("A"); got != 5 {
		t.Fatalf("[crdt.TestBCounterDecRejectsOverQuota] expected dec within quota to apply, got %d", got)
	}
}

func TestBCounterTransferRedistributesWithoutChangingTotal(t *testing.T) {
	a := NewBCounter[int, string]()
	a.Join(a.Inc("A", 10))

	mv := a.Mv("A", 3, "B")
	a.Join(mv)

	b := NewBCounter[int, string]()
	b.Join(mv)

	if got := a.Local("A"); got != 7 {
		t.Fatalf("[crdt.TestBCounterTransferRedistributesWithoutChangingTotal] expected a.Local(A)=7, got %d", got)
	}
	if got := b.Local("B"); got != 3 {
		t.Fatalf("[crdt.TestBCounterTransferRedistributesWithoutChangingTotal] expected b.Local(B)=3, got %d", got)
	}
	if got := a.Read(); got != 10 {
		t.Fatalf("[crdt.TestBCounterTransferRedistributesWithoutChangingTotal] expected global total to stay 10, got %d", got)
	}
}

func TestBCounterMvRejectsOverQuota(t *testing.T) {
	a := NewBCounter[int, string]()
	a.Join(a.Inc("A", 5))

	delta := a.Mv("A", 10, "B")
	if got := len(delta.Transfers.M); got != 0 {
		t.Fatalf("[crdt.TestBCounterMvRejectsOverQuota] expected an over-quota transfer to produce an empty delta, got %d entries", got)
	}
}
