package crdt

import "testing"

func TestORSeqPushBackAndFront(t *testing.T) {
	s := NewORSeq[string, string]()
	s.PushBack("x", "b")
	s.PushBack("x", "c")
	s.PushFront("x", "a")

	got := s.Read()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("[crdt.TestORSeqPushBackAndFront] expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("[crdt.TestORSeqPushBackAndFront] expected %v, got %v", want, got)
		}
	}
}

func TestORSeqEraseIsTombstoneFree(t *testing.T) {
	s := NewORSeq[string, string]()
	s.PushBack("x", "a")
	s.PushBack("x", "b")
	s.Erase(0)

	got := s.Read()
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("[crdt.TestORSeqEraseIsTombstoneFree] expected [b], got %v", got)
	}
}

func TestORSeqConcurrentInsertsDoNotCollide(t *testing.T) {
	base := NewORSeq[string, string]()
	base.PushBack("x", "a")
	base.PushBack("x", "z")

	x := base.Clone()
	y := base.Clone()

	x.Insert(1, "x", "b")
	y.Insert(1, "y", "m")

	x.Join(y)

	got := x.Read()
	if len(got) != 4 {
		t.Fatalf("[crdt.TestORSeqConcurrentInsertsDoNotCollide] expected 4 elements after merging concurrent inserts, got %v", got)
	}
	if got[0] != "a" || got[len(got)-1] != "z" {
		t.Fatalf("[crdt.TestORSeqConcurrentInsertsDoNotCollide] expected endpoints a and z preserved, got %v", got)
	}
}

func TestORSeqResetRemovesEveryElement(t *testing.T) {
	s := NewORSeq[string, string]()
	s.PushBack("x", "a")
	s.PushBack("x", "b")
	s.Reset()

	if got := s.Len(); got != 0 {
		t.Fatalf("[crdt.TestORSeqResetRemovesEveryElement] expected an empty sequence, got len=%d", got)
	}
}
