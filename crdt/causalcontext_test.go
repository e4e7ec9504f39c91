package crdt

import "testing"

func TestCausalContextMakeDotIsSequential(t *testing.T) {
	c := NewCausalContext[string]()
	d1 := c.MakeDot("x")
	d2 := c.MakeDot("x")

	if d1.Seq != 1 || d2.Seq != 2 {
		t.Fatalf("[crdt.TestCausalContextMakeDotIsSequential] expected seqs 1,2, got %d,%d", d1.Seq, d2.Seq)
	}
	if !c.DotIn(d1) || !c.DotIn(d2) {
		t.Fatalf("[crdt.TestCausalContextMakeDotIsSequential] expected both freshly made dots to be observed")
	}
}

func TestCausalContextInsertDotOutOfOrderStaysInCloud(t *testing.T) {
	c := NewCausalContext[string]()
	c.InsertDot(Dot[string]{ID: "x", Seq: 3}, true)

	if !c.DotIn(Dot[string]{ID: "x", Seq: 3}) {
		t.Fatalf("[crdt.TestCausalContextInsertDotOutOfOrderStaysInCloud] expected the out-of-order dot to be observed via the cloud")
	}
	if _, ok := c.Compact["x"]; ok {
		t.Fatalf("[crdt.TestCausalContextInsertDotOutOfOrderStaysInCloud] expected an out-of-order dot to not fold into the compact prefix yet")
	}

	c.InsertDot(Dot[string]{ID: "x", Seq: 1}, false)
	c.InsertDot(Dot[string]{ID: "x", Seq: 2}, true)

	if got := c.Compact["x"]; got != 3 {
		t.Fatalf("[crdt.TestCausalContextInsertDotOutOfOrderStaysInCloud] expected the prefix to catch up to 3 once the gap fills, got %d", got)
	}
	if len(c.Cloud) != 0 {
		t.Fatalf("[crdt.TestCausalContextInsertDotOutOfOrderStaysInCloud] expected the cloud to drain once contiguous, got %v", c.Cloud)
	}
}

func TestCausalContextJoinTakesMaxPrefixAndUnionsCloud(t *testing.T) {
	a := NewCausalContext[string]()
	a.MakeDot("x")
	a.MakeDot("x")

	b := NewCausalContext[string]()
	b.MakeDot("x")
	b.InsertDot(Dot[string]{ID: "y", Seq: 5}, true)

	a.Join(b)

	if got := a.Compact["x"]; got != 2 {
		t.Fatalf("[crdt.TestCausalContextJoinTakesMaxPrefixAndUnionsCloud] expected prefix max(2,1)=2, got %d", got)
	}
	if !a.DotIn(Dot[string]{ID: "y", Seq: 5}) {
		t.Fatalf("[crdt.TestCausalContextJoinTakesMaxPrefixAndUnionsCloud] expected the out-of-order y dot to be observed after join")
	}
}
