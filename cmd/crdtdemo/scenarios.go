package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/go-pluto/delta-crdt/crdt"
	"github.com/go-pluto/delta-crdt/internal/gossip"
)

// ship broadcasts a gob-encoded snapshot of state from replica from's
// node, and blocks until every peer in the relay has applied it. A
// snapshot is just a coarse delta: Join does not care whether it is
// handed the three new dots a mutator returned or an entire replica's
// state, the join-semilattice laws hold either way.
func ship(ctx context.Context, relay *gossip.Relay, from string, state interface{}) error {
	return relay.Broadcast(ctx, from, gobEncode(state))
}

func sortedStrings(xs []string) []string {
	sort.Strings(xs)
	return xs
}

// runE1 demonstrates add-wins semantics (spec.md §8, E1): a concurrent
// add and remove of the same element resolve in favor of the add.
func runE1(ctx context.Context, logger log.Logger, relay *gossip.Relay, metricsEnabled bool) error {
	x, y := crdt.NewAWORSet[string, string](), crdt.NewAWORSet[string, string]()

	nx, err := relay.Join("e1-x", gossip.NewMetrics(metricsEnabled), func(_ string, payload []byte) {
		var incoming crdt.AWORSet[string, string]
		gobDecode(payload, &incoming)
		x.Join(&incoming)
	})
	if err != nil {
		return err
	}
	ny, err := relay.Join("e1-y", gossip.NewMetrics(metricsEnabled), func(_ string, payload []byte) {
		var incoming crdt.AWORSet[string, string]
		gobDecode(payload, &incoming)
		y.Join(&incoming)
	})
	if err != nil {
		return err
	}
	defer nx.Shutdown()
	defer ny.Shutdown()
	if err := relay.Connect("e1-x", "e1-y"); err != nil {
		return err
	}

	x.Add("x", "apple")
	x.Rmv("apple")
	y.Add("y", "juice")
	y.Add("y", "apple")

	if err := ship(ctx, relay, "e1-x", x.Clone()); err != nil {
		return err
	}
	if err := ship(ctx, relay, "e1-y", y.Clone()); err != nil {
		return err
	}

	x.Join(y)
	got := sortedStrings(x.Read())
	level.Info(logger).Log("scenario", "E1", "msg", "add-wins AWORSet merge", "read", fmt.Sprintf("%v", got))
	if fmt.Sprintf("%v", got) != "[apple juice]" {
		return fmt.Errorf("E1: expected [apple juice], got %v", got)
	}
	return nil
}

// runE2 demonstrates remove-wins semantics (spec.md §8, E2): the same
// actions as E1 against an RWORSet resolve the concurrent add/remove in
// favor of the remove.
func runE2(ctx context.Context, logger log.Logger, relay *gossip.Relay, metricsEnabled bool) error {
	x, y := crdt.NewRWORSet[string, string](), crdt.NewRWORSet[string, string]()

	nx, err := relay.Join("e2-x", gossip.NewMetrics(metricsEnabled), func(_ string, payload []byte) {
		var incoming crdt.RWORSet[string, string]
		gobDecode(payload, &incoming)
		x.Join(&incoming)
	})
	if err != nil {
		return err
	}
	ny, err := relay.Join("e2-y", gossip.NewMetrics(metricsEnabled), func(_ string, payload []byte) {
		var incoming crdt.RWORSet[string, string]
		gobDecode(payload, &incoming)
		y.Join(&incoming)
	})
	if err != nil {
		return err
	}
	defer nx.Shutdown()
	defer ny.Shutdown()
	if err := relay.Connect("e2-x", "e2-y"); err != nil {
		return err
	}

	x.Add("x", "apple")
	x.Rmv("x", "apple")
	y.Add("y", "juice")
	y.Add("y", "apple")

	if err := ship(ctx, relay, "e2-x", x.Clone()); err != nil {
		return err
	}
	if err := ship(ctx, relay, "e2-y", y.Clone()); err != nil {
		return err
	}

	x.Join(y)
	got := sortedStrings(x.Read())
	level.Info(logger).Log("scenario", "E2", "msg", "remove-wins RWORSet merge", "read", fmt.Sprintf("%v", got))
	if fmt.Sprintf("%v", got) != "[juice]" {
		return fmt.Errorf("E2: expected [juice], got %v", got)
	}
	return nil
}

// runE3 demonstrates delta shipping (spec.md §8, E3): a GSet's deltas,
// joined among themselves and then into the original state, reach the
// same fixpoint as applying the mutations directly would.
func runE3(ctx context.Context, logger log.Logger, relay *gossip.Relay, metricsEnabled bool) error {
	x := crdt.NewGSet[int]()
	x.Add(1)
	x.Add(4)

	y := x.Clone()

	dy := crdt.NewGSet[int]()
	ny, err := relay.Join("e3-y", gossip.NewMetrics(metricsEnabled), func(_ string, payload []byte) {
		var incoming crdt.GSet[int]
		gobDecode(payload, &incoming)
		dy.Join(&incoming)
	})
	if err != nil {
		return err
	}
	defer ny.Shutdown()
	nx, err := relay.Join("e3-x", gossip.NewMetrics(metricsEnabled), func(string, []byte) {})
	if err != nil {
		return err
	}
	defer nx.Shutdown()
	if err := relay.Connect("e3-x", "e3-y"); err != nil {
		return err
	}

	d2 := y.Add(2)
	d3 := y.Add(3)
	if err := ship(ctx, relay, "e3-x", d2); err != nil {
		return err
	}
	if err := ship(ctx, relay, "e3-x", d3); err != nil {
		return err
	}

	level.Info(logger).Log("scenario", "E3", "msg", "delta read", "read", fmt.Sprintf("%v", sortInts(dy.Read())))

	merged := x.Clone()
	merged.Join(dy)
	got := sortInts(merged.Read())
	level.Info(logger).Log("scenario", "E3", "msg", "delta-shipped GSet merge", "read", fmt.Sprintf("%v", got))
	if fmt.Sprintf("%v", got) != "[1 2 3 4]" {
		return fmt.Errorf("E3: expected [1 2 3 4], got %v", got)
	}
	return nil
}

func sortInts(xs []int) []int {
	sort.Ints(xs)
	return xs
}

// ormapWire carries an ORMap's entries and shared context across the
// wire without its constructor func, the one field gob cannot encode.
type ormapWire struct {
	M map[string]*crdt.AWORSet[string, string]
	C *crdt.CausalContext[string]
}

func newColorMap() *crdt.ORMap[string, *crdt.AWORSet[string, string], string] {
	return crdt.NewORMap[string, *crdt.AWORSet[string, string], string](
		func(c *crdt.CausalContext[string]) *crdt.AWORSet[string, string] {
			return crdt.NewEmbeddedAWORSet[string, string](c)
		})
}

// runE4 demonstrates ORMap's tombstone-free removal (spec.md §8, E4): a
// concurrent add into a key survives that key's own concurrent erase,
// because the erase only ever removes the local entry, never blocks a
// causal context it never observed.
func runE4(ctx context.Context, logger log.Logger, relay *gossip.Relay, metricsEnabled bool) error {
	x := newColorMap()
	x.At("color").Add("x", "red")
	x.At("color").Add("x", "blue")

	y := x.Clone()

	var fromY *crdt.ORMap[string, *crdt.AWORSet[string, string], string]
	nx, err := relay.Join("e4-x", gossip.NewMetrics(metricsEnabled), func(_ string, payload []byte) {
		var wire ormapWire
		gobDecode(payload, &wire)
		fromY = newColorMap()
		fromY.M, fromY.C = wire.M, wire.C
	})
	if err != nil {
		return err
	}
	defer nx.Shutdown()
	ny, err := relay.Join("e4-y", gossip.NewMetrics(metricsEnabled), func(string, []byte) {})
	if err != nil {
		return err
	}
	defer ny.Shutdown()
	if err := relay.Connect("e4-x", "e4-y"); err != nil {
		return err
	}

	y.Erase("color")
	x.At("color").Add("x", "black")

	if err := ship(ctx, relay, "e4-y", ormapWire{M: y.M, C: y.C}); err != nil {
		return err
	}

	x.Join(fromY)
	got := sortedStrings(x.At("color").Read())
	level.Info(logger).Log("scenario", "E4", "msg", "ORMap tombstone-free remove", "read", fmt.Sprintf("%v", got))
	if fmt.Sprintf("%v", got) != "[black]" {
		return fmt.Errorf("E4: expected [black], got %v", got)
	}
	return nil
}

// runE5 demonstrates bounded-counter quota enforcement and transfer
// (spec.md §8, E5): a decrement beyond local capacity is a silent
// no-op, and a subsequent transfer redistributes allowance without
// changing the global total.
func runE5(logger log.Logger) error {
	a := crdt.NewBCounter[int, string]()
	a.Join(a.Inc("A", 10))

	a.Join(a.Dec("A", 15))
	if a.Local("A") != 10 {
		return fmt.Errorf("E5: dec(15) should have been a no-op, local=%d", a.Local("A"))
	}

	a.Join(a.Dec("A", 5))
	if a.Local("A") != 5 {
		return fmt.Errorf("E5: dec(5) should have succeeded, local=%d", a.Local("A"))
	}

	mv := a.Mv("A", 3, "B")
	a.Join(mv)

	b := crdt.NewBCounter[int, string]()
	b.Join(mv)

	level.Info(logger).Log("scenario", "E5", "msg", "bounded counter quota+transfer",
		"a.local", a.Local("A"), "b.local", b.Local("B"), "read", a.Read())

	if a.Local("A") != 2 || b.Local("B") != 3 || a.Read() != 5 {
		return fmt.Errorf("E5: expected a.local=2 b.local=3 read=5, got a.local=%d b.local=%d read=%d",
			a.Local("A"), b.Local("B"), a.Read())
	}
	return nil
}

// runE6 demonstrates that a fresh dot survives a concurrent reset
// (spec.md §8, E6): replica I increments, J joins then resets, and I's
// post-reset fresh()+inc(1) is not wiped out by the reset it never
// observed.
func runE6(logger log.Logger) error {
	i := crdt.NewRWCounter[int, string]()
	i.Join(i.Inc("I", 1))

	j := crdt.NewRWCounter[int, string]()
	j.Join(i.Clone())
	j.Join(j.Reset())

	i.Join(i.Fresh("I"))
	i.Join(i.Inc("I", 1))

	i.Join(j)

	level.Info(logger).Log("scenario", "E6", "msg", "fresh dot survives concurrent reset", "read", i.Read())
	if i.Read() != 1 {
		return fmt.Errorf("E6: expected read()==1, got %d", i.Read())
	}
	return nil
}
