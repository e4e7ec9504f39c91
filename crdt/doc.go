/*
Package crdt implements a library of delta-state Conflict-free Replicated
Data Types (δ-CRDTs): replicated data structures that support concurrent,
disconnected updates on multiple replicas and converge deterministically
once replicas exchange small delta states.

Every type here is a join-semilattice. Mutating methods return a delta of
the same type; a Join method merges a delta, or a full replica, into the
receiver. Join is associative, commutative and idempotent, so a delta may
be shipped, reordered, duplicated, or rejoined any number of times by an
outside transport without changing the converged result.

CAUTION! As with pluto's original op-based crdt package, this package
does not perform networking, persistence or peer discovery, and it does
not synchronize access by itself: a replica is meant to be owned by a
single goroutine, the same discipline pluto's comm package asked of the
op-based ORSet this package supersedes. See cmd/crdtdemo and
internal/gossip for a worked example of shipping deltas between replicas.

The algebra follows the delta-state CRDT specification by Almeida, Shoker
and Baquero, available under: https://arxiv.org/abs/1603.01529
*/
package crdt
