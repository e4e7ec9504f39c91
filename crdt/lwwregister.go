package crdt

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// LWWReg is a last-writer-wins register (spec §4.7): a timestamp-tagged
// value where the larger timestamp always wins, ties kept stable.
type LWWReg[U constraints.Ordered, V any] struct {
	T   U
	Val V
}

// NewLWWReg returns a zero-valued register.
func NewLWWReg[U constraints.Ordered, V any]() *LWWReg[U, V] {
	return &LWWReg[U, V]{}
}

// Write replaces the register's value if t is strictly greater than the
// current timestamp, and always returns (t, v) as a delta: joining it
// into any replica is safe, since a replica with a greater timestamp
// already simply keeps its own value.
func (r *LWWReg[U, V]) Write(t U, v V) *LWWReg[U, V] {
	if t > r.T {
		r.T, r.Val = t, v
	}
	return &LWWReg[U, V]{T: t, Val: v}
}

// Read returns the current value.
func (r *LWWReg[U, V]) Read() V {
	return r.Val
}

// Join keeps the larger timestamp, breaking ties by keeping the
// receiver's current value.
func (r *LWWReg[U, V]) Join(o *LWWReg[U, V]) {
	if r == o {
		return
	}
	if o.T > r.T {
		r.T, r.Val = o.T, o.Val
	}
}

// Clone returns an independent copy.
func (r *LWWReg[U, V]) Clone() *LWWReg[U, V] {
	return &LWWReg[U, V]{T: r.T, Val: r.Val}
}

func (r *LWWReg[U, V]) String() string {
	return fmt.Sprintf("LWWReg(t=%v)=%v", r.T, r.Val)
}
