package crdt

import "fmt"

// EWFlag is the enable-wins flag of spec §4.10: a degenerate one-element
// AWORSet, where a concurrent enable and disable resolves in favor of
// enable.
type EWFlag[K comparable] struct {
	DK *DotKernel[struct{}, K]
}

// NewEWFlag returns a disabled flag that owns its own causal context.
func NewEWFlag[K comparable]() *EWFlag[K] {
	return &EWFlag[K]{DK: NewDotKernel[struct{}, K]()}
}

// NewEmbeddedEWFlag returns a disabled flag whose kernel shares c.
func NewEmbeddedEWFlag[K comparable](c *CausalContext[K]) *EWFlag[K] {
	return &EWFlag[K]{DK: NewEmbeddedDotKernel[struct{}, K](c)}
}

// Enable removes every currently active dot and adds a fresh one, in one
// delta, the same add-wins shape AWORSet.Add uses for a real element.
func (f *EWFlag[K]) Enable(self K) *EWFlag[K] {
	delta := NewDotKernel[struct{}, K]()
	for d := range f.DK.DS {
		delta.C.InsertDot(d, false)
		delete(f.DK.DS, d)
	}
	dot := f.DK.C.MakeDot(self)
	f.DK.DS[dot] = struct{}{}
	delta.DS[dot] = struct{}{}
	delta.C.InsertDot(dot, false)
	delta.C.Flush()
	return &EWFlag[K]{DK: delta}
}

// Disable removes every active dot.
func (f *EWFlag[K]) Disable() *EWFlag[K] {
	return &EWFlag[K]{DK: f.DK.RemoveAll()}
}

// Read reports whether the flag is enabled: at least one active dot.
func (f *EWFlag[K]) Read() bool {
	return len(f.DK.DS) > 0
}

// Context returns the kernel's causal context.
func (f *EWFlag[K]) Context() *CausalContext[K] {
	return f.DK.Context()
}

// Reset disables the flag.
func (f *EWFlag[K]) Reset() *EWFlag[K] {
	return f.Disable()
}

// Rehome returns a shallow copy sharing c instead of the receiver's
// current context, preserving every active dot.
func (f *EWFlag[K]) Rehome(c *CausalContext[K]) *EWFlag[K] {
	nk := NewEmbeddedDotKernel[struct{}, K](c)
	for d, v := range f.DK.DS {
		nk.DS[d] = v
	}
	return &EWFlag[K]{DK: nk}
}

// Join merges o into f.
func (f *EWFlag[K]) Join(o *EWFlag[K]) {
	f.DK.Join(o.DK)
}

// Clone returns an independent copy.
func (f *EWFlag[K]) Clone() *EWFlag[K] {
	return &EWFlag[K]{DK: f.DK.Clone()}
}

func (f *EWFlag[K]) String() string {
	return fmt.Sprintf("EWFlag(%v)", f.Read())
}
