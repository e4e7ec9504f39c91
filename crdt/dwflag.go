package crdt

import "fmt"

// DWFlag is the disable-wins flag of spec §4.10: the dual of EWFlag,
// where a concurrent enable and disable resolves in favor of disable.
// Each dot carries the enabled/disabled value it was written with, and
// the flag reads enabled only if every active dot agrees, the same
// remove-wins shape RWORSet uses for a real element.
type DWFlag[K comparable] struct {
	DK *DotKernel[bool, K]
}

// NewDWFlag returns a disabled flag that owns its own causal context.
func NewDWFlag[K comparable]() *DWFlag[K] {
	return &DWFlag[K]{DK: NewDotKernel[bool, K]()}
}

// NewEmbeddedDWFlag returns a disabled flag whose kernel shares c.
func NewEmbeddedDWFlag[K comparable](c *CausalContext[K]) *DWFlag[K] {
	return &DWFlag[K]{DK: NewEmbeddedDotKernel[bool, K](c)}
}

func (f *DWFlag[K]) write(self K, enabled bool) *DWFlag[K] {
	delta := NewDotKernel[bool, K]()
	for d := range f.DK.DS {
		delta.C.InsertDot(d, false)
		delete(f.DK.DS, d)
	}
	dot := f.DK.C.MakeDot(self)
	f.DK.DS[dot] = enabled
	delta.DS[dot] = enabled
	delta.C.InsertDot(dot, false)
	delta.C.Flush()
	return &DWFlag[K]{DK: delta}
}

// Enable writes a fresh dot recording enabled=true after clearing every
// prior dot.
func (f *DWFlag[K]) Enable(self K) *DWFlag[K] {
	return f.write(self, true)
}

// Disable writes a fresh dot recording enabled=false after clearing
// every prior dot; the fresh disable dot dominates any concurrent enable
// that didn't yet observe it, giving disable-wins.
func (f *DWFlag[K]) Disable(self K) *DWFlag[K] {
	return f.write(self, false)
}

// Read reports whether the flag is enabled: at least one active dot, and
// every active dot agrees it's enabled.
func (f *DWFlag[K]) Read() bool {
	if len(f.DK.DS) == 0 {
		return false
	}
	for _, enabled := range f.DK.DS {
		if !enabled {
			return false
		}
	}
	return true
}

// Context returns the kernel's causal context.
func (f *DWFlag[K]) Context() *CausalContext[K] {
	return f.DK.Context()
}

// Reset removes every active dot, regardless of the value it carries.
func (f *DWFlag[K]) Reset() *DWFlag[K] {
	return &DWFlag[K]{DK: f.DK.RemoveAll()}
}

// Rehome returns a shallow copy sharing c instead of the receiver's
// current context, preserving every active dot and value.
func (f *DWFlag[K]) Rehome(c *CausalContext[K]) *DWFlag[K] {
	nk := NewEmbeddedDotKernel[bool, K](c)
	for d, v := range f.DK.DS {
		nk.DS[d] = v
	}
	return &DWFlag[K]{DK: nk}
}

// Join merges o into f.
func (f *DWFlag[K]) Join(o *DWFlag[K]) {
	f.DK.Join(o.DK)
}

// Clone returns an independent copy.
func (f *DWFlag[K]) Clone() *DWFlag[K] {
	return &DWFlag[K]{DK: f.DK.Clone()}
}

func (f *DWFlag[K]) String() string {
	return fmt.Sprintf("DWFlag(%v)", f.Read())
}
