package crdt

import "github.com/pkg/errors"

// ErrAmongPrecondition is the panic value wrapped and raised by Among
// when called with l >= r. Spec §7 treats this as a programming error in
// the caller (ORSeq never calls Among with out-of-order neighbors under
// normal operation), so it fails loudly rather than returning an error
// value.
var ErrAmongPrecondition = errors.New("crdt: among: precondition violated, left position must be strictly less than right position")

// ErrInsufficientCapacity is never returned to a caller; it exists purely
// so BCounter's internal bookkeeping can name, in debug logs, why a Dec
// or Mv call produced an empty delta instead of silently doing nothing.
// Per spec §7, quota violations on a bounded counter are a no-op, not an
// error surfaced through the public API.
var ErrInsufficientCapacity = errors.New("crdt: bcounter: requested quantity exceeds local capacity")
