package crdt

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// logger is the package-level, opt-in sink for debug tracing. It starts
// nil, meaning "don't log": the algebra itself must stay side-effect-free
// (spec §5), so nothing in this package ever logs unless a caller has
// explicitly installed a logger via SetLogger, the same opt-in shape
// pluto's main.go uses to hand a single gokit logger down to every
// subsystem that wants one.
var logger log.Logger

// SetLogger installs l as the destination for this package's debug trace
// lines (kernel joins, causal-context compaction, ORMap key erasure,
// bounded-counter no-ops). Passing nil disables tracing again.
func SetLogger(l log.Logger) {
	logger = l
}

// logDebug emits a debug-level trace line if a logger has been installed,
// and is otherwise a no-op. keyvals follows gokit's alternating
// key/value convention.
func logDebug(keyvals ...interface{}) {
	if logger == nil {
		return
	}
	level.Debug(logger).Log(keyvals...)
}
