// Package invariant checks programming contracts that must hold in the
// simulation. Debug builds (-tags debug) panic on a violation; release builds
// log it and let the caller fall through to its no-op path.
package invariant

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var logger atomic.Pointer[log.Logger]

// SetLogger routes release-build violation reports to l.
func SetLogger(l *log.Logger) {
	logger.Store(l)
}

// Check reports a violation when cond is false and returns cond, so callers
// can write `if !invariant.Check(...) { return }`.
func Check(cond bool, format string, args ...any) bool {
	if cond {
		return true
	}
	violated(fmt.Sprintf(format, args...))
	return false
}

func report(msg string) {
	l := logger.Load()
	if l == nil {
		l = log.Default()
	}
	l.Error("invariant violated", "detail", msg)
}
