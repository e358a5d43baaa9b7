package lambda

import (
	"log"
	"os"
	"sync/atomic"
)

// Opt-in tracing of context lookups during conversion.
// Enable by setting env var GOKANLAMBDA_TRACE=1 or by calling EnableTrace.

var traceEnabled atomic.Bool

func init() {
	if os.Getenv("GOKANLAMBDA_TRACE") == "1" {
		traceEnabled.Store(true)
	}
}

// EnableTrace turns on logging of every context lookup made by ToNameless
// and ToNamed.
func EnableTrace() { traceEnabled.Store(true) }

// DisableTrace turns tracing off again.
func DisableTrace() { traceEnabled.Store(false) }

func tracef(format string, args ...any) {
	if !traceEnabled.Load() {
		return
	}
	log.Printf("[convert] "+format, args...)
}
