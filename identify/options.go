package identify

import (
	"os"
	"time"

	"github.com/lvlath-labs/dfaident/identify/metrics"
	"github.com/lvlath-labs/dfaident/solver"
)

// DefaultKMax is the ceiling on the outer search loop when the caller
// leaves KMax unset.
const DefaultKMax = 100

// DefaultTimeout is the per-iteration oracle deadline when the caller
// leaves Timeout unset.
const DefaultTimeout = 3600 * time.Second

// Options configures Identify. Mirrors lvlath's own plain-struct Options
// convention (e.g. tsp.Options) rather than functional options, since every
// field here is a single top-level knob; all of them except Oracle have an
// obvious zero-value fallback.
type Options struct {
	// KMax bounds the outer loop; the search fails with ErrKMaxExhausted
	// once k reaches KMax without a satisfying model. Zero means
	// DefaultKMax.
	KMax int

	// Timeout bounds each individual oracle call. Zero means
	// DefaultTimeout.
	Timeout time.Duration

	// Redundant requests the optional complete-transition-function clauses
	// (encoding.WithRedundantClauses) on every iteration.
	Redundant bool

	// Oracle is the SAT oracle invoked once per k. Required; Identify
	// returns an error if nil.
	Oracle solver.Oracle

	// ScratchDir is the directory the solver writes its per-iteration
	// DIMACS file into. Zero means os.TempDir().
	ScratchDir string

	// Recorder observes loop progress (solve duration, iteration count,
	// outcome). Nil is a valid no-op recorder.
	Recorder *metrics.Recorder
}

func (o Options) withDefaults() Options {
	if o.KMax <= 0 {
		o.KMax = DefaultKMax
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.ScratchDir == "" {
		o.ScratchDir = os.TempDir()
	}
	return o
}
