package identify

import (
	"context"
	"errors"
	"time"

	"github.com/lvlath-labs/dfaident/apta"
	"github.com/lvlath-labs/dfaident/automaton"
	"github.com/lvlath-labs/dfaident/constraints"
	"github.com/lvlath-labs/dfaident/encoding"
	"github.com/lvlath-labs/dfaident/sequence"
	"github.com/lvlath-labs/dfaident/solver"
)

// Identify runs the outer search loop: it derives the constraints graph and
// a seed clique from tree, then for k starting at the clique size and
// increasing by one, builds the CNF encoding, calls opts.Oracle under
// opts.Timeout, and returns the first reconstructed DFA. The search fails
// with ErrKMaxExhausted once k reaches opts.KMax without a satisfying
// model.
func Identify(tree *apta.APTA, opts Options) (*automaton.DFA, error) {
	if tree == nil || !hasLabeledNode(tree) {
		return nil, ErrEmptyInput
	}
	o := opts.withDefaults()
	if o.Oracle == nil {
		return nil, ErrNoOracle
	}

	cg, err := constraints.Build(tree)
	if err != nil {
		return nil, err
	}
	clique := cg.Clique()

	var encOpts []encoding.Option
	if o.Redundant {
		encOpts = append(encOpts, encoding.WithRedundantClauses())
	}

	for k := len(clique); k < o.KMax; k++ {
		o.Recorder.IncIteration()

		f, idx, err := encoding.Build(tree, cg, clique, k, encOpts...)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), o.Timeout)
		start := time.Now()
		result, err := solver.Solve(ctx, f, idx, o.Oracle, o.ScratchDir)
		elapsed := time.Since(start)
		cancel()

		if err != nil {
			o.Recorder.ObserveSolve(outcomeLabel(err), elapsed)
			return nil, err
		}

		if result.Outcome == solver.Unsat {
			o.Recorder.ObserveSolve("unsat", elapsed)
			continue
		}

		o.Recorder.ObserveSolve("sat", elapsed)
		return solver.Reconstruct(result, idx)
	}

	return nil, ErrKMaxExhausted
}

func hasLabeledNode(tree *apta.APTA) bool {
	for _, id := range tree.Nodes() {
		if tree.Response(id) != sequence.Unknown {
			return true
		}
	}
	return false
}

func outcomeLabel(err error) string {
	if errors.Is(err, solver.ErrTimeout) {
		return "timeout"
	}
	return "io_error"
}
