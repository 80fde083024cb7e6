package solver

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/lvlath-labs/dfaident/cnf"
	"github.com/lvlath-labs/dfaident/encoding"
)

// Outcome is the decision an Oracle reaches for a formula.
type Outcome int

const (
	// Unsat covers both a genuine unsatisfiability result and a trivial
	// contradiction the oracle rejects before search.
	Unsat Outcome = iota
	// Sat means a model was found; Result.Assigned carries the
	// positively-assigned variables.
	Sat
)

// Result is what Solve hands back for one k iteration.
type Result struct {
	Outcome  Outcome
	Assigned []*cnf.Variable
}

// Solve writes f's DIMACS encoding to a scratch file under scratchDir,
// invokes oracle under ctx's deadline, and translates a satisfiable
// model's ids back into idx's typed variables. Each positively-assigned
// variable it returns has its assignment slot set to true; variables the
// model assigns false are left untouched.
//
// On timeout (ctx canceled by deadline), returns ErrTimeout. On any
// failure writing the scratch file, invoking the oracle, or reading its
// output, returns ErrIO. Unsatisfiability (including a trivial
// contradiction the oracle detects before search) is not an error: Solve
// returns a Result with Outcome Unsat.
func Solve(ctx context.Context, f *cnf.Formula, idx *encoding.VariableIndex, oracle Oracle, scratchDir string) (*Result, error) {
	path, err := scratchPath(scratchDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	idmap, err := cnf.Save(file, f)
	closeErr := file.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, closeErr)
	}

	sat, model, err := oracle.Decide(ctx, path)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	if !sat {
		return &Result{Outcome: Unsat}, nil
	}

	assigned := make([]*cnf.Variable, 0, len(model))
	for _, id := range model {
		if id <= 0 {
			continue // negative literal: variable assigned false
		}
		v, ok := idmap.Variable(id)
		if !ok {
			continue // id outside this formula's variable set
		}
		if _, ok := idx.Classify(v); !ok {
			continue
		}
		v.Assign(true)
		assigned = append(assigned, v)
	}

	return &Result{Outcome: Sat, Assigned: assigned}, nil
}
