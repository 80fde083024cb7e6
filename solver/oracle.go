package solver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lvlath-labs/dfaident/cnf"
)

// Oracle decides a DIMACS CNF file and reports satisfiability and, when
// satisfiable, a model: one signed integer per variable id, positive for
// true and negative for false. Oracle is the sole seam between this module
// and the external SAT solver.
type Oracle interface {
	Decide(ctx context.Context, dimacsPath string) (sat bool, model []int, err error)
}

// ExecOracle runs an external DIMACS-speaking binary as a subprocess,
// passing the scratch CNF file's path as its final argument and parsing its
// combined stdout and stderr with cnf.ParseModel. The decision comes from
// that output alone: "UNSAT" anywhere means unsatisfiable, otherwise "SAT"
// means satisfiable. The exit code is not used to decide; it is only
// reported when the output contains neither word.
type ExecOracle struct {
	// Command is the oracle binary, e.g. "kissat": one that prints its
	// model to stdout as "v" lines.
	Command string
	// Args are extra arguments inserted before the scratch file path.
	Args []string
}

// NewExecOracle returns an ExecOracle invoking command with args, the
// scratch CNF path appended last.
func NewExecOracle(command string, args ...string) *ExecOracle {
	return &ExecOracle{Command: command, Args: args}
}

// Decide runs the configured binary against dimacsPath under ctx's
// deadline. A context deadline exceeded or killed process is surfaced to
// Solve, which translates it to ErrTimeout; any other process failure
// (missing binary, non-decision exit) is reported as-is.
func (o *ExecOracle) Decide(ctx context.Context, dimacsPath string) (bool, []int, error) {
	args := append(append([]string{}, o.Args...), dimacsPath)
	cmd := exec.CommandContext(ctx, o.Command, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stdout

	runErr := cmd.Run()
	if ctx.Err() != nil {
		return false, nil, ctx.Err()
	}

	out := stdout.String()
	if strings.Contains(out, "UNSAT") {
		return false, nil, nil
	}
	if !strings.Contains(out, "SAT") {
		if runErr != nil {
			return false, nil, fmt.Errorf("solver: oracle run: %w", runErr)
		}
		return false, nil, fmt.Errorf("solver: oracle produced no decision")
	}

	model, err := cnf.ParseModel(&stdout)
	if err != nil {
		return false, nil, fmt.Errorf("solver: parsing oracle model: %w", err)
	}
	return true, model, nil
}

// scratchPath returns a fresh, collision-free DIMACS file path under dir,
// creating dir and any missing parents on demand.
func scratchPath(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("dfaident-%s.cnf", uuid.New().String())
	return filepath.Join(dir, name), nil
}
