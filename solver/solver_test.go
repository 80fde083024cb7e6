package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/dfaident/apta"
	"github.com/lvlath-labs/dfaident/cnf"
	"github.com/lvlath-labs/dfaident/constraints"
	"github.com/lvlath-labs/dfaident/encoding"
	"github.com/lvlath-labs/dfaident/sequence"
	"github.com/lvlath-labs/dfaident/solver"
)

// fakeOracle returns a canned decision without shelling out, so these tests
// never depend on a real SAT binary being on PATH.
type fakeOracle struct {
	sat   bool
	model []int
	delay time.Duration
}

func (f *fakeOracle) Decide(ctx context.Context, path string) (bool, []int, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return false, nil, ctx.Err()
		}
	}
	return f.sat, f.model, nil
}

func TestSolveUnsatIsNotAnError(t *testing.T) {
	tree := apta.New()
	require.NoError(t, tree.Accept(sequence.FromString("a")))
	g, err := constraints.Build(tree)
	require.NoError(t, err)

	f, idx, err := encoding.Build(tree, g, g.Clique(), 1)
	require.NoError(t, err)

	oracle := &fakeOracle{sat: false}
	result, err := solver.Solve(context.Background(), f, idx, oracle, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, solver.Unsat, result.Outcome)
}

func TestSolveTimeoutSurfacesAsErrTimeout(t *testing.T) {
	tree := apta.New()
	require.NoError(t, tree.Accept(sequence.FromString("a")))
	g, err := constraints.Build(tree)
	require.NoError(t, err)

	f, idx, err := encoding.Build(tree, g, g.Clique(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	oracle := &fakeOracle{delay: 50 * time.Millisecond}
	_, err = solver.Solve(ctx, f, idx, oracle, t.TempDir())
	assert.ErrorIs(t, err, solver.ErrTimeout)
}

func TestSolveSatAssignsOnlyClassifiedVariables(t *testing.T) {
	tree := apta.New()
	require.NoError(t, tree.Accept(sequence.FromString("a")))
	g, err := constraints.Build(tree)
	require.NoError(t, err)

	clique := g.Clique()
	k := len(clique)
	if k == 0 {
		k = 1
	}
	f, idx, err := encoding.Build(tree, g, clique, k)
	require.NoError(t, err)

	// A model asserting every DIMACS id positively: Solve must translate
	// ids through the formula's own IDMap and silently drop anything it
	// cannot classify via idx, rather than erroring.
	model := make([]int, f.Len()+10)
	for i := range model {
		model[i] = i + 1
	}

	oracle := &fakeOracle{sat: true, model: model}
	result, err := solver.Solve(context.Background(), f, idx, oracle, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, solver.Sat, result.Outcome)
	for _, v := range result.Assigned {
		_, ok := idx.Classify(v)
		assert.True(t, ok)
	}
}

func TestReconstructDispatchesRoles(t *testing.T) {
	tree := apta.New()
	require.NoError(t, tree.Accept(sequence.FromString("a")))
	require.NoError(t, tree.Reject(sequence.FromString("b")))

	g, err := constraints.Build(tree)
	require.NoError(t, err)
	clique := g.Clique()
	k := len(clique)
	if k < 2 {
		k = 2
	}

	_, idx, err := encoding.Build(tree, g, clique, k)
	require.NoError(t, err)

	root := tree.Root()

	result := &solver.Result{
		Outcome: solver.Sat,
		Assigned: []*cnf.Variable{
			idx.X(root, 0),   // x_init(root,0) -> SetInitial(0)
			idx.Y("a", 0, 1), // -> AddArc(0,"a",1)
			idx.Z(1),         // -> SetAccept(1)
		},
	}

	dfa, err := solver.Reconstruct(result, idx)
	require.NoError(t, err)
	require.NotNil(t, dfa)
	assert.Equal(t, 0, dfa.Initial)
	require.NotNil(t, dfa.Nodes[1])
	assert.True(t, dfa.Nodes[1].Accept)
	dst, ok := dfa.Nodes[0].Arcs["a"]
	assert.True(t, ok)
	assert.Equal(t, 1, dst)
}

func TestReconstructUnsatReturnsNil(t *testing.T) {
	dfa, err := solver.Reconstruct(&solver.Result{Outcome: solver.Unsat}, nil)
	require.NoError(t, err)
	assert.Nil(t, dfa)
}
