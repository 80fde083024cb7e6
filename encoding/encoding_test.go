package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/dfaident/apta"
	"github.com/lvlath-labs/dfaident/constraints"
	"github.com/lvlath-labs/dfaident/encoding"
	"github.com/lvlath-labs/dfaident/sequence"
)

func buildS2(t *testing.T) (*apta.APTA, *constraints.Graph, []int) {
	t.Helper()
	tree := apta.New()
	require.NoError(t, tree.Accept(sequence.FromString("ciao")))
	require.NoError(t, tree.Accept(sequence.FromString("ci")))
	require.NoError(t, tree.Accept(sequence.FromString("ca")))
	require.NoError(t, tree.Accept(sequence.FromString("")))
	require.NoError(t, tree.Reject(sequence.FromString("ciar")))

	g, err := constraints.Build(tree)
	require.NoError(t, err)
	clique := g.Clique()
	return tree, g, clique
}

func TestBuildRejectsWrongCollaborator(t *testing.T) {
	tree, _, clique := buildS2(t)
	other := apta.New()
	require.NoError(t, other.Accept(sequence.FromString("z")))
	og, err := constraints.Build(other)
	require.NoError(t, err)

	_, _, err = encoding.Build(tree, og, clique, len(clique))
	assert.ErrorIs(t, err, encoding.ErrWrongCollaborator)
}

func TestBuildRejectsKTooSmall(t *testing.T) {
	tree, g, clique := buildS2(t)
	if len(clique) == 0 {
		t.Fatal("scenario must produce a non-empty clique")
	}
	_, _, err := encoding.Build(tree, g, clique, len(clique)-1)
	assert.ErrorIs(t, err, encoding.ErrKTooSmall)
}

func TestBuildProducesNonEmptyFormula(t *testing.T) {
	tree, g, clique := buildS2(t)
	k := len(clique)
	if k == 0 {
		k = 1
	}
	f, idx, err := encoding.Build(tree, g, clique, k)
	require.NoError(t, err)
	require.NotNil(t, idx)
	assert.Greater(t, f.Len(), 0)
}

func TestBuildCliqueSeedingPinsDistinctColors(t *testing.T) {
	tree, g, clique := buildS2(t)
	k := len(clique)
	require.Greater(t, k, 1, "scenario must yield a clique of size > 1")

	f, idx, err := encoding.Build(tree, g, clique, k)
	require.NoError(t, err)

	for s, n := range clique {
		x := idx.X(n, s)
		found := false
		for _, c := range f.Clauses() {
			lits := c.Literals()
			if len(lits) == 1 && lits[0].Positive && lits[0].Var == x {
				found = true
				break
			}
		}
		assert.True(t, found, "clique member %d must have a unit clause pinning color %d", n, s)
	}
}

func TestBuildRedundantClausesAddMoreConstraints(t *testing.T) {
	tree, g, clique := buildS2(t)
	k := len(clique)
	if k == 0 {
		k = 2
	}

	base, _, err := encoding.Build(tree, g, clique, k)
	require.NoError(t, err)

	redundant, _, err := encoding.Build(tree, g, clique, k, encoding.WithRedundantClauses())
	require.NoError(t, err)

	assert.Greater(t, redundant.Len(), base.Len())
}

func TestVariableIndexClassifiesRoles(t *testing.T) {
	tree, g, clique := buildS2(t)
	k := len(clique)
	if k == 0 {
		k = 1
	}
	_, idx, err := encoding.Build(tree, g, clique, k)
	require.NoError(t, err)

	root := tree.Root()
	xi := idx.X(root, 0)
	role, ok := idx.Classify(xi)
	require.True(t, ok)
	assert.Equal(t, encoding.KindX, role.Kind)
	assert.True(t, role.Initial)

	z := idx.Z(0)
	role, ok = idx.Classify(z)
	require.True(t, ok)
	assert.Equal(t, encoding.KindZ, role.Kind)
	assert.Equal(t, 0, role.Color)
}
