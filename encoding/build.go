package encoding

import (
	"github.com/lvlath-labs/dfaident/apta"
	"github.com/lvlath-labs/dfaident/cnf"
	"github.com/lvlath-labs/dfaident/constraints"
	"github.com/lvlath-labs/dfaident/sequence"
)

// Build produces the CNF formula representing "merge tree's states into a
// DFA of k colors". cg must have been derived from tree
// (Build rejects a mismatched pairing with ErrWrongCollaborator); clique
// must be a valid clique in cg (Build does not re-verify pairwise
// adjacency — see constraints.Graph.Clique); k must be at least
// len(clique).
//
// The basic clauses (clique seeding, at-least-one color, accept/reject-z
// consistency, parent-relation, y-determinism, y-totality) are always
// emitted. WithRedundantClauses additionally emits the optional clauses
// that force a complete transition function.
//
// Complexity: O(k^2*|V| + k^3*|L| + k*|E|), where |E| is cg's edge count:
// the parent-relation and y-forces-child-color families emit k^2 clauses
// per non-root node, y-determinism emits O(k^3) clauses per label, and the
// determinization conflicts emit k clauses per edge.
func Build(tree *apta.APTA, cg *constraints.Graph, clique []int, k int, opts ...Option) (*cnf.Formula, *VariableIndex, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if cg.Source() != tree {
		return nil, nil, ErrWrongCollaborator
	}
	if k < len(clique) {
		return nil, nil, ErrKTooSmall
	}

	idx := newVariableIndex(tree.Root())
	f := cnf.NewFormula()

	nodes := tree.Nodes()
	labels := labelSet(tree, nodes)

	emitCliqueSeeding(f, idx, tree, clique)
	emitAtLeastOneColor(f, idx, nodes, k)
	emitAcceptRejectConsistency(f, idx, tree, nodes, k)
	emitParentRelationImplied(f, idx, tree, nodes, k)
	emitYDeterministic(f, idx, labels, k)
	emitYTotal(f, idx, labels, k)

	if o.redundant {
		emitAtMostOneColor(f, idx, nodes, k)
		emitYForcesChildColor(f, idx, tree, nodes, k)
		emitDeterminizationConflicts(f, idx, cg, k)
	}

	return f, idx, nil
}

// labelSet collects every label appearing on any arc of tree, in sorted
// order for deterministic clause emission.
func labelSet(tree *apta.APTA, nodes []int) []sequence.Label {
	seen := make(map[sequence.Label]bool)
	var out []sequence.Label
	for _, v := range nodes {
		for _, l := range tree.ChildLabels(v) {
			if !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	sortLabels(out)
	return out
}

func sortLabels(labels []sequence.Label) {
	for i := 1; i < len(labels); i++ {
		for j := i; j > 0 && labels[j-1] > labels[j]; j-- {
			labels[j-1], labels[j] = labels[j], labels[j-1]
		}
	}
}

func emitCliqueSeeding(f *cnf.Formula, idx *VariableIndex, tree *apta.APTA, clique []int) {
	for s, n := range clique {
		f.Add(cnf.NewClause().Pos(idx.X(n, s)))
		switch tree.Response(n) {
		case sequence.Accept:
			f.Add(cnf.NewClause().Pos(idx.Z(s)))
		case sequence.Reject:
			f.Add(cnf.NewClause().Neg(idx.Z(s)))
		}
	}
}

func emitAtLeastOneColor(f *cnf.Formula, idx *VariableIndex, nodes []int, k int) {
	for _, v := range nodes {
		c := cnf.NewClause()
		for i := 0; i < k; i++ {
			c.Pos(idx.X(v, i))
		}
		f.Add(c)
	}
}

func emitAcceptRejectConsistency(f *cnf.Formula, idx *VariableIndex, tree *apta.APTA, nodes []int, k int) {
	for i := 0; i < k; i++ {
		for _, v := range nodes {
			switch tree.Response(v) {
			case sequence.Accept:
				f.Add(cnf.NewClause().Neg(idx.X(v, i)).Pos(idx.Z(i)))
			case sequence.Reject:
				f.Add(cnf.NewClause().Neg(idx.X(v, i)).Neg(idx.Z(i)))
			}
		}
	}
}

func emitParentRelationImplied(f *cnf.Formula, idx *VariableIndex, tree *apta.APTA, nodes []int, k int) {
	for _, v := range nodes {
		p, a, ok := tree.Parent(v)
		if !ok {
			continue // root has no parent
		}
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				f.Add(cnf.NewClause().Pos(idx.Y(a, i, j)).Neg(idx.X(p, i)).Neg(idx.X(v, j)))
			}
		}
	}
}

func emitYDeterministic(f *cnf.Formula, idx *VariableIndex, labels []sequence.Label, k int) {
	for _, a := range labels {
		for i := 0; i < k; i++ {
			for h := 0; h < k; h++ {
				for j := h + 1; j < k; j++ {
					f.Add(cnf.NewClause().Neg(idx.Y(a, i, h)).Neg(idx.Y(a, i, j)))
				}
			}
		}
	}
}

func emitYTotal(f *cnf.Formula, idx *VariableIndex, labels []sequence.Label, k int) {
	for _, a := range labels {
		for i := 0; i < k; i++ {
			c := cnf.NewClause()
			for j := 0; j < k; j++ {
				c.Pos(idx.Y(a, i, j))
			}
			f.Add(c)
		}
	}
}

func emitAtMostOneColor(f *cnf.Formula, idx *VariableIndex, nodes []int, k int) {
	for _, v := range nodes {
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				f.Add(cnf.NewClause().Neg(idx.X(v, i)).Neg(idx.X(v, j)))
			}
		}
	}
}

func emitYForcesChildColor(f *cnf.Formula, idx *VariableIndex, tree *apta.APTA, nodes []int, k int) {
	for _, v := range nodes {
		p, a, ok := tree.Parent(v)
		if !ok {
			continue
		}
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				f.Add(cnf.NewClause().Neg(idx.Y(a, i, j)).Neg(idx.X(p, i)).Pos(idx.X(v, j)))
			}
		}
	}
}

func emitDeterminizationConflicts(f *cnf.Formula, idx *VariableIndex, cg *constraints.Graph, k int) {
	for _, e := range cg.Edges() {
		for i := 0; i < k; i++ {
			f.Add(cnf.NewClause().Neg(idx.X(e.U, i)).Neg(idx.X(e.V, i)))
		}
	}
}
