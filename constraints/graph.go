package constraints

import (
	"sort"

	"github.com/lvlath-labs/dfaident/apta"
	"github.com/lvlath-labs/dfaident/sequence"
)

// Node mirrors one APTA node: its id, its response, and its adjacency
// within the constraints graph. Nodes are immutable once Build returns,
// and every node id corresponds to an APTA node.
type Node struct {
	ID       int
	Response sequence.Response
	adj      map[int]bool
}

// Edge is one undirected merge-inconsistency edge, reported once per pair
// in canonical (lower id, higher id) order.
type Edge struct {
	U, V int
}

// Graph is the undirected, possibly disconnected constraints graph derived
// from an APTA. It never has self-loops.
type Graph struct {
	source *apta.APTA
	nodes  map[int]*Node
}

// Source returns the APTA this Graph was derived from, so callers (package
// encoding) can reject a Graph/APTA pairing that didn't come from the same
// construction.
func (g *Graph) Source() *apta.APTA { return g.source }

// Nodes returns every node id in the graph, in ascending order.
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Response returns the response recorded for a node id.
func (g *Graph) Response(id int) sequence.Response {
	if n, ok := g.nodes[id]; ok {
		return n.Response
	}
	return sequence.Unknown
}

// HasEdge reports whether u and v are adjacent (in either order).
func (g *Graph) HasEdge(u, v int) bool {
	n, ok := g.nodes[u]
	if !ok {
		return false
	}
	return n.adj[v]
}

// Degree returns the number of nodes adjacent to id.
func (g *Graph) Degree(id int) int {
	n, ok := g.nodes[id]
	if !ok {
		return 0
	}
	return len(n.adj)
}

// Neighbors returns the ids adjacent to id, in ascending order.
func (g *Graph) Neighbors(id int) []int {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(n.adj))
	for v := range n.adj {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Edges returns every edge exactly once, ordered (u,v) with u < v, and the
// list itself sorted lexicographically by (u,v).
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, u := range g.Nodes() {
		for _, v := range g.Neighbors(u) {
			if u < v {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	return edges
}

func (g *Graph) addEdge(u, v int) {
	if u == v {
		return
	}
	g.nodes[u].adj[v] = true
	g.nodes[v].adj[u] = true
}

// Build derives the constraints graph from tree: one node per APTA node, a
// direct-conflict edge between every accepting/rejecting pair, and an
// indirect-conflict edge between every pair that fails the mergeability
// test.
//
// Complexity: O(n^2 * d) where n is the APTA's node count and d bounds the
// recursion depth of the mergeability test (at most the APTA's height).
func Build(tree *apta.APTA) (*Graph, error) {
	if tree == nil {
		return nil, ErrNilAPTA
	}

	g := &Graph{source: tree, nodes: make(map[int]*Node)}
	ids := tree.Nodes()
	for _, id := range ids {
		g.nodes[id] = &Node{ID: id, Response: tree.Response(id), adj: make(map[int]bool)}
	}

	// Direct conflicts.
	for i, u := range ids {
		for _, v := range ids[i+1:] {
			ru, rv := tree.Response(u), tree.Response(v)
			if isConflict(ru, rv) {
				g.addEdge(u, v)
			}
		}
	}

	// Indirect conflicts, via mergeability.
	for i, u := range ids {
		for _, v := range ids[i+1:] {
			if g.HasEdge(u, v) {
				continue
			}
			if !g.mergeable(tree, u, v) {
				g.addEdge(u, v)
			}
		}
	}

	return g, nil
}

func isConflict(a, b sequence.Response) bool {
	return (a == sequence.Accept && b == sequence.Reject) || (a == sequence.Reject && b == sequence.Accept)
}

// mergeable runs the recursive merge-consistency test for a single
// top-level pair (u,v): it returns false, without mutating g, as soon as
// fusing u and v would force an accepting state together with a rejecting
// one, directly or through a chain of shared-label children.
//
// The "merged" bookkeeping tracks which pairs this one top-level attempt
// has already fused, so a later fusion in the same attempt can check
// consistency against everything fused so far. It is not used to stop the
// recursion, which ends because every step moves to strictly deeper
// children of the finite APTA.
func (g *Graph) mergeable(tree *apta.APTA, u, v int) bool {
	merged := make(map[int][]int)
	return g.mergeableRec(tree, u, v, merged)
}

func (g *Graph) mergeableRec(tree *apta.APTA, u, v int, merged map[int][]int) bool {
	if g.HasEdge(u, v) {
		return false
	}

	for _, label := range commonLabels(tree, u, v) {
		fu, _ := tree.Follow(u, label)
		fv, _ := tree.Follow(v, label)
		if !g.mergeableRec(tree, fu, fv, merged) {
			return false
		}
	}

	for _, peer := range merged[v] {
		if g.HasEdge(u, peer) {
			return false
		}
	}
	for _, peer := range merged[u] {
		if g.HasEdge(v, peer) {
			return false
		}
	}

	merged[u] = append(merged[u], v)
	merged[v] = append(merged[v], u)
	return true
}

// commonLabels returns, in sorted order for determinism, the labels that
// have an outgoing arc from both u and v.
func commonLabels(tree *apta.APTA, u, v int) []sequence.Label {
	childrenU := tree.ChildLabels(u)
	inU := make(map[sequence.Label]bool, len(childrenU))
	for _, l := range childrenU {
		inU[l] = true
	}

	var common []sequence.Label
	for _, l := range tree.ChildLabels(v) {
		if inU[l] {
			common = append(common, l)
		}
	}
	sort.Strings(common)
	return common
}
