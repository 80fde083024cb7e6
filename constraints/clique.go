package constraints

import "github.com/lvlath-labs/dfaident/sequence"

// Clique returns a lower bound on the DFA's chromatic number: the union of
// a greedy clique over the accepting nodes and a greedy clique over the
// rejecting nodes. The union is itself a clique because every
// accepting/rejecting pair is adjacent (every such pair is a direct
// conflict; see Build).
//
// Quality (clique size) matters only as a tighter starting point for
// package identify's search; correctness (pairwise adjacency) is the only
// thing this function guarantees.
func (g *Graph) Clique() []int {
	var accepting, rejecting []int
	for _, id := range g.Nodes() {
		switch g.Response(id) {
		case sequence.Accept:
			accepting = append(accepting, id)
		case sequence.Reject:
			rejecting = append(rejecting, id)
		}
	}

	clique := g.greedyClique(accepting)
	clique = append(clique, g.greedyClique(rejecting)...)
	return clique
}

// greedyClique grows a clique within the induced subgraph on candidates:
//
//  1. select the candidate of maximum induced degree, tie-breaking on the
//     highest id (iterating in ascending id order and keeping ties via
//     >=, so the last-seen — i.e. highest-id — candidate of equal degree
//     wins; see DESIGN.md for the rationale);
//  2. repeatedly extend by the remaining candidate that is adjacent to
//     every current clique member and has maximum induced degree, with the
//     same >= tie-break, until no such candidate exists.
func (g *Graph) greedyClique(candidates []int) []int {
	if len(candidates) == 0 {
		return nil
	}

	inSet := make(map[int]bool, len(candidates))
	for _, id := range candidates {
		inSet[id] = true
	}
	inducedDegree := func(id int) int {
		d := 0
		for _, nb := range g.Neighbors(id) {
			if inSet[nb] {
				d++
			}
		}
		return d
	}

	seed := candidates[0]
	seedDeg := -1
	for _, id := range candidates {
		if d := inducedDegree(id); d >= seedDeg {
			seedDeg = d
			seed = id
		}
	}

	clique := []int{seed}
	inClique := map[int]bool{seed: true}

	for {
		best := -1
		bestDeg := -1
		for _, id := range candidates {
			if inClique[id] {
				continue
			}
			if !adjacentToAll(g, id, clique) {
				continue
			}
			if d := inducedDegree(id); d >= bestDeg {
				bestDeg = d
				best = id
			}
		}
		if best < 0 {
			break
		}
		clique = append(clique, best)
		inClique[best] = true
	}

	return clique
}

func adjacentToAll(g *Graph, id int, clique []int) bool {
	for _, member := range clique {
		if !g.HasEdge(id, member) {
			return false
		}
	}
	return true
}
