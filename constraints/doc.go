// Package constraints derives the merge-inconsistency graph over an APTA's
// states: an undirected graph whose edges forbid two states from sharing a
// DFA color, together with a greedy clique that lower-bounds the DFA's
// state count.
//
// Two states get an edge for one of two reasons: a direct conflict (one is
// accepting, the other rejecting), or an indirect conflict, discovered by
// recursively testing whether merging them would eventually force an
// accepting and a rejecting state together. The recursion terminates
// because the APTA is a finite tree: every recursive step follows a common
// label to strictly deeper children.
package constraints
