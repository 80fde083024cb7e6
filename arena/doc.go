// Package arena is a reusable, labeled, rooted-graph substrate. The APTA is
// built on it; the constraints graph and the learned DFA keep their own
// id-keyed maps instead.
//
// An Arena[L] owns a set of Nodes, each with a unique integer id assigned in
// allocation order, and a deterministic label->child map (at most one arc per
// label out of any node). Arcs reference children by id rather than by
// pointer, which keeps the structure free of ownership cycles and makes
// traversal, cloning, and serialization trivial — the same trick
// lvlath/core uses for its adjacency lists, generalized here from
// string-keyed multigraphs to a label-keyed rooted tree of generic nodes.
//
// Arena is not safe for concurrent mutation: the identification pipeline
// builds each Arena single-threaded, and every Arena is owned by exactly
// one constructor and read by its downstream components.
package arena
