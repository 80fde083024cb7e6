// Package apta builds and queries the Augmented Prefix Tree Acceptor: the
// deterministic prefix tree whose leaves (and some internal nodes) carry an
// Accept/Reject/Unknown response, built from a set of labeled training
// sequences.
//
// Construction extends arena.Arena[sequence.Label] only along existing
// children (accept/reject walk as far as possible, then grow fresh nodes for
// the remainder), so determinism (at most one child per label) holds at
// every point during construction, not just at the end.
package apta
