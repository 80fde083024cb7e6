// Package encoding produces the CNF encoding of "merge this APTA's states
// into a DFA of k colors": the graph-coloring formulation whose satisfying
// models package solver.Reconstruct turns into a DFA.
//
// Four typed variable roles are allocated over an APTA's node set V,
// label set L, and color count k: x(v,i) ("node v has color i"), its
// specialization x_init (the same Boolean, for v == the APTA root, tagged
// so reconstruction knows which color is the DFA's initial state),
// y(a,i,j) ("color i transitions to color j on label a in the learned
// DFA"), and z(i) ("color i is accepting"). VariableIndex is the interner
// that hands out one cnf.Variable per (role, fields) tuple and lets the
// solver bridge classify a solved variable back into its role.
package encoding
