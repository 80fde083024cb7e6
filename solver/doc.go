// Package solver bridges a cnf.Formula to an external SAT oracle and turns
// a satisfying model back into an automaton.DFA.
//
// Oracle is the narrow interface the identification loop depends on; the
// core never embeds a SAT engine of its own, only a seam to an external
// one. ExecOracle is the concrete bridge
// against a DIMACS-speaking binary, invoked with os/exec under a
// caller-supplied timeout. Reconstruct classifies a Sat result's variables
// through an encoding.VariableIndex and dispatches into automaton.Builder.
package solver
