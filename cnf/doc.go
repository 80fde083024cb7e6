// Package cnf provides the Boolean primitives the encoding package builds
// its formulas from: interned Variables, Clauses (two literal sets), an
// unordered Formula (conjunction of clauses), and a DIMACS writer with a
// stable variable<->id map so the solver bridge can translate a model back
// into typed variables.
//
// Variables are interned by name through a Pool: two Intern calls with the
// same name return the same *Variable, so identity is name equality, never
// accidental structural equality — the same discipline lvlath/matrix uses
// for its dense-matrix cell identity, applied here to a clause database
// instead of a grid.
package cnf
