// Package identify runs the outer search loop of exact DFA identification:
// starting from the constraints graph's clique size, it builds a CNF
// encoding for increasing color counts k, calls the SAT oracle, and
// returns the first satisfying DFA.
package identify
