// Package automaton holds the learned output of identification: a
// deterministic finite automaton with a distinguished start state, a
// per-state accept flag, and a label->state transition map per state.
//
// DFA states are addressed by the color ids the SAT model assigns them
// (0..k-1), which are already dense and externally numbered — unlike
// arena.Arena's insert-only, sequential id allocation, a DFA's states are
// discovered in whatever order Builder happens to see them referenced in a
// satisfying model. Builder therefore keeps its own sparse id->*DNode map
// instead of reusing arena.Arena, and only materializes the states a model
// actually references (Touch/SetAccept/SetInitial/AddArc), discarding any
// color the solver introduced but never used.
package automaton
