package automaton

import "errors"

// ErrImpossibleTransition is returned from Parse when strict parsing is
// requested and seq walks off the DFA (no arc for some prefix).
var ErrImpossibleTransition = errors.New("automaton: impossible transition")

// ErrNoInitialState is returned when Parse is called on a DFA whose Builder
// never recorded an initial state.
var ErrNoInitialState = errors.New("automaton: no initial state")

// ErrConflictingArc is returned by Builder.AddArc when (src, label) is
// already mapped to a different destination than the one given.
var ErrConflictingArc = errors.New("automaton: conflicting arc")
