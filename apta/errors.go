package apta

import "errors"

// ErrImpossibleTransition is raised from ParseBinary when strict parsing is
// requested and seq walks off the tree (no arc for some prefix).
var ErrImpossibleTransition = errors.New("apta: impossible transition")

// ErrNilSequence is returned when Accept/Reject is called with a nil
// Sequence; an empty, non-nil Sequence is valid and terminates on the root.
var ErrNilSequence = errors.New("apta: nil sequence")
