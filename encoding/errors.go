package encoding

import "errors"

// ErrWrongCollaborator is returned by Build when the constraints.Graph
// given was not derived from the same apta.APTA.
var ErrWrongCollaborator = errors.New("encoding: constraints graph was not derived from this apta")

// ErrKTooSmall is returned by Build when k is smaller than the clique size;
// no DFA with fewer colors than a known clique can exist.
var ErrKTooSmall = errors.New("encoding: k is smaller than the clique size")
