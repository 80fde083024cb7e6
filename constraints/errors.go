package constraints

import "errors"

// ErrNilAPTA is returned by Build when given a nil *apta.APTA.
var ErrNilAPTA = errors.New("constraints: nil apta")
