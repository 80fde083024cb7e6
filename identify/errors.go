package identify

import "errors"

// ErrEmptyInput is returned by Identify when the APTA carries no labeled
// nodes to learn from.
var ErrEmptyInput = errors.New("identify: apta has no accept/reject nodes")

// ErrKMaxExhausted is returned when the loop reaches KMax without finding
// a satisfying color count. Fatal to the current run.
var ErrKMaxExhausted = errors.New("identify: exhausted k_max without a satisfying model")

// ErrNoOracle is returned when Options.Oracle is nil.
var ErrNoOracle = errors.New("identify: no oracle configured")
