package solver

import "errors"

// ErrTimeout is returned by Solve when the oracle exceeded its caller's
// deadline. Fatal to the current run.
var ErrTimeout = errors.New("solver: oracle timed out")

// ErrIO is returned by Solve on failure writing the scratch DIMACS file or
// reading the oracle's output. Fatal to the current run.
var ErrIO = errors.New("solver: scratch file io failure")
