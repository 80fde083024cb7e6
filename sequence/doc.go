// Package sequence defines the labeled-sequence data type that the rest of
// dfaident is built on: an ordered, possibly empty list of opaque, comparable
// labels, tagged as accepted, rejected, or (once parsed against an APTA that
// holds no label for it) unknown.
//
// The external world — an XES trace reader, a test fixture, a hand-written
// literal — produces labels as strings; Sequence treats them as exactly
// that. Internally, the graph substrate (package arena) stays parametric
// over the label type, so nothing downstream is hard-wired to string
// comparison; sequence simply picks the concrete type the rest of the
// module is instantiated with.
package sequence
