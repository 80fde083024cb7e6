package sequence

import "strings"

// Label is a single token of a Sequence. The core treats labels as opaque,
// comparable values with a canonical string form; concretely, that type is
// string.
type Label = string

// Sequence is an ordered, possibly empty list of Labels.
type Sequence []Label

// Response classifies how an APTA treats a Sequence. (A learned DFA reports
// acceptance as a bool; see automaton.DFA.Parse.)
type Response int

const (
	// Unknown means no Accept/Reject call has ever terminated on this state,
	// or parsing fell off the structure before reaching a terminal state.
	Unknown Response = iota
	// Accept marks a Sequence (or the state it terminates on) as accepted.
	Accept
	// Reject marks a Sequence (or the state it terminates on) as rejected.
	Reject
)

// String renders a Response for diagnostics and test failure messages.
func (r Response) String() string {
	switch r {
	case Accept:
		return "Accept"
	case Reject:
		return "Reject"
	default:
		return "Unknown"
	}
}

// Of builds a Sequence from its labels, in order.
func Of(labels ...Label) Sequence {
	s := make(Sequence, len(labels))
	copy(s, labels)
	return s
}

// FromString splits s into single-rune labels, one per character. It is a
// convenience for tests and small examples that write sequences as plain
// strings (e.g. "ciao" -> ["c","i","a","o"]); it is not an XES reader and
// makes no claim to any richer tokenization.
func FromString(s string) Sequence {
	if s == "" {
		return Sequence{}
	}
	runes := []rune(s)
	out := make(Sequence, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

// String renders the Sequence as its labels joined with no separator,
// matching FromString's tokenization convention; labels containing multiple
// characters are joined with "." so the round trip stays unambiguous.
func (s Sequence) String() string {
	if len(s) == 0 {
		return "ε"
	}
	simple := true
	for _, l := range s {
		if len([]rune(l)) != 1 {
			simple = false
			break
		}
	}
	if simple {
		return strings.Join(s, "")
	}
	return strings.Join(s, ".")
}

// Equal reports whether s and other contain the same labels in the same
// order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
