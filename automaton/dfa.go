package automaton

import "github.com/lvlath-labs/dfaident/sequence"

// DNode is a single DFA state: an id, an accept flag, and its outgoing
// arcs. At most one arc per label out of any DNode (determinism, D1).
type DNode struct {
	ID     int
	Accept bool
	Arcs   map[sequence.Label]int
}

// DFA is a deterministic finite automaton: a set of DNodes plus one
// distinguished initial state (D2).
type DFA struct {
	Nodes   map[int]*DNode
	Initial int
	hasInit bool
}

// HasInitial reports whether an initial state was ever recorded.
func (d *DFA) HasInitial() bool { return d.hasInit }

// Node returns the DNode for id, or nil if the DFA has no such state.
func (d *DFA) Node(id int) *DNode { return d.Nodes[id] }

// Len returns the number of states in the DFA.
func (d *DFA) Len() int { return len(d.Nodes) }

// Parse traverses the DFA from its initial state, following seq one label
// at a time, and returns the terminal state's Accept flag.
//
// If strict is set and seq walks off the DFA (no arc for some prefix) or
// the DFA has no initial state, Parse returns ErrImpossibleTransition /
// ErrNoInitialState instead of a false negative. If strict is unset, both
// conditions simply return false.
//
// Complexity: O(len(seq)).
func (d *DFA) Parse(seq sequence.Sequence, strict bool) (bool, error) {
	if !d.hasInit {
		if strict {
			return false, ErrNoInitialState
		}
		return false, nil
	}

	cur := d.Nodes[d.Initial]
	for _, label := range seq {
		if cur == nil {
			if strict {
				return false, ErrImpossibleTransition
			}
			return false, nil
		}
		next, ok := cur.Arcs[label]
		if !ok {
			if strict {
				return false, ErrImpossibleTransition
			}
			return false, nil
		}
		cur = d.Nodes[next]
	}
	if cur == nil {
		if strict {
			return false, ErrImpossibleTransition
		}
		return false, nil
	}
	return cur.Accept, nil
}
