package automaton

import "github.com/lvlath-labs/dfaident/sequence"

// Builder incrementally assembles a DFA from the typed, positively-assigned
// variables of a satisfying SAT model (see package solver). Every method is
// idempotent on a repeated, consistent call, and never allocates a DNode
// the caller hasn't referenced by id.
type Builder struct {
	dfa *DFA
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{dfa: &DFA{Nodes: make(map[int]*DNode)}}
}

// Touch ensures a DNode exists for id, allocating one on first reference.
func (b *Builder) Touch(id int) *DNode {
	n, ok := b.dfa.Nodes[id]
	if !ok {
		n = &DNode{ID: id, Arcs: make(map[sequence.Label]int)}
		b.dfa.Nodes[id] = n
	}
	return n
}

// SetAccept marks state id as accepting, allocating it if needed.
func (b *Builder) SetAccept(id int) {
	b.Touch(id).Accept = true
}

// SetInitial marks state id as the DFA's initial state, allocating it if
// needed. Calling SetInitial more than once just moves the initial state to
// the latest id given.
func (b *Builder) SetInitial(id int) {
	b.Touch(id)
	b.dfa.Initial = id
	b.dfa.hasInit = true
}

// AddArc records an arc (src, label) -> dst, allocating src and dst if
// needed. Calling AddArc twice with the same (src, label) and the same dst
// is a no-op; calling it with the same (src, label) and a different dst is
// a conflict and returns ErrConflictingArc.
func (b *Builder) AddArc(src int, label sequence.Label, dst int) error {
	s := b.Touch(src)
	b.Touch(dst)
	if existing, ok := s.Arcs[label]; ok && existing != dst {
		return ErrConflictingArc
	}
	s.Arcs[label] = dst
	return nil
}

// Build returns the assembled DFA. The Builder remains usable afterward;
// further mutation is reflected in DFAs already returned, since DFA is
// returned by reference (matching lvlath's own builder-returns-live-handle
// convention).
func (b *Builder) Build() *DFA {
	return b.dfa
}
