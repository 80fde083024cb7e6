package apta

import (
	"github.com/lvlath-labs/dfaident/arena"
	"github.com/lvlath-labs/dfaident/sequence"
)

// link records an APTA node's incoming edge: the parent's id and the label
// that reaches this node from it. The root has no link.
type link struct {
	parent int
	label  sequence.Label
}

// APTA is a rooted prefix tree over sequence.Label built from accepted and
// rejected training sequences.
//
// Invariants:
//   - exactly one node has no parent: the root, id 0;
//   - every non-root node is reachable from the root via its chain of
//     incoming labels, since nodes are only ever created as the target of
//     a fresh arc during Accept/Reject;
//   - arena.Arena enforces at most one child per (node, label);
//   - ids are dense from 0 in allocation order, inherited from arena.
type APTA struct {
	nodes    *arena.Arena[sequence.Label]
	response map[int]sequence.Response
	parents  map[int]link
}

// New constructs an empty APTA: a single root node (id 0) with response
// Unknown.
func New() *APTA {
	return &APTA{
		nodes:    arena.New[sequence.Label](),
		response: map[int]sequence.Response{0: sequence.Unknown},
		parents:  make(map[int]link),
	}
}

// Root returns the root node's id. Always 0.
func (t *APTA) Root() int { return t.nodes.Root() }

// Len returns the number of nodes in the APTA.
func (t *APTA) Len() int { return t.nodes.Len() }

// Nodes returns every node id currently in the APTA, in pre-order from the
// root.
func (t *APTA) Nodes() []int { return t.nodes.Reachable(t.Root()) }

// Response returns the response recorded for id, or Unknown if none was
// ever set (including for ids the APTA never allocated).
func (t *APTA) Response(id int) sequence.Response {
	if r, ok := t.response[id]; ok {
		return r
	}
	return sequence.Unknown
}

// Parent returns id's parent and the label on the incoming arc. ok is false
// for the root, which has no parent.
func (t *APTA) Parent(id int) (parent int, label sequence.Label, ok bool) {
	l, found := t.parents[id]
	if !found {
		return 0, "", false
	}
	return l.parent, l.label, true
}

// Follow returns the child reached from id via label, if any.
func (t *APTA) Follow(id int, label sequence.Label) (int, bool) {
	return t.nodes.Follow(id, label)
}

// ChildLabels returns the labels with an outgoing arc from id.
func (t *APTA) ChildLabels(id int) []sequence.Label {
	return t.nodes.Children(id)
}

// Accept walks seq from the root, extending the tree with fresh nodes for
// any unmatched suffix, and marks the terminal node Accept.
//
// Complexity: O(len(seq)).
func (t *APTA) Accept(seq sequence.Sequence) error {
	return t.acceptOrReject(seq, sequence.Accept)
}

// Reject walks seq from the root, extending the tree with fresh nodes for
// any unmatched suffix, and marks the terminal node Reject.
//
// Complexity: O(len(seq)).
func (t *APTA) Reject(seq sequence.Sequence) error {
	return t.acceptOrReject(seq, sequence.Reject)
}

// acceptOrReject is the shared implementation behind Accept and Reject.
// Passing response == Unknown is a no-op: no caller needs a tree walk that
// sets nothing.
func (t *APTA) acceptOrReject(seq sequence.Sequence, response sequence.Response) error {
	if seq == nil {
		return ErrNilSequence
	}
	if response == sequence.Unknown {
		return nil
	}

	cur := t.Root()
	for _, label := range seq {
		if next, ok := t.nodes.Follow(cur, label); ok {
			cur = next
			continue
		}
		next := t.nodes.NewNode()
		if err := t.nodes.AddArc(cur, label, next); err != nil {
			return err
		}
		t.parents[next] = link{parent: cur, label: label}
		cur = next
	}
	t.response[cur] = response
	return nil
}

// Parse follows seq from the root and returns the terminal node's response,
// or Unknown if seq falls off the tree before a terminal node is reached.
//
// Complexity: O(len(seq)).
func (t *APTA) Parse(seq sequence.Sequence) sequence.Response {
	node, ok := t.nodes.FollowPath(t.Root(), seq)
	if !ok {
		return sequence.Unknown
	}
	return t.Response(node)
}

// ParseBinary follows seq from the root and reports Accept as true and
// Reject or Unknown as false. If strict is set and seq falls off the tree,
// ParseBinary returns ErrImpossibleTransition instead of a false negative.
//
// Complexity: O(len(seq)).
func (t *APTA) ParseBinary(seq sequence.Sequence, strict bool) (bool, error) {
	node, ok := t.nodes.FollowPath(t.Root(), seq)
	if !ok {
		if strict {
			return false, ErrImpossibleTransition
		}
		return false, nil
	}
	return t.Response(node) == sequence.Accept, nil
}
