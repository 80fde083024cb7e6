package encoding

import (
	"fmt"

	"github.com/lvlath-labs/dfaident/cnf"
	"github.com/lvlath-labs/dfaident/sequence"
)

// Kind distinguishes the three variable roles used for reconstruction
// dispatch (solver.Reconstruct); KindX also covers the x_init
// specialization.
type Kind int

const (
	// KindX marks "node Node has color Color"; Initial is set when Node is
	// the APTA root, in which case this is the x_init specialization.
	KindX Kind = iota
	// KindY marks "label Label takes color From to color To".
	KindY
	// KindZ marks "color Color is accepting".
	KindZ
)

// VarRole is the metadata VariableIndex attaches to every cnf.Variable it
// hands out, so a solved model can be classified back into its role without
// re-deriving it from the variable's name.
type VarRole struct {
	Kind    Kind
	Node    int            // KindX
	Initial bool           // KindX, true only for the APTA root
	Label   sequence.Label // KindY
	From    int            // KindY
	To      int            // KindY
	Color   int            // KindX, KindY (To, duplicated as Color for symmetry), KindZ
}

type xKey struct {
	node, color int
}
type yKey struct {
	label       sequence.Label
	from, color int
}

// VariableIndex interns the cnf.Variables for a single Build call and
// remembers each one's VarRole.
type VariableIndex struct {
	pool *cnf.Pool
	root int

	x map[xKey]*cnf.Variable
	y map[yKey]*cnf.Variable
	z map[int]*cnf.Variable

	roles map[*cnf.Variable]VarRole
}

func newVariableIndex(root int) *VariableIndex {
	return &VariableIndex{
		pool:  cnf.NewPool(),
		root:  root,
		x:     make(map[xKey]*cnf.Variable),
		y:     make(map[yKey]*cnf.Variable),
		z:     make(map[int]*cnf.Variable),
		roles: make(map[*cnf.Variable]VarRole),
	}
}

// X returns the variable "node has color", allocating it on first
// reference. When node is the APTA root, the variable is named and tagged
// as the x_init specialization: the same Boolean, carrying the extra
// meaning that v is the DFA's initial state for that color.
func (idx *VariableIndex) X(node, color int) *cnf.Variable {
	key := xKey{node, color}
	if v, ok := idx.x[key]; ok {
		return v
	}

	initial := node == idx.root
	var name string
	if initial {
		name = fmt.Sprintf("xinit#%d#%d", node, color)
	} else {
		name = fmt.Sprintf("x#%d#%d", node, color)
	}
	v := idx.pool.Intern(name)
	idx.x[key] = v
	idx.roles[v] = VarRole{Kind: KindX, Node: node, Color: color, Initial: initial}
	return v
}

// Y returns the variable "label from color to color", allocating it on
// first reference.
func (idx *VariableIndex) Y(label sequence.Label, from, to int) *cnf.Variable {
	key := yKey{label, from, to}
	if v, ok := idx.y[key]; ok {
		return v
	}
	v := idx.pool.Intern(fmt.Sprintf("y#%s#%d#%d", label, from, to))
	idx.y[key] = v
	idx.roles[v] = VarRole{Kind: KindY, Label: label, From: from, To: to, Color: to}
	return v
}

// Z returns the variable "color is accepting", allocating it on first
// reference.
func (idx *VariableIndex) Z(color int) *cnf.Variable {
	if v, ok := idx.z[color]; ok {
		return v
	}
	v := idx.pool.Intern(fmt.Sprintf("z#%d", color))
	idx.z[color] = v
	idx.roles[v] = VarRole{Kind: KindZ, Color: color}
	return v
}

// Classify reports the VarRole recorded for v, if v was allocated by this
// VariableIndex.
func (idx *VariableIndex) Classify(v *cnf.Variable) (VarRole, bool) {
	r, ok := idx.roles[v]
	return r, ok
}
