package cnf

// Literal is a (variable, polarity) pair: Positive true means the variable
// itself; false means its negation.
type Literal struct {
	Var      *Variable
	Positive bool
}

// Clause is an unordered collection of Literals, stored as two sets
// (positive, negative) so that adding the same (variable, polarity) twice
// is a no-op. A variable appearing on both polarities makes the clause
// trivially satisfied; Clause retains it as-is and lets the SAT solver
// absorb it.
type Clause struct {
	posOrder []*Variable
	negOrder []*Variable
	pos      map[*Variable]bool
	neg      map[*Variable]bool
}

// NewClause returns an empty Clause.
func NewClause() *Clause {
	return &Clause{pos: make(map[*Variable]bool), neg: make(map[*Variable]bool)}
}

// Pos adds v as a positive literal. Returns the Clause for chaining.
func (c *Clause) Pos(v *Variable) *Clause { return c.add(v, true) }

// Neg adds v as a negative literal. Returns the Clause for chaining.
func (c *Clause) Neg(v *Variable) *Clause { return c.add(v, false) }

func (c *Clause) add(v *Variable, positive bool) *Clause {
	if positive {
		if !c.pos[v] {
			c.pos[v] = true
			c.posOrder = append(c.posOrder, v)
		}
	} else {
		if !c.neg[v] {
			c.neg[v] = true
			c.negOrder = append(c.negOrder, v)
		}
	}
	return c
}

// Literals returns the Clause's literals, positives first, each set in
// insertion order.
func (c *Clause) Literals() []Literal {
	out := make([]Literal, 0, len(c.posOrder)+len(c.negOrder))
	for _, v := range c.posOrder {
		out = append(out, Literal{Var: v, Positive: true})
	}
	for _, v := range c.negOrder {
		out = append(out, Literal{Var: v, Positive: false})
	}
	return out
}

// Len returns the number of literals in the Clause.
func (c *Clause) Len() int { return len(c.posOrder) + len(c.negOrder) }

// NewClauseOf constructs a Clause from a mix of positive and negative literal
// helpers; see P/N. It is sugar for NewClause().Pos(a).Neg(b)....
func NewClauseOf(lits ...Literal) *Clause {
	c := NewClause()
	for _, l := range lits {
		c.add(l.Var, l.Positive)
	}
	return c
}

// P builds a positive Literal.
func P(v *Variable) Literal { return Literal{Var: v, Positive: true} }

// N builds a negative Literal.
func N(v *Variable) Literal { return Literal{Var: v, Positive: false} }
