package cnf

// Formula is a conjunction of Clauses. Logically it is an unordered set —
// clause order never affects satisfiability — but Formula preserves
// insertion order internally so that DIMACS id assignment is a
// deterministic function of how the encoding built the formula.
type Formula struct {
	clauses []*Clause
}

// NewFormula returns an empty Formula.
func NewFormula() *Formula {
	return &Formula{}
}

// Add appends c to the Formula.
func (f *Formula) Add(c *Clause) {
	f.clauses = append(f.clauses, c)
}

// Clauses returns the Formula's clauses in insertion order.
func (f *Formula) Clauses() []*Clause {
	return f.clauses
}

// Len returns the number of clauses in the Formula.
func (f *Formula) Len() int { return len(f.clauses) }

// MaxWidth returns the literal count of the Formula's widest clause, or 0
// for an empty Formula.
func (f *Formula) MaxWidth() int {
	max := 0
	for _, c := range f.clauses {
		if n := c.Len(); n > max {
			max = n
		}
	}
	return max
}

// Variables returns every distinct Variable referenced by the Formula, in
// first-appearance order over its clauses (and, within a clause, over its
// literals) — the same order DIMACS ids are assigned in.
func (f *Formula) Variables() []*Variable {
	seen := make(map[*Variable]bool)
	var out []*Variable
	for _, c := range f.clauses {
		for _, lit := range c.Literals() {
			if !seen[lit.Var] {
				seen[lit.Var] = true
				out = append(out, lit.Var)
			}
		}
	}
	return out
}
