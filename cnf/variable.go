package cnf

// Variable is a Boolean unknown, identified by its Name, with a mutable
// assignment slot populated after solving.
type Variable struct {
	Name     string
	value    bool
	assigned bool
}

// Value returns the Variable's assignment and whether one was ever set.
func (v *Variable) Value() (value, assigned bool) {
	return v.value, v.assigned
}

// Assign records val as v's assignment.
func (v *Variable) Assign(val bool) {
	v.value = val
	v.assigned = true
}

// Pool interns Variables by name: two Intern calls with the same name
// return the same *Variable.
type Pool struct {
	vars map[string]*Variable
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{vars: make(map[string]*Variable)}
}

// Intern returns the Variable named name, creating it on first reference.
func (p *Pool) Intern(name string) *Variable {
	if v, ok := p.vars[name]; ok {
		return v
	}
	v := &Variable{Name: name}
	p.vars[name] = v
	return v
}

// Lookup returns the Variable named name without creating it.
func (p *Pool) Lookup(name string) (*Variable, bool) {
	v, ok := p.vars[name]
	return v, ok
}

// Len returns the number of distinct Variables interned so far.
func (p *Pool) Len() int { return len(p.vars) }
