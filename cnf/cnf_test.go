package cnf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lvlath-labs/dfaident/cnf"
)

func TestInternIdentity(t *testing.T) {
	p := cnf.NewPool()
	a := p.Intern("x1")
	b := p.Intern("x1")
	if a != b {
		t.Fatalf("Intern(same name) returned distinct variables")
	}
	c := p.Intern("x2")
	if a == c {
		t.Fatalf("Intern(different name) returned the same variable")
	}
}

func TestClauseDedup(t *testing.T) {
	p := cnf.NewPool()
	v := p.Intern("x")
	c := cnf.NewClause().Pos(v).Pos(v)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d; want 1 (duplicate positive literal suppressed)", c.Len())
	}
}

func TestClauseBothPolaritiesRetained(t *testing.T) {
	p := cnf.NewPool()
	v := p.Intern("x")
	c := cnf.NewClause().Pos(v).Neg(v)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d; want 2 (both polarities retained)", c.Len())
	}
}

// S5: DIMACS stability.
func TestDimacsSaveAndRoundTrip(t *testing.T) {
	p := cnf.NewPool()
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	vars := make([]*cnf.Variable, len(names))
	for i, n := range names {
		vars[i] = p.Intern(n)
	}

	f := cnf.NewFormula()
	f.Add(cnf.NewClause().Pos(vars[0]).Neg(vars[1]))
	f.Add(cnf.NewClause().Pos(vars[2]).Pos(vars[3]).Neg(vars[4]))
	f.Add(cnf.NewClause().Neg(vars[5]).Pos(vars[6]))
	f.Add(cnf.NewClause().Pos(vars[7]))

	var buf bytes.Buffer
	idmap, err := cnf.Save(&buf, f)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if idmap.Len() != 8 {
		t.Fatalf("idmap.Len() = %d; want 8", idmap.Len())
	}

	out := buf.String()
	var preamble string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "p cnf") {
			preamble = line
			break
		}
	}
	if preamble != "p cnf 8 4" {
		t.Fatalf("preamble = %q; want %q", preamble, "p cnf 8 4")
	}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.HasPrefix(line, "p") || strings.HasPrefix(line, "c") {
			continue
		}
		if !strings.HasSuffix(strings.TrimSpace(line), "0") {
			t.Fatalf("clause line %q does not end with 0", line)
		}
	}

	// Round trip: every variable the formula used is recoverable via its id.
	for _, v := range vars {
		id, ok := idmap.ID(v)
		if !ok {
			t.Fatalf("missing id for variable %s", v.Name)
		}
		got, ok := idmap.Variable(id)
		if !ok || got != v {
			t.Fatalf("Variable(%d) = %v; want %v", id, got, v)
		}
	}
}

func TestParseModel(t *testing.T) {
	r := strings.NewReader("v 1 -2 3 0\n")
	ids, err := cnf.ParseModel(r)
	if err != nil {
		t.Fatalf("ParseModel: %v", err)
	}
	want := []int{1, -2, 3}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v; want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v; want %v", ids, want)
		}
	}
}
