package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IDMap is the stable variable<->id mapping a Save call assigns, so a
// solver bridge can translate a DIMACS model's signed integers back into
// typed Variables.
type IDMap struct {
	toID  map[*Variable]int
	toVar map[int]*Variable
}

// ID returns the 1-based DIMACS id assigned to v, if any.
func (m *IDMap) ID(v *Variable) (int, bool) {
	id, ok := m.toID[v]
	return id, ok
}

// Variable returns the Variable assigned DIMACS id id, if any.
func (m *IDMap) Variable(id int) (*Variable, bool) {
	v, ok := m.toVar[id]
	return v, ok
}

// Len returns the number of variables in the map.
func (m *IDMap) Len() int { return len(m.toID) }

// buildIDMap assigns 1-based ids to f's variables in first-appearance
// order.
func buildIDMap(f *Formula) *IDMap {
	vars := f.Variables()
	m := &IDMap{
		toID:  make(map[*Variable]int, len(vars)),
		toVar: make(map[int]*Variable, len(vars)),
	}
	for i, v := range vars {
		id := i + 1
		m.toID[v] = id
		m.toVar[id] = v
	}
	return m
}

// Save writes f to w in DIMACS CNF format: informational comment lines,
// the "p cnf <n> <m>" preamble, then one line per clause of
// whitespace-separated signed literal ids terminated by "0". It returns the
// IDMap used, so callers can translate a returned model back to Variables.
//
// Complexity: O(total literal count).
func Save(w io.Writer, f *Formula) (*IDMap, error) {
	idmap := buildIDMap(f)
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "c variables: %d\n", idmap.Len()); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(bw, "c clauses: %d\n", f.Len()); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(bw, "c max clause width: %d\n", f.MaxWidth()); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", idmap.Len(), f.Len()); err != nil {
		return nil, err
	}

	for _, c := range f.Clauses() {
		for _, lit := range c.Literals() {
			id := idmap.toID[lit.Var]
			if !lit.Positive {
				id = -id
			}
			if _, err := fmt.Fprintf(bw, "%d ", id); err != nil {
				return nil, err
			}
		}
		if _, err := fmt.Fprint(bw, "0\n"); err != nil {
			return nil, err
		}
	}

	return idmap, bw.Flush()
}

// ParseModel reads a SAT oracle's model output: whitespace-separated signed
// integers, one per assigned variable, each DIMACS id optionally prefixed
// per line by a leading "v" token (the common SAT-competition output
// convention) and terminated by a literal 0 (which ParseModel strips, not
// reports). Lines starting with "c" (comments) or "s" (status lines such as
// "s SATISFIABLE") are skipped.
//
// Complexity: O(size of r).
func ParseModel(r io.Reader) ([]int, error) {
	var ids []int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "s") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			if tok == "v" || tok == "V" {
				continue
			}
			id, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("cnf: parse model token %q: %w", tok, err)
			}
			if id == 0 {
				continue
			}
			ids = append(ids, id)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
