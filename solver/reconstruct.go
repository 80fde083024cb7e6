package solver

import (
	"github.com/lvlath-labs/dfaident/automaton"
	"github.com/lvlath-labs/dfaident/encoding"
)

// Reconstruct builds a DFA from a Sat Result by dispatching each
// positively-assigned variable on its VarRole:
//
//   - z(i)          -> builder.SetAccept(i)
//   - y(a,i,j)       -> builder.AddArc(i, a, j)
//   - x_init(v,i)    -> builder.SetInitial(i)
//   - x(v,i) (other) -> ignored; colors are realized through y and z
//
// Reconstruct returns (nil, nil) for an Unsat result.
func Reconstruct(result *Result, idx *encoding.VariableIndex) (*automaton.DFA, error) {
	if result.Outcome != Sat {
		return nil, nil
	}

	b := automaton.NewBuilder()
	for _, v := range result.Assigned {
		role, ok := idx.Classify(v)
		if !ok {
			continue
		}
		switch role.Kind {
		case encoding.KindZ:
			b.SetAccept(role.Color)
		case encoding.KindY:
			if err := b.AddArc(role.From, role.Label, role.To); err != nil {
				return nil, err
			}
		case encoding.KindX:
			if role.Initial {
				b.SetInitial(role.Color)
			}
		}
	}

	return b.Build(), nil
}
