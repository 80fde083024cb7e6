package encoding

// Option configures Build's clause set beyond the always-emitted basic
// clauses.
type Option func(*options)

type options struct {
	redundant bool
}

func defaultOptions() options {
	return options{redundant: false}
}

// WithRedundantClauses additionally emits the redundant clauses
// (at-most-one color per node, y forces the child color, determinization
// conflicts as clauses), which force the reconstructed DFA to carry a
// complete transition function even for labels not witnessed under a
// color, at the cost of a larger formula.
func WithRedundantClauses() Option {
	return func(o *options) { o.redundant = true }
}
