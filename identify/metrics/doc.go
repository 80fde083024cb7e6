// Package metrics instruments the identification loop's one blocking
// step: the external SAT oracle call. Recorder wraps a private
// prometheus.Registry so that constructing one never collides with a
// caller's own default registry, and a nil *Recorder is a valid no-op —
// Identify never needs to branch on whether metrics were requested.
package metrics
