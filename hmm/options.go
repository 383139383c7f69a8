// SPDX-License-Identifier: MIT

// Package hmm: functional configuration for Engine.
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions resolving the effective Options.

package hmm

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMethod is the brute-force reference solver.
	DefaultMethod = Enumerate

	// DefaultPathLimit disables the |S|^n guard (0 = unlimited).
	DefaultPathLimit = 0
)

// ---------- Internal panic messages ----------

const (
	panicMethodInvalid    = "hmm: WithMethod: unknown method"
	panicPathLimitInvalid = "hmm: WithPathLimit: limit must be >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective Engine configuration.
type Options struct {
	method    Method // DefaultMethod
	pathLimit int    // DefaultPathLimit; Enumerate only
}

// WithMethod selects the solver used by Evaluate and Decode.
// Panics on a Method outside {Enumerate, Trellis}.
func WithMethod(m Method) Option {
	if !m.valid() {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithPathLimit caps the number of candidate paths (|S|^n) Enumerate may walk.
// A call exceeding the cap fails with ErrTooManyPaths before enumerating.
// Zero disables the cap; negative values panic. Trellis ignores the cap.
func WithPathLimit(limit int) Option {
	if limit < 0 {
		panic(panicPathLimitInvalid)
	}

	return func(o *Options) { o.pathLimit = limit }
}

// gatherOptions applies user options over the defaults; nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		method:    DefaultMethod,
		pathLimit: DefaultPathLimit,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
