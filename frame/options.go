// Package frame: functional configuration for Frame construction.
// This file defines:
//   - Option (functional options with internal state),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, options are pure data.
//   - No dead switches: each option impacts construction and is covered by
//     tests.
//   - Validation happens in New, where the frame dimensions are known;
//     option constructors never panic.
package frame

// options carries construction-time knobs; fields are unexported and only
// reachable through WithX constructors.
type options struct {
	rowNames []string // nil ⇒ default "1".."n"
	kinds    []Kind   // nil ⇒ all KindDefault
}

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*options)

// WithRowNames attaches row labels to the constructed Frame.
// len(names) must equal the row count; validated in New
// (ErrDimensionMismatch). Names need not be unique.
func WithRowNames(names []string) Option {
	return func(o *options) {
		o.rowNames = names
	}
}

// WithKinds attaches per-column presentation kinds to the constructed Frame.
// len(kinds) must equal the column count; validated in New
// (ErrDimensionMismatch, ErrBadKind).
func WithKinds(kinds []Kind) Option {
	return func(o *options) {
		o.kinds = kinds
	}
}

// gatherOptions folds the supplied options over the zero value.
func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
