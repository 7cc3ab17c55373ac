// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) —
// callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid: non-positive
	// dimensions, ragged row input, or an empty index list.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) and slicers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that supplied axis labels do not match the
	// matrix dimensions (e.g., SetRowNames with the wrong length).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
