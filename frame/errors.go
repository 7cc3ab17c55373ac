// Package frame: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the frame
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package frame

import "errors"

var (
	// ErrNoColumns is returned when a Frame is constructed without columns.
	ErrNoColumns = errors.New("frame: at least one column required")

	// ErrColumnLength indicates that the supplied columns differ in length.
	ErrColumnLength = errors.New("frame: columns differ in length")

	// ErrColumn indicates that a supplied column carries a storage error
	// (a gota series built from incompatible values).
	ErrColumn = errors.New("frame: column in error state")

	// ErrDimensionMismatch indicates that option payloads (row names, kinds)
	// do not match the frame dimensions.
	ErrDimensionMismatch = errors.New("frame: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public accessors and slicers MUST return this, not panic.
	ErrOutOfRange = errors.New("frame: index out of range")

	// ErrBadShape is returned for an empty index list in SelectRows/SelectCols.
	ErrBadShape = errors.New("frame: invalid shape")

	// ErrBadKind indicates a Kind value outside the declared enum.
	ErrBadKind = errors.New("frame: unknown column kind")

	// ErrNotCategorical is returned by Levels for a column whose effective
	// kind is not categorical.
	ErrNotCategorical = errors.New("frame: column is not categorical")

	// ErrNilFrame indicates that a nil *Frame (receiver or argument) was used.
	ErrNilFrame = errors.New("frame: nil receiver")
)
