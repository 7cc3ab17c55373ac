// Package pick: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the pick
// package, plus the missing-identifier message helper. All failures abort
// the call immediately; there is no partial result and no internal recovery.
// Tests MUST check sentinels via errors.Is.

package pick

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDataKind indicates that data is neither matrix-like nor table-like
	// (nil, or an unrecognized Tabular implementation).
	ErrDataKind = errors.New("pick: data is neither matrix-like nor table-like")

	// ErrSelectionKind indicates a malformed selection: nil or empty, mixed
	// name/position entries, entries of an unsupported type, or an axis flag
	// outside {Columns, Rows}.
	ErrSelectionKind = errors.New("pick: invalid selection")

	// ErrNotFound indicates that one or more requested names or positions do
	// not exist along the target axis. The wrapping message identifies the
	// offenders (up to the first 5, then "and others") and names the axis.
	ErrNotFound = errors.New("pick: rows or columns not found")
)

// maxReported caps how many missing identifiers a NotFound message lists.
const maxReported = 5

// notFoundErr builds the canonical missing-identifier error: up to the first
// maxReported offenders comma-separated, "and others" beyond that, with the
// axis named. missing preserves request order.
func notFoundErr(axis Axis, missing []string) error {
	shown := missing
	suffix := ""
	if len(shown) > maxReported {
		shown = shown[:maxReported]
		suffix = " and others"
	}

	return fmt.Errorf("%s not found: %s%s: %w", axis, strings.Join(shown, ", "), suffix, ErrNotFound)
}
