// Package pick implements shape-preserving row/column selection over the
// tabular families (matrix.Dense, frame.Frame).
//
// Most tabular libraries let a single-row or single-column selection
// silently collapse into a flat one-dimensional value. Select never does:
// the result is always a two-dimensional object of the same family as its
// input, whether one identifier was requested or many.
//
// Selection semantics:
//
//   - Identifiers are either names (ByName) or 1-based positions (ByIndex);
//     the two forms never mix inside one selection. Parse converts untyped
//     input and rejects empty or mixed specifiers.
//   - Output order follows the selection specifier, not the order of
//     appearance in the data. Duplicate requests yield duplicate
//     rows/columns, in order.
//   - A name matching several positions (non-unique axis labels) expands to
//     every match, in axis order, at the point of that name's occurrence in
//     the specifier.
//   - Missing names or out-of-range positions abort with ErrNotFound; the
//     message lists up to the first 5 offenders, then "and others".
//
// Select is pure: it never mutates its input and holds no state between
// calls.
package pick
