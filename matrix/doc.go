// Package matrix provides Dense, a two-dimensional homogeneous float64
// container with optional row and column names.
//
// The matrix package provides:
//
//   - Dense with O(1) cell access and row-major flat storage.
//   - Optional axis labels (row names, column names) carried through every
//     derived matrix; labels need not be unique.
//   - Native multi-element slicing (SliceRows, SliceCols) that keeps results
//     two-dimensional and copies storage, never aliasing the source.
//
// Dense is the "matrix-like" family consumed by pick.Select. It is best for
// small, fully materialized data where O(r·c) memory is acceptable.
//
// See the examples in this package and pick for usage patterns.
package matrix
