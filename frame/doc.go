// Package frame provides Frame, a two-dimensional table-like container with
// per-column typing: rows are heterogeneous across columns, homogeneous
// within one.
//
// The frame package provides:
//
//   - Frame built on gota series for typed column storage (string, int,
//     float, bool), with row names always present.
//   - A per-column presentation Kind: textual columns can be tagged as plain
//     text or as categorical (levels), the analogue of the classic
//     strings-as-factors switch, made explicit instead of inferred ad hoc.
//   - Native row extraction (Row) and multi-element slicing (SelectRows,
//     SelectCols) that keep results two-dimensional and never alias the
//     source.
//
// Frame is the "table-like" family consumed by pick.Select.
package frame
