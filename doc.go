// Package tabular is a small toolkit for two-dimensional labeled data —
// matrices, data frames, and a selection operation that never collapses
// a single row or column into a flat sequence.
//
// 🚀 What is tabular?
//
//	A focused, pure-Go library that brings together:
//		• matrix: Dense float64 matrices with optional row/column names
//		• frame: typed-column data frames with row names and per-column kinds
//		• pick: shape-preserving row/column selection by name or position
//
// ✨ Why choose tabular?
//
//   - Predictable shapes – selecting one column still yields a 4×1 matrix,
//     never a flat vector of length 4
//   - Clear failures – sentinel errors for bad inputs and missing labels,
//     matched via errors.Is
//   - Pure functions – no mutation of inputs, no global state, no I/O
//
// Everything is organized under three subpackages:
//
//	frame/  — table-like containers: typed columns, row names, kinds
//	matrix/ — matrix-like containers: homogeneous float64 cells
//	pick/   — the Selector: Select(data, selection, axis)
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	_ = m.SetColNames([]string{"a", "b"})
//	one, _ := pick.Select(m, pick.ByName{"b"}, pick.Columns) // 2×1, not []float64
//
// Dive into the per-package docs for the full selection semantics, including
// duplicate-label expansion and the singleton reconstruction rules.
//
//	go get github.com/lhsego/tabular
package tabular
