package pick

import (
	"fmt"
	"strconv"

	"github.com/go-gota/gota/series"

	"github.com/lhsego/tabular/frame"
	"github.com/lhsego/tabular/matrix"
)

// Select — shape-preserving row/column selection
//
// Description:
//
//	Select returns a new tabular object of the same family as data,
//	containing exactly the requested rows or columns, in the order
//	requested, with labels carried along — and always two-dimensional,
//	even when exactly one row or column was requested. Default slicing in
//	most tabular data models collapses that singleton case into a flat
//	sequence; Select exists to prevent it.
//
// Algorithm Outline:
//  1. Validate data family (*matrix.Dense or *frame.Frame) and axis.
//  2. Resolve the selection to 0-based positions along the target axis:
//     ByName  — verify every name exists (ErrNotFound otherwise), then
//     expand each name, in specifier order, to every matching
//     position in axis order (duplicates preserved).
//     ByIndex — verify every 1-based position lies in [1, axis size]
//     (ErrNotFound otherwise), then shift to 0-based.
//  3. Construct the result:
//     two or more positions — forward to the family's native slice,
//     which already preserves two-dimensionality;
//     exactly one position  — build the singleton explicitly, one branch
//     per family×axis (Frame rows forward to the
//     native Row extraction, which needs no help).
//
// Guarantees:
//   - The result's family equals the input's family.
//   - Labels on the selected axis follow the specifier; labels on the other
//     axis are copied unchanged.
//   - data is never mutated; a failed call produces no partial result.
//
// Complexity:
//
//	Time = O(axis size + |selection| + cells copied), Memory = result size.
//
// Errors:
//   - ErrDataKind      — data is nil or not a recognized family.
//   - ErrSelectionKind — sel is nil/empty/unknown, or axis is out of range.
//   - ErrNotFound      — missing names or out-of-range positions.
func Select(data Tabular, sel Selection, axis Axis) (Tabular, error) {
	// Validate data family up front: kind errors outrank selection errors.
	switch d := data.(type) {
	case *matrix.Dense:
		if d == nil {
			return nil, fmt.Errorf("Select: nil matrix: %w", ErrDataKind)
		}
	case *frame.Frame:
		if d == nil {
			return nil, fmt.Errorf("Select: nil frame: %w", ErrDataKind)
		}
	default:
		return nil, fmt.Errorf("Select: %T: %w", data, ErrDataKind)
	}
	if axis > Rows {
		return nil, fmt.Errorf("Select: %s: %w", axis, ErrSelectionKind)
	}

	// Resolve names/positions along the target axis.
	var labels []string
	var size int
	if axis == Columns {
		labels, size = data.ColNames(), data.Cols()
	} else {
		labels, size = data.RowNames(), data.Rows()
	}
	pos, err := resolve(sel, labels, size, axis)
	if err != nil {
		return nil, err
	}

	// Construct per family×axis.
	switch d := data.(type) {
	case *matrix.Dense:
		return selectDense(d, pos, axis)
	case *frame.Frame:
		return selectFrame(d, pos, axis)
	default:
		// Unreachable: the family was validated above.
		return nil, ErrDataKind
	}
}

// resolve maps a Selection onto 0-based positions along an axis of the given
// labels and size. Output order follows the specifier; duplicate requests
// and duplicate axis labels both expand rather than deduplicate.
func resolve(sel Selection, labels []string, size int, axis Axis) ([]int, error) {
	switch s := sel.(type) {
	case ByName:
		if len(s) == 0 {
			return nil, fmt.Errorf("Select: empty selection: %w", ErrSelectionKind)
		}

		return resolveNames(s, labels, axis)
	case ByIndex:
		if len(s) == 0 {
			return nil, fmt.Errorf("Select: empty selection: %w", ErrSelectionKind)
		}

		return resolvePositions(s, size, axis)
	case nil:
		return nil, fmt.Errorf("Select: nil selection: %w", ErrSelectionKind)
	default:
		return nil, fmt.Errorf("Select: %T: %w", sel, ErrSelectionKind)
	}
}

// resolveNames expands names to positions.
// Stage 1 (Validate): collect names absent from the axis labels; any miss is
// fatal and reported via notFoundErr (distinct names only, request order).
// Stage 2 (Execute): expand each requested name, in specifier order, to all
// of its positions in axis order.
func resolveNames(names ByName, labels []string, axis Axis) ([]int, error) {
	// Build name → positions once; preserves axis order per name.
	index := make(map[string][]int, len(labels))
	var i int
	var l string
	for i, l = range labels {
		index[l] = append(index[l], i)
	}

	// Missing pass: report distinct offenders in request order.
	var missing []string
	seen := make(map[string]struct{})
	var name string
	for _, name = range names {
		if _, ok := index[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		missing = append(missing, name)
	}
	if missing != nil {
		return nil, notFoundErr(axis, missing)
	}

	// Expansion pass: specifier order outside, axis order inside.
	pos := make([]int, 0, len(names))
	for _, name = range names {
		pos = append(pos, index[name]...)
	}

	return pos, nil
}

// resolvePositions validates 1-based positions against the axis size and
// shifts them to 0-based. Offenders are reported in request order.
func resolvePositions(positions ByIndex, size int, axis Axis) ([]int, error) {
	var bad []string
	var p int
	for _, p = range positions {
		if p < 1 || p > size {
			bad = append(bad, strconv.Itoa(p))
		}
	}
	if bad != nil {
		return nil, notFoundErr(axis, bad)
	}

	pos := make([]int, 0, len(positions))
	for _, p = range positions {
		pos = append(pos, p-1)
	}

	return pos, nil
}

// selectDense constructs the matrix-like result for resolved positions.
func selectDense(d *matrix.Dense, pos []int, axis Axis) (Tabular, error) {
	if len(pos) >= 2 {
		// Native multi-element slice already preserves two-dimensionality.
		if axis == Columns {
			return d.SliceCols(pos)
		}

		return d.SliceRows(pos)
	}
	if axis == Columns {
		return singleDenseCol(d, pos[0])
	}

	return singleDenseRow(d, pos[0])
}

// singleDenseCol builds an r×1 matrix explicitly: the selected column's
// values, row names copied, the one column name carried.
func singleDenseCol(d *matrix.Dense, j int) (*matrix.Dense, error) {
	out, err := matrix.NewDense(d.Rows(), 1)
	if err != nil {
		return nil, err
	}
	var v float64
	var i int
	for i = 0; i < d.Rows(); i++ {
		if v, err = d.At(i, j); err != nil {
			return nil, err
		}
		if err = out.Set(i, 0, v); err != nil {
			return nil, err
		}
	}
	if err = out.SetRowNames(d.RowNames()); err != nil {
		return nil, err
	}
	if cols := d.ColNames(); cols != nil {
		if err = out.SetColNames([]string{cols[j]}); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// singleDenseRow builds a 1×c matrix explicitly: the selected row's values,
// column names copied, the one row name carried.
func singleDenseRow(d *matrix.Dense, i int) (*matrix.Dense, error) {
	out, err := matrix.NewDense(1, d.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	var j int
	for j = 0; j < d.Cols(); j++ {
		if v, err = d.At(i, j); err != nil {
			return nil, err
		}
		if err = out.Set(0, j, v); err != nil {
			return nil, err
		}
	}
	if err = out.SetColNames(d.ColNames()); err != nil {
		return nil, err
	}
	if rows := d.RowNames(); rows != nil {
		if err = out.SetRowNames([]string{rows[i]}); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// selectFrame constructs the table-like result for resolved positions.
func selectFrame(f *frame.Frame, pos []int, axis Axis) (Tabular, error) {
	if axis == Rows {
		if len(pos) >= 2 {
			return f.SelectRows(pos)
		}

		// Native single-row extraction already yields a 1×c frame.
		return f.Row(pos[0])
	}
	if len(pos) >= 2 {
		return f.SelectCols(pos)
	}

	return singleFrameCol(f, pos[0])
}

// singleFrameCol builds a single-column frame explicitly. The kind tag of
// the new column keeps textual columns textual: a text column must not come
// back categorical just because it was rebuilt; everything else falls back
// to default inference.
func singleFrameCol(f *frame.Frame, j int) (*frame.Frame, error) {
	col, err := f.Col(j)
	if err != nil {
		return nil, err
	}
	textual, err := f.Textual(j)
	if err != nil {
		return nil, err
	}
	eff, err := f.EffectiveKind(j)
	if err != nil {
		return nil, err
	}

	kind := KindForSingleton(textual, eff)

	return frame.New(
		[]series.Series{col},
		frame.WithRowNames(f.RowNames()),
		frame.WithKinds([]frame.Kind{kind}),
	)
}

// KindForSingleton decides the kind tag of a reconstructed single column:
// textual columns whose effective kind is text stay KindText; everything
// else gets KindDefault inference (textual storage then presents as
// categorical, numeric/bool as plain).
func KindForSingleton(textual bool, effective frame.Kind) frame.Kind {
	if textual && effective == frame.KindText {
		return frame.KindText
	}

	return frame.KindDefault
}
