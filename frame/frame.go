// Package frame: Frame, the concrete table-like container.
// Columns are gota series (typed storage, subsetting, record rendering); the
// frame adds ordered column bookkeeping, row names, and the presentation
// Kind consulted by shape-preserving selection. Errors live in errors.go and
// construction knobs in options.go per the package conventions.
package frame

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"
)

// Frame is an ordered collection of equally long typed columns with row
// names. Column names live on the series themselves; kinds is parallel to
// cols. Row names are always present (defaulting to "1".."n") and, like
// column names, need not be unique.
type Frame struct {
	cols     []series.Series // typed column storage, one series per column
	kinds    []Kind          // presentation kind, parallel to cols
	rowNames []string        // length == row count
}

// New creates a Frame from the given columns.
// Stage 1 (Validate): at least one column, no column in an error state,
// equal lengths, option payload lengths.
// Stage 2 (Prepare): deep-copy columns, default empty names to "V1".."Vn".
// Stage 3 (Finalize): attach kinds and row names.
// Complexity: O(cols*rows) time and memory for the copies.
func New(cols []series.Series, opts ...Option) (*Frame, error) {
	// Validate column set
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	n := cols[0].Len()
	var j int
	for j = range cols {
		if cols[j].Err != nil {
			return nil, fmt.Errorf("frame.New: column %d (%s): %v: %w", j, cols[j].Name, cols[j].Err, ErrColumn)
		}
		if cols[j].Len() != n {
			return nil, fmt.Errorf("frame.New: column %d (%s): got %d rows, want %d: %w",
				j, cols[j].Name, cols[j].Len(), n, ErrColumnLength)
		}
	}

	o := gatherOptions(opts)

	// Validate option payloads against the now-known dimensions
	if o.rowNames != nil && len(o.rowNames) != n {
		return nil, fmt.Errorf("frame.New: got %d row names for %d rows: %w", len(o.rowNames), n, ErrDimensionMismatch)
	}
	if o.kinds != nil {
		if len(o.kinds) != len(cols) {
			return nil, fmt.Errorf("frame.New: got %d kinds for %d columns: %w", len(o.kinds), len(cols), ErrDimensionMismatch)
		}
		for j = range o.kinds {
			if o.kinds[j] > KindCategorical {
				return nil, fmt.Errorf("frame.New: column %d: kind %d: %w", j, o.kinds[j], ErrBadKind)
			}
		}
	}

	// Copy storage; never retain caller slices or series backing
	f := &Frame{
		cols:  make([]series.Series, len(cols)),
		kinds: make([]Kind, len(cols)),
	}
	for j = range cols {
		f.cols[j] = cols[j].Copy()
		if f.cols[j].Name == "" {
			f.cols[j].Name = "V" + strconv.Itoa(j+1)
		}
	}
	if o.kinds != nil {
		copy(f.kinds, o.kinds)
	}
	if o.rowNames != nil {
		f.rowNames = append([]string(nil), o.rowNames...)
	} else {
		f.rowNames = make([]string, n)
		var i int
		for i = 0; i < n; i++ {
			f.rowNames[i] = strconv.Itoa(i + 1)
		}
	}

	return f, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (f *Frame) Rows() int {
	return len(f.rowNames)
}

// Cols returns the number of columns. Complexity: O(1).
func (f *Frame) Cols() int {
	return len(f.cols)
}

// ColNames returns the column names, in order. Complexity: O(c).
func (f *Frame) ColNames() []string {
	names := make([]string, len(f.cols))
	for j := range f.cols {
		names[j] = f.cols[j].Name
	}

	return names
}

// RowNames returns a copy of the row names. Complexity: O(r).
func (f *Frame) RowNames() []string {
	return append([]string(nil), f.rowNames...)
}

// Kind returns the presentation kind tag of column j.
// Returns ErrOutOfRange for an invalid index. Complexity: O(1).
func (f *Frame) Kind(j int) (Kind, error) {
	if j < 0 || j >= len(f.cols) {
		return KindDefault, fmt.Errorf("Frame.Kind(%d): %w", j, ErrOutOfRange)
	}

	return f.kinds[j], nil
}

// Col returns a copy of column j as a series.
// Returns ErrOutOfRange for an invalid index. Complexity: O(r).
func (f *Frame) Col(j int) (series.Series, error) {
	if j < 0 || j >= len(f.cols) {
		return series.Series{}, fmt.Errorf("Frame.Col(%d): %w", j, ErrOutOfRange)
	}

	return f.cols[j].Copy(), nil
}

// ColIndex returns every position whose column name equals name, in axis
// order. Duplicate column names yield multiple positions; a missing name
// yields an empty slice. Complexity: O(c).
func (f *Frame) ColIndex(name string) []int {
	var idx []int
	for j := range f.cols {
		if f.cols[j].Name == name {
			idx = append(idx, j)
		}
	}

	return idx
}

// Row extracts row i as a 1×c Frame: the native single-row extraction.
// The result keeps the row's name, every column name, and every kind tag —
// it is already two-dimensional, so selection forwards here unchanged.
// Returns ErrOutOfRange for an invalid index. Complexity: O(c).
func (f *Frame) Row(i int) (*Frame, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	if i < 0 || i >= len(f.rowNames) {
		return nil, fmt.Errorf("Frame.Row(%d): %w", i, ErrOutOfRange)
	}

	out := &Frame{
		cols:     make([]series.Series, len(f.cols)),
		kinds:    append([]Kind(nil), f.kinds...),
		rowNames: []string{f.rowNames[i]},
	}
	for j := range f.cols {
		out.cols[j] = f.cols[j].Subset([]int{i})
	}

	return out, nil
}

// SelectRows returns a new Frame containing the given rows, in the given
// order. Duplicate indices are legal and yield duplicate rows. Row names
// follow the selected rows; columns (names, kinds) are copied unchanged.
// Stage 1 (Validate): non-empty idx, every index in [0, r).
// Stage 2 (Execute): subset every column, map row names.
// Complexity: O(c*len(idx)) time and memory.
func (f *Frame) SelectRows(idx []int) (*Frame, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("Frame.SelectRows: empty index list: %w", ErrBadShape)
	}
	var i int
	for _, i = range idx {
		if i < 0 || i >= len(f.rowNames) {
			return nil, fmt.Errorf("Frame.SelectRows(%d): %w", i, ErrOutOfRange)
		}
	}

	out := &Frame{
		cols:     make([]series.Series, len(f.cols)),
		kinds:    append([]Kind(nil), f.kinds...),
		rowNames: make([]string, 0, len(idx)),
	}
	for j := range f.cols {
		out.cols[j] = f.cols[j].Subset(idx)
	}
	for _, i = range idx {
		out.rowNames = append(out.rowNames, f.rowNames[i])
	}

	return out, nil
}

// SelectCols returns a new Frame containing the given columns, in the given
// order. Duplicate indices are legal and yield duplicate columns. Column
// names and kinds follow the selected columns; row names are copied
// unchanged.
// Stage 1 (Validate): non-empty idx, every index in [0, c).
// Stage 2 (Execute): copy the selected columns and their kinds.
// Complexity: O(r*len(idx)) time and memory.
func (f *Frame) SelectCols(idx []int) (*Frame, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("Frame.SelectCols: empty index list: %w", ErrBadShape)
	}
	var j int
	for _, j = range idx {
		if j < 0 || j >= len(f.cols) {
			return nil, fmt.Errorf("Frame.SelectCols(%d): %w", j, ErrOutOfRange)
		}
	}

	out := &Frame{
		cols:     make([]series.Series, 0, len(idx)),
		kinds:    make([]Kind, 0, len(idx)),
		rowNames: append([]string(nil), f.rowNames...),
	}
	for _, j = range idx {
		out.cols = append(out.cols, f.cols[j].Copy())
		out.kinds = append(out.kinds, f.kinds[j])
	}

	return out, nil
}

// EffectiveKind resolves the presentation of column j: the explicit tag when
// set, otherwise categorical for textual storage and default (plain) for
// numeric/bool storage. Returns ErrOutOfRange for an invalid index.
// Complexity: O(1).
func (f *Frame) EffectiveKind(j int) (Kind, error) {
	if j < 0 || j >= len(f.cols) {
		return KindDefault, fmt.Errorf("Frame.EffectiveKind(%d): %w", j, ErrOutOfRange)
	}
	if f.kinds[j] != KindDefault {
		return f.kinds[j], nil
	}
	if f.cols[j].Type() == series.String {
		return KindCategorical, nil
	}

	return KindDefault, nil
}

// Textual reports whether column j is stored as text.
// Returns ErrOutOfRange for an invalid index. Complexity: O(1).
func (f *Frame) Textual(j int) (bool, error) {
	if j < 0 || j >= len(f.cols) {
		return false, fmt.Errorf("Frame.Textual(%d): %w", j, ErrOutOfRange)
	}

	return f.cols[j].Type() == series.String, nil
}

// Levels returns the sorted unique records of a categorical column.
// Returns ErrNotCategorical when the column's effective kind is not
// categorical, ErrOutOfRange for an invalid index.
// Complexity: O(r log r).
func (f *Frame) Levels(j int) ([]string, error) {
	k, err := f.EffectiveKind(j)
	if err != nil {
		return nil, err
	}
	if k != KindCategorical {
		return nil, fmt.Errorf("Frame.Levels(%d): kind %s: %w", j, k, ErrNotCategorical)
	}

	seen := make(map[string]struct{})
	var levels []string
	for _, rec := range f.cols[j].Records() {
		if _, ok := seen[rec]; ok {
			continue
		}
		seen[rec] = struct{}{}
		levels = append(levels, rec)
	}
	sort.Strings(levels)

	return levels, nil
}

// Clone returns a deep copy of the Frame. Complexity: O(r*c).
func (f *Frame) Clone() *Frame {
	cp := &Frame{
		cols:     make([]series.Series, len(f.cols)),
		kinds:    append([]Kind(nil), f.kinds...),
		rowNames: append([]string(nil), f.rowNames...),
	}
	for j := range f.cols {
		cp.cols[j] = f.cols[j].Copy()
	}

	return cp
}

// Equal reports whether two frames have identical shape, names, kinds,
// column types and records. Complexity: O(r*c).
func (f *Frame) Equal(o *Frame) bool {
	if f == nil || o == nil {
		return f == o
	}
	if len(f.cols) != len(o.cols) || len(f.rowNames) != len(o.rowNames) {
		return false
	}
	var i, j int
	for i = range f.rowNames {
		if f.rowNames[i] != o.rowNames[i] {
			return false
		}
	}
	for j = range f.cols {
		if f.kinds[j] != o.kinds[j] {
			return false
		}
		if f.cols[j].Name != o.cols[j].Name || f.cols[j].Type() != o.cols[j].Type() {
			return false
		}
		a, b := f.cols[j].Records(), o.cols[j].Records()
		for i = range a {
			if a[i] != b[i] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging: a header of column
// names followed by one line per row. Complexity: O(r*c).
func (f *Frame) String() string {
	var b strings.Builder
	b.WriteString("      [" + strings.Join(f.ColNames(), ", ") + "]\n")

	records := make([][]string, len(f.cols))
	for j := range f.cols {
		records[j] = f.cols[j].Records()
	}
	var i, j int
	for i = 0; i < len(f.rowNames); i++ {
		fmt.Fprintf(&b, "%-5s [", f.rowNames[i])
		for j = 0; j < len(f.cols); j++ {
			b.WriteString(records[j][i])
			if j < len(f.cols)-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
