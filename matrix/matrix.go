// Package matrix: Dense, the concrete matrix-like container.
// Dense is a row-major float64 matrix storing elements in a flat slice for
// cache friendliness, extended with optional row/column names so that derived
// matrices keep their labeling. Errors live in errors.go per the package
// conventions.
package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values with optional axis labels.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// rowNames/colNames are nil for an unlabeled axis; when present their length
// equals the axis size. Labels are not required to be unique.
type Dense struct {
	r, c     int       // number of rows and columns
	data     []float64 // flat backing storage, length == r*c
	rowNames []string  // nil or length r
	colNames []string  // nil or length c
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	// Allocate flat slice and return initialized Dense
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows creates a Dense from a slice of equally sized rows.
// Stage 1 (Validate): non-empty input, rectangular shape.
// Stage 2 (Execute): copy every row into flat storage.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	c := len(rows[0])

	// Copy row by row, rejecting ragged input
	data := make([]float64, 0, len(rows)*c)
	var i int
	for i = range rows {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrBadShape)
		}
		data = append(data, rows[i]...)
	}

	return &Dense{r: len(rows), c: c, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange when either index is invalid.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange when either index is invalid.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// SetRowNames attaches row labels; len(names) must equal Rows().
// A nil slice clears the labels. The slice is copied, never retained.
// Complexity: O(r).
func (m *Dense) SetRowNames(names []string) error {
	if names == nil {
		m.rowNames = nil

		return nil
	}
	if len(names) != m.r {
		return fmt.Errorf("Dense.SetRowNames: got %d names for %d rows: %w", len(names), m.r, ErrDimensionMismatch)
	}
	m.rowNames = append([]string(nil), names...)

	return nil
}

// SetColNames attaches column labels; len(names) must equal Cols().
// A nil slice clears the labels. The slice is copied, never retained.
// Complexity: O(c).
func (m *Dense) SetColNames(names []string) error {
	if names == nil {
		m.colNames = nil

		return nil
	}
	if len(names) != m.c {
		return fmt.Errorf("Dense.SetColNames: got %d names for %d columns: %w", len(names), m.c, ErrDimensionMismatch)
	}
	m.colNames = append([]string(nil), names...)

	return nil
}

// RowNames returns a copy of the row labels, or nil when the axis is
// unlabeled. Complexity: O(r).
func (m *Dense) RowNames() []string {
	if m.rowNames == nil {
		return nil
	}

	return append([]string(nil), m.rowNames...)
}

// ColNames returns a copy of the column labels, or nil when the axis is
// unlabeled. Complexity: O(c).
func (m *Dense) ColNames() []string {
	if m.colNames == nil {
		return nil
	}

	return append([]string(nil), m.colNames...)
}

// SliceRows returns a new Dense containing the given rows, in the given
// order. Duplicate indices are legal and yield duplicate rows. Row labels
// follow the selected rows; column labels are copied unchanged.
// Stage 1 (Validate): non-empty idx, every index in [0, r).
// Stage 2 (Execute): copy each selected row into fresh storage.
// Complexity: O(len(idx)*c) time and memory.
func (m *Dense) SliceRows(idx []int) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("Dense.SliceRows: empty index list: %w", ErrBadShape)
	}
	var i int
	for _, i = range idx {
		if i < 0 || i >= m.r {
			return nil, denseErrorf("SliceRows", i, 0, ErrOutOfRange)
		}
	}

	// Copy selected rows and map labels along the sliced axis
	out := &Dense{r: len(idx), c: m.c, data: make([]float64, 0, len(idx)*m.c)}
	var names []string
	if m.rowNames != nil {
		names = make([]string, 0, len(idx))
	}
	for _, i = range idx {
		out.data = append(out.data, m.data[i*m.c:(i+1)*m.c]...)
		if names != nil {
			names = append(names, m.rowNames[i])
		}
	}
	out.rowNames = names
	out.colNames = m.ColNames()

	return out, nil
}

// SliceCols returns a new Dense containing the given columns, in the given
// order. Duplicate indices are legal and yield duplicate columns. Column
// labels follow the selected columns; row labels are copied unchanged.
// Stage 1 (Validate): non-empty idx, every index in [0, c).
// Stage 2 (Execute): gather the selected cell of every row, per column order.
// Complexity: O(r*len(idx)) time and memory.
func (m *Dense) SliceCols(idx []int) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("Dense.SliceCols: empty index list: %w", ErrBadShape)
	}
	var j int
	for _, j = range idx {
		if j < 0 || j >= m.c {
			return nil, denseErrorf("SliceCols", 0, j, ErrOutOfRange)
		}
	}

	// Gather row-major: for each row, emit the requested columns in order
	out := &Dense{r: m.r, c: len(idx), data: make([]float64, 0, m.r*len(idx))}
	var i int
	for i = 0; i < m.r; i++ {
		for _, j = range idx {
			out.data = append(out.data, m.data[i*m.c+j])
		}
	}
	var names []string
	if m.colNames != nil {
		names = make([]string, 0, len(idx))
		for _, j = range idx {
			names = append(names, m.colNames[j])
		}
	}
	out.colNames = names
	out.rowNames = m.RowNames()

	return out, nil
}

// Clone returns a deep copy of the Dense matrix, labels included.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)
	cp.rowNames = m.RowNames()
	cp.colNames = m.ColNames()

	return cp
}

// Equal reports whether two matrices have identical shape, labels and cells.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	if !equalLabels(m.rowNames, o.rowNames) || !equalLabels(m.colNames, o.colNames) {
		return false
	}
	var k int
	for k = range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// equalLabels compares two label slices, treating nil as distinct from empty.
func equalLabels(a, b []string) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Labeled axes are rendered alongside their cells.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	if m.colNames != nil {
		b.WriteString("      [" + strings.Join(m.colNames, ", ") + "]\n")
	}
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		if m.rowNames != nil {
			fmt.Fprintf(&b, "%-5s ", m.rowNames[i])
		}
		b.WriteString("[")
		for j = 0; j < m.c; j++ { // iterate over columns
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
