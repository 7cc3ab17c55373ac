package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhsego/tabular/matrix"
)

// newLabeled builds the canonical 4×5 fixture: rows A–D, columns a–e,
// cell (i,j) = 10*i + j for easy eyeballing.
func newLabeled(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(4, 5)
	require.NoError(t, err, "fixture allocation must succeed")
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			require.NoError(t, m.Set(i, j, float64(10*i+j)))
		}
	}
	require.NoError(t, m.SetRowNames([]string{"A", "B", "C", "D"}))
	require.NoError(t, m.SetColNames([]string{"a", "b", "c", "d", "e"}))

	return m
}

// TestNewDense_BadShape verifies that non-positive dimensions error with
// ErrBadShape instead of panicking.
func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "negative cols must error")
}

// TestFromRows_Shapes covers the empty and ragged cases plus a round-trip.
func TestFromRows_Shapes(t *testing.T) {
	_, err := matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "nil input must error")

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrBadShape, "ragged input must error")

	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

// TestDense_AtSetBounds checks that At/Set reject out-of-range indices.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "row past the end must error")
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "negative column must error")
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrOutOfRange)
}

// TestDense_Labels verifies label length validation, defensive copying,
// and clearing via nil.
func TestDense_Labels(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, m.SetRowNames([]string{"only"}), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, m.SetColNames([]string{"a", "b"}), matrix.ErrDimensionMismatch)
	assert.Nil(t, m.RowNames(), "unlabeled axis reports nil")

	names := []string{"r1", "r2"}
	require.NoError(t, m.SetRowNames(names))
	names[0] = "mutated"
	assert.Equal(t, []string{"r1", "r2"}, m.RowNames(), "labels must be copied, not retained")

	got := m.RowNames()
	got[1] = "mutated"
	assert.Equal(t, []string{"r1", "r2"}, m.RowNames(), "returned labels must be copies")

	require.NoError(t, m.SetRowNames(nil))
	assert.Nil(t, m.RowNames(), "nil clears the labels")
}

// TestDense_SliceCols covers order, duplicates, label carry and deep copy.
func TestDense_SliceCols(t *testing.T) {
	m := newLabeled(t)

	s, err := m.SliceCols([]int{3, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Rows(), "row count unchanged")
	assert.Equal(t, 3, s.Cols(), "one column per requested index")
	assert.Equal(t, []string{"d", "b", "b"}, s.ColNames(), "labels follow selection order, duplicates kept")
	assert.Equal(t, []string{"A", "B", "C", "D"}, s.RowNames(), "non-selected axis labels unchanged")

	v, err := s.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 23.0, v, "cell (C,d) must survive the slice")

	// Deep copy: writing into the slice must not touch the source.
	require.NoError(t, s.Set(0, 0, -1))
	v, err = m.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "source must be untouched")
}

// TestDense_SliceRows mirrors the column checks on the row axis.
func TestDense_SliceRows(t *testing.T) {
	m := newLabeled(t)

	s, err := m.SliceRows([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 5, s.Cols())
	assert.Equal(t, []string{"C", "A"}, s.RowNames())
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, s.ColNames())

	v, err := s.At(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 24.0, v, "first output row must be source row C")
}

// TestDense_SliceErrors checks the empty and out-of-range failure modes.
func TestDense_SliceErrors(t *testing.T) {
	m := newLabeled(t)

	_, err := m.SliceRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "empty index list must error")
	_, err = m.SliceCols([]int{})
	assert.ErrorIs(t, err, matrix.ErrBadShape, "empty index list must error")
	_, err = m.SliceRows([]int{4})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.SliceCols([]int{-1})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_CloneEqual verifies deep copy semantics and Equal sensitivity
// to shape, labels and cells.
func TestDense_CloneEqual(t *testing.T) {
	m := newLabeled(t)
	cp := m.Clone()
	assert.True(t, m.Equal(cp), "clone must equal its source")

	require.NoError(t, cp.Set(0, 0, 99))
	assert.False(t, m.Equal(cp), "Equal must see cell changes")
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "clone writes must not reach the source")

	cp = m.Clone()
	require.NoError(t, cp.SetRowNames([]string{"w", "x", "y", "z"}))
	assert.False(t, m.Equal(cp), "Equal must see label changes")

	other, err := matrix.NewDense(4, 5)
	require.NoError(t, err)
	assert.False(t, m.Equal(other), "label presence differs")
}

// TestDense_String smoke-tests the labeled rendering.
func TestDense_String(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1.5, 2}})
	require.NoError(t, err)
	require.NoError(t, m.SetColNames([]string{"a", "b"}))
	assert.Contains(t, m.String(), "a, b")
	assert.Contains(t, m.String(), "[1.5, 2]")
}
