package pick_test

import (
	"fmt"

	"github.com/go-gota/gota/series"

	"github.com/lhsego/tabular/frame"
	"github.com/lhsego/tabular/matrix"
	"github.com/lhsego/tabular/pick"
)

// ExampleSelect demonstrates the singleton case the package exists for:
// one requested column of a 4×5 matrix comes back as a 4×1 matrix with its
// labels intact, not as a flat vector of length 4.
func ExampleSelect() {
	m, err := matrix.FromRows([][]float64{
		{0, 1, 2, 3, 4},
		{10, 11, 12, 13, 14},
		{20, 21, 22, 23, 24},
		{30, 31, 32, 33, 34},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = m.SetRowNames([]string{"A", "B", "C", "D"})
	_ = m.SetColNames([]string{"a", "b", "c", "d", "e"})

	got, err := pick.Select(m, pick.ByIndex{2}, pick.Columns)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("shape=%dx%d cols=%v\n", got.Rows(), got.Cols(), got.ColNames())
	// Output: shape=4x1 cols=[b]
}

// ExampleSelect_rows selects a single row of a table by name; the result is
// a 1×2 frame, produced by the native row extraction.
func ExampleSelect_rows() {
	f, err := frame.New(
		[]series.Series{
			series.New([]string{"red", "green", "blue"}, series.String, "color"),
			series.New([]int{10, 20, 30}, series.Int, "count"),
		},
		frame.WithRowNames([]string{"A", "B", "C"}),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	got, err := pick.Select(f, pick.ByName{"B"}, pick.Rows)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("shape=%dx%d rows=%v\n", got.Rows(), got.Cols(), got.RowNames())
	// Output: shape=1x2 rows=[B]
}

// ExampleParse shows the untyped ingress: all-string input becomes a name
// selection, mixed input is rejected outright.
func ExampleParse() {
	sel, err := pick.Parse("d", "c")
	fmt.Println(sel, err)

	_, err = pick.Parse("a", 1)
	fmt.Println(err != nil)
	// Output:
	// [d c] <nil>
	// true
}
