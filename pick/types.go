// Package pick defines the selection sum type, the axis flag, and the
// Tabular interface shared by both container families.
package pick

import "fmt"

// Axis states which axis a selection addresses.
//
// Columns is the zero value: column selection is the common case, so a bare
// Select(data, sel, pick.Columns) reads the way the operation is usually
// meant.
type Axis uint8

const (
	// Columns mode: the selection addresses column names/positions.
	Columns Axis = iota

	// Rows mode: the selection addresses row names/positions.
	Rows
)

// String implements fmt.Stringer; used verbatim in NotFound messages.
func (a Axis) String() string {
	switch a {
	case Columns:
		return "columns"
	case Rows:
		return "rows"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// Selection is the specifier sum type: exactly ByName or ByIndex. The two
// never mix inside one selection; Parse enforces that for untyped input.
type Selection interface {
	isSelection()
}

// ByName selects by axis labels. Order is significant and duplicates are
// preserved; a name matching several positions expands to every match.
type ByName []string

func (ByName) isSelection() {}

// ByIndex selects by 1-based positions: position 1 is the first row or
// column, position Rows()/Cols() the last. Order is significant and
// duplicates are preserved.
type ByIndex []int

func (ByIndex) isSelection() {}

// Parse converts an untyped specifier into a Selection.
// Stage 1 (Validate): at least one item.
// Stage 2 (Classify): all strings ⇒ ByName; all signed integers ⇒ ByIndex.
// Anything else — mixed entries, floats, bools — fails with
// ErrSelectionKind.
// Complexity: O(len(items)).
func Parse(items ...any) (Selection, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("Parse: empty specifier: %w", ErrSelectionKind)
	}

	var names []string
	var positions []int
	for k, item := range items {
		switch v := item.(type) {
		case string:
			names = append(names, v)
		case int:
			positions = append(positions, v)
		case int8:
			positions = append(positions, int(v))
		case int16:
			positions = append(positions, int(v))
		case int32:
			positions = append(positions, int(v))
		case int64:
			positions = append(positions, int(v))
		default:
			return nil, fmt.Errorf("Parse: item %d has unsupported type %T: %w", k, item, ErrSelectionKind)
		}
	}
	if len(names) > 0 && len(positions) > 0 {
		return nil, fmt.Errorf("Parse: mixed name and position entries: %w", ErrSelectionKind)
	}
	if len(names) > 0 {
		return ByName(names), nil
	}

	return ByIndex(positions), nil
}

// Tabular is the common surface of the two container families. Both
// *matrix.Dense and *frame.Frame satisfy it; Select type-switches on the
// concrete family for construction.
type Tabular interface {
	Rows() int
	Cols() int
	RowNames() []string
	ColNames() []string
}
