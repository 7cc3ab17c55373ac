// Package frame defines the per-column presentation Kind.
package frame

// Kind declares how a column's values are meant to be presented.
//
//   - KindDefault — let the storage type decide: textual columns behave as
//     categorical, numeric/bool columns as plain values. This mirrors the
//     classic strings-as-factors default.
//
//   - KindText — textual values stay plain text and are never promoted to
//     categorical levels. Shape-preserving selection relies on this tag to
//     keep a reconstructed single text column textual.
//
//   - KindCategorical — textual values are presented as levels (sorted
//     unique records, see Frame.Levels).
//
// The tag only affects presentation of textual storage; numeric and bool
// columns ignore it.
type Kind uint8

const (
	// KindDefault mode: infer presentation from the column's storage type.
	KindDefault Kind = iota

	// KindText mode: keep textual values as plain text.
	KindText

	// KindCategorical mode: present textual values as levels.
	KindCategorical
)

// String implements fmt.Stringer for diagnostics and tests.
func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindText:
		return "text"
	case KindCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}
