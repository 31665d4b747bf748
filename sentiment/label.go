// SPDX-License-Identifier: MIT

package sentiment

// Label is the categorical sentiment of a crisp output.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Thresholds on the crisp output. Comparisons are strict with no epsilon:
// exactly ±0.5 is Neutral.
const (
	PositiveThreshold = 0.5
	NegativeThreshold = -0.5
)

// Labels lists every label in report order.
func Labels() []Label {
	return []Label{Positive, Negative, Neutral}
}

// LabelFor maps a crisp output to its label.
func LabelFor(v float64) Label {
	switch {
	case v > PositiveThreshold:
		return Positive
	case v < NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// String implements fmt.Stringer.
func (l Label) String() string { return string(l) }
