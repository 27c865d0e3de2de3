package domain

import "strings"

// Label is a domain category used to select prompts and post-processing.
type Label string

// The closed set of domain labels. Order matters: the classifier checks them in this order.
const (
	LabelMath             Label = "math"
	LabelCoding           Label = "coding"
	LabelFuturePrediction Label = "future_prediction"
	LabelPlanning         Label = "planning"
	LabelCommonSense      Label = "common_sense"
)

// DefaultLabel is the fallback for any unrecognized or empty label.
const DefaultLabel = LabelCommonSense

// Labels returns every domain label in classification order.
func Labels() []Label {
	return []Label{
		LabelMath,
		LabelCoding,
		LabelFuturePrediction,
		LabelPlanning,
		LabelCommonSense,
	}
}

// String implements fmt.Stringer.
func (l Label) String() string {
	return string(l)
}

// Valid reports whether l is one of the canonical labels.
func (l Label) Valid() bool {
	_, ok := profiles[l]
	return ok
}

// NormalizeLabel maps any raw label onto the closed set.
// Matching is case-insensitive; anything else falls back to DefaultLabel.
func NormalizeLabel(raw string) Label {
	label := Label(strings.ToLower(raw))
	if label.Valid() {
		return label
	}
	return DefaultLabel
}
