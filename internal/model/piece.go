package model

import "fmt"

// PieceRequirement is a single line of a cut list: a piece length (mm)
// required a number of times. Tag is an opaque caller-supplied identifier
// (e.g. "grill upright 20x20 SHS") carried through to the plan for reporting.
type PieceRequirement struct {
	Length   float64 `json:"length" yaml:"length"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Tag      string  `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// PlacedPiece is one cut piece inside a bar. Order within a bar is placement
// order, so diagrams render cuts left to right exactly as packed.
type PlacedPiece struct {
	Length float64 `json:"length"`
	Tag    string  `json:"tag,omitempty"`
}

// ValidationError reports a malformed requirement or stock list.
// Index is the position of the offending requirement in the input slice,
// or -1 when the error is not tied to a single requirement.
type ValidationError struct {
	Index int
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("requirement %d: invalid %s: %s", e.Index, e.Field, e.Msg)
}

// ValidateRequirements checks every requirement before any packing starts.
// Lengths must be strictly positive and quantities at least 1.
func ValidateRequirements(reqs []PieceRequirement) error {
	for i, r := range reqs {
		if r.Length <= 0 {
			return &ValidationError{Index: i, Field: "length", Msg: fmt.Sprintf("must be positive, got %g", r.Length)}
		}
		if r.Quantity < 1 {
			return &ValidationError{Index: i, Field: "quantity", Msg: fmt.Sprintf("must be at least 1, got %d", r.Quantity)}
		}
	}
	return nil
}

// TotalPieces returns the number of individual piece instances the
// requirements expand to.
func TotalPieces(reqs []PieceRequirement) int {
	total := 0
	for _, r := range reqs {
		total += r.Quantity
	}
	return total
}
