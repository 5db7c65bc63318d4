package shape

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension matches any DimensionError via errors.Is.
var ErrInvalidDimension = errors.New("invalid dimension")

// ErrUnrecognizedShape is returned when a shape string matches none of the
// grammar rules.
var ErrUnrecognizedShape = errors.New("unrecognized shape string")

// ErrPrismBase2D is returned when a prism's base expression parses to a 3D
// shape instead of a 2D profile.
var ErrPrismBase2D = errors.New("prism base must be a 2D shape")

// DimensionError reports a dimension parameter that failed validation.
type DimensionError struct {
	Shape string
	Param string
	Value float64
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s must be positive, got %v", e.Shape, e.Param, e.Value)
}

func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidDimension
}

// dimErr is shorthand used by constructors and setters.
func dimErr(shape, param string, v float64) error {
	return &DimensionError{Shape: shape, Param: param, Value: v}
}

// requirePositive validates a list of (param, value) pairs in order and
// returns the first violation.
func requirePositive(shape string, pairs ...dimPair) error {
	for _, p := range pairs {
		if p.v <= 0 {
			return dimErr(shape, p.name, p.v)
		}
	}
	return nil
}

type dimPair struct {
	name string
	v    float64
}
