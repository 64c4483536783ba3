package core

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every InvalidParameterError.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrMalformedGrid reports persisted grid data that cannot be decoded.
var ErrMalformedGrid = errors.New("malformed grid data")

// InvalidParameterError describes a rejected argument such as a density
// outside [0,1] or a non-positive grid dimension.
type InvalidParameterError struct {
	Param  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

func invalidSize(w, h int) error {
	return &InvalidParameterError{
		Param:  "size",
		Value:  fmt.Sprintf("%dx%d", w, h),
		Reason: "width and height must be positive",
	}
}

// ValidateDensity rejects densities outside the closed interval [0,1].
func ValidateDensity(density float64) error {
	if density >= 0 && density <= 1 {
		return nil
	}
	return &InvalidParameterError{Param: "density", Value: density, Reason: "must be within [0,1]"}
}
