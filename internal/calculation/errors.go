package calculation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks a numeric input that is non-positive where
	// positivity is required, or negative where it must be non-negative.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrOutOfRange marks an ownership horizon outside the supported range.
	ErrOutOfRange = errors.New("out of range")

	// ErrSeriesMismatch is returned when two series of different lengths are compared.
	ErrSeriesMismatch = errors.New("series length mismatch")
)

// ParameterError describes a single rejected input field
type ParameterError struct {
	Kind       error  `json:"-"`
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Value      string `json:"value"`
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s must be %s (got %s)", e.Kind, e.Field, e.Constraint, e.Value)
}

// Unwrap exposes the error kind so errors.Is(err, ErrInvalidParameter) works
func (e *ParameterError) Unwrap() error { return e.Kind }

func invalidParameter(field, constraint string, value fmt.Stringer) *ParameterError {
	return &ParameterError{Kind: ErrInvalidParameter, Field: field, Constraint: constraint, Value: value.String()}
}
