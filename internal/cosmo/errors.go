package cosmo

import (
	"errors"
	"fmt"
)

// Validation errors. The engine never returns these; they are produced by
// Validate for callers that want to reject non-physical input.
var (
	// ErrHubbleNonPositive indicates H0 <= 0.
	ErrHubbleNonPositive = errors.New("cosmo: the Hubble constant must be > 0")

	// ErrNegativeMatter indicates Omega_m < 0.
	ErrNegativeMatter = errors.New("cosmo: Omega matter must be >= 0")

	// ErrNonFinite indicates a NaN or infinite parameter.
	ErrNonFinite = errors.New("cosmo: parameter is not a finite number")

	// ErrNegativeRedshift indicates z < 0.
	ErrNegativeRedshift = errors.New("cosmo: the redshift must be a number >= 0")
)

// ParamError wraps a validation error with the offending parameter.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s = %g: %s", e.Name, e.Value, e.Wrapped.Error())
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
