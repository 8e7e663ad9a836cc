package cosmo

import (
	"errors"
	"math"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks that p describes a physical cosmology: finite values,
// H0 > 0 and Omega_m >= 0. Omega_Lambda may take any sign. Every violation
// is reported.
func Validate(p Params) error {
	var errs []error

	check := func(name string, v float64, rule error, bad bool) {
		switch {
		case !finite(v):
			errs = append(errs, &ParamError{Name: name, Value: v, Wrapped: ErrNonFinite})
		case bad:
			errs = append(errs, &ParamError{Name: name, Value: v, Wrapped: rule})
		}
	}

	check("H0", p.H0, ErrHubbleNonPositive, p.H0 <= 0)
	check("Omega_m", p.OmegaM, ErrNegativeMatter, p.OmegaM < 0)
	check("Omega_L", p.OmegaL, nil, false)

	return errors.Join(errs...)
}

// ValidateRedshift rejects negative or non-finite redshifts.
func ValidateRedshift(z float64) error {
	if !finite(z) {
		return &ParamError{Name: "z", Value: z, Wrapped: ErrNonFinite}
	}
	if z < 0 {
		return &ParamError{Name: "z", Value: z, Wrapped: ErrNegativeRedshift}
	}
	return nil
}
