package tui

import (
	"errors"

	"github.com/san-kum/cosmic/internal/cosmo"
)

const (
	msgHubble          = "The Hubble constant must be > 0"
	msgMatter          = "Omega matter must be >= 0"
	msgNotNumber       = "Not a valid number"
	msgRedshiftNumeric = "Redshift must be numeric"
	msgRedshiftRange   = "The redshift must be a number > 0."
)

// ErrInputClosed is returned when input ends before a valid parameter set
// has been entered.
var ErrInputClosed = errors.New("tui: input closed")

type param struct {
	name  string
	check func(float64) string
}

var params = []param{
	{name: "Hubble constant", check: func(v float64) string {
		if v <= 0 {
			return msgHubble
		}
		return ""
	}},
	{name: "Omega matter", check: func(v float64) string {
		if v < 0 {
			return msgMatter
		}
		return ""
	}},
	{name: "Omega lambda", check: func(float64) string { return "" }},
}

func paramValues(p cosmo.Params) []float64 {
	return []float64{p.H0, p.OmegaM, p.OmegaL}
}

func paramsFrom(v []float64) cosmo.Params {
	return cosmo.Params{H0: v[0], OmegaM: v[1], OmegaL: v[2]}
}
