package cosmo

import "math"

// Physical constants.
const (
	SpeedOfLight  = 2.99792458e5  // km/s
	Gravitational = 6.67259e-8    // cm^3 g^-1 s^-2
	KmPerMpc      = 3.08567758e19 // km
	TropicalYear  = 3.1556926e7   // s
)

// Epsilon is the float64 machine epsilon.
const Epsilon = 0x1p-52

// FlatTolerance bounds the curvature residual 1 - Omega_m - Omega_L that is
// still treated as a flat universe.
const FlatTolerance = 1e-15

// kpc per arcsecond for each Mpc of angular diameter distance
const kpcPerArcsecPerMpc = math.Pi / 648

// SecondsToGyr converts a time in seconds to billions of tropical years.
func SecondsToGyr(s float64) float64 {
	return s / TropicalYear / 1e9
}
