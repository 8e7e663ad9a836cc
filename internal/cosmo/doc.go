// Package cosmo computes distance and time measures in a
// Friedmann–Lemaître–Robertson–Walker cosmology with matter, vacuum energy
// and curvature.
//
// A [Cosmology] holds the parameters (H0, Omega_m, Omega_Lambda) and the
// quantities derived at one redshift:
//
//   - comoving radial and transverse distance
//   - angular diameter and luminosity distance
//   - comoving volume out to z
//   - lookback time and the age of the universe
//   - critical density and angular scale at z
//
// # Example
//
//	c := cosmo.New(71, 0.27, 0.73)
//	c.SetRedshift(1.0)
//	fmt.Println(c.DA(), c.DL())
//
// # Validation
//
// The engine accepts any finite input and never fails: non-physical
// parameters produce whatever the formulas yield, possibly NaN. Callers that
// want to reject such input use [Validate] before constructing.
//
// # Thread Safety
//
// Cosmology instances are NOT thread-safe. SetRedshift and SetCosmology
// rewrite every derived field in place. Use [Cosmology.Clone] to give each
// goroutine its own engine.
package cosmo
