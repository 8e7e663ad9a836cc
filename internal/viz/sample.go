package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/cosmic/internal/cosmo"
)

// Sample evaluates p at n redshifts evenly spaced on (0, zMax].
func Sample(p cosmo.Params, zMax float64, n int) ([]cosmo.Snapshot, error) {
	if zMax <= 0 {
		return nil, fmt.Errorf("zmax must be > 0, got %g", zMax)
	}
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", n)
	}

	c := cosmo.FromParams(p)
	out := make([]cosmo.Snapshot, n)
	for i := range out {
		c.SetRedshift(zMax * float64(i+1) / float64(n))
		out[i] = c.Snapshot()
	}
	return out, nil
}

// Quantity selects one column of a snapshot for plotting.
type Quantity struct {
	Name    string
	Caption string
	Value   func(cosmo.Snapshot) float64
}

var quantities = []Quantity{
	{"da", "angular diameter distance d_A (Mpc)", func(s cosmo.Snapshot) float64 { return s.DA }},
	{"dl", "luminosity distance d_L (Mpc)", func(s cosmo.Snapshot) float64 { return s.DL }},
	{"dc", "comoving radial distance d_C (Mpc)", func(s cosmo.Snapshot) float64 { return s.DC }},
	{"dm", "comoving transverse distance d_M (Mpc)", func(s cosmo.Snapshot) float64 { return s.DM }},
	{"vc", "comoving volume (Gpc^3)", func(s cosmo.Snapshot) float64 { return s.VC }},
	{"lookback", "lookback time (Gyr)", func(s cosmo.Snapshot) float64 { return s.LookbackGyr() }},
	{"age", "age at z (Gyr)", func(s cosmo.Snapshot) float64 { return s.AgeAtGyr() }},
	{"scale", "scale (kpc/arcsec)", func(s cosmo.Snapshot) float64 { return s.Scale }},
	{"rho", "critical density (g/cm^3)", func(s cosmo.Snapshot) float64 { return s.RhoCrit }},
}

func GetQuantity(name string) (Quantity, error) {
	name = strings.ToLower(name)
	for _, q := range quantities {
		if q.Name == name {
			return q, nil
		}
	}
	return Quantity{}, fmt.Errorf("unknown quantity: %s (available: %s)", name, strings.Join(QuantityNames(), ", "))
}

func QuantityNames() []string {
	names := make([]string, len(quantities))
	for i, q := range quantities {
		names[i] = q.Name
	}
	return names
}

// Column extracts one quantity from every sample.
func Column(samples []cosmo.Snapshot, q Quantity) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = q.Value(s)
	}
	return out
}
