package cosmo

import (
	"math"

	"github.com/san-kum/cosmic/internal/integrators"
)

// Default parameters, Planck 2013 + WMAP polarization (Planck Collaboration
// 2013, XVI, table 2).
const (
	DefaultH0     = 67.04
	DefaultOmegaM = 0.3183
	DefaultOmegaL = 0.6817
)

type Option func(*Cosmology)

// WithQuadrature replaces the Romberg integrator used for the distance,
// lookback and age integrals.
func WithQuadrature(q integrators.Quadrature) Option {
	return func(c *Cosmology) {
		if q != nil {
			c.quad = q
		}
	}
}

// Cosmology is a parameter set plus every quantity derived from it at the
// current redshift. Distances are in Mpc, times in seconds.
type Cosmology struct {
	h0, q0         float64
	omegaM, omegaL float64
	omegaK         float64
	dH             float64
	age            float64

	z       float64
	dC      float64
	dM      float64
	dA      float64
	dL      float64
	vC      float64 // Gpc^3
	tL      float64
	scale   float64 // kpc/arcsec
	rhoCrit float64 // g/cm^3

	quad integrators.Quadrature
}

func New(h0, omegaM, omegaL float64, opts ...Option) *Cosmology {
	c := &Cosmology{}
	for _, opt := range opts {
		opt(c)
	}
	if c.quad == nil {
		c.quad = integrators.NewRomberg()
	}
	c.init(h0, omegaM, omegaL)
	return c
}

func NewDefault(opts ...Option) *Cosmology {
	return New(DefaultH0, DefaultOmegaM, DefaultOmegaL, opts...)
}

func FromParams(p Params, opts ...Option) *Cosmology {
	return New(p.H0, p.OmegaM, p.OmegaL, opts...)
}

// init sets the parameters and everything derived from them alone, and
// zeroes the redshift state.
func (c *Cosmology) init(h0, omegaM, omegaL float64) {
	c.h0 = h0
	c.omegaM = omegaM
	c.omegaL = omegaL
	c.omegaK = 1 - omegaM - omegaL
	if math.Abs(c.omegaK) < FlatTolerance {
		c.omegaK = 0
	}
	c.q0 = 0.5*c.omegaM - c.omegaL
	c.dH = SpeedOfLight / c.h0
	c.age = c.quad.Integrate(c.ageIntegrand, 0, 1-Epsilon) / c.h0 * KmPerMpc

	c.z = 0
	c.dC, c.dM, c.dA, c.dL = 0, 0, 0, 0
	c.vC = 0
	c.tL = 0
	c.scale = 0
	c.rhoCrit = 0
}

// E is the dimensionless expansion rate H(z)/H0.
func (c *Cosmology) E(z float64) float64 {
	zp1 := 1 + z
	return math.Sqrt(c.omegaM*zp1*zp1*zp1 + c.omegaK*zp1*zp1 + c.omegaL)
}

func (c *Cosmology) inverseE(z float64) float64 {
	return 1 / c.E(z)
}

func (c *Cosmology) lookbackIntegrand(z float64) float64 {
	return 1 / (1 + z) / c.E(z)
}

// ageIntegrand is the lookback integrand after z = x/(1-x), which maps
// z in [0, inf) onto x in [0, 1).
func (c *Cosmology) ageIntegrand(x float64) float64 {
	z := x / (1 - x)
	return 1 / (1 + z) / c.E(z) / ((1 - x) * (1 - x))
}

// SetCosmology replaces the parameters. A redshift set earlier is kept and
// its derived quantities are recomputed under the new parameters.
func (c *Cosmology) SetCosmology(h0, omegaM, omegaL float64) {
	z := c.z
	c.init(h0, omegaM, omegaL)
	if z != 0 {
		c.SetRedshift(z)
	}
}

// SetRedshift recomputes every redshift-dependent quantity for z. Negative
// redshifts are not rejected here.
func (c *Cosmology) SetRedshift(z float64) {
	c.z = z
	c.setDistances()
}

func (c *Cosmology) setDistances() {
	zp1 := 1 + c.z
	c.rhoCrit = 3.0 / 8.0 / math.Pi * sqr(c.h0/KmPerMpc) / Gravitational *
		(c.omegaL + zp1*zp1*zp1*c.omegaM)

	if c.z == 0 {
		c.dC, c.dM, c.dA, c.dL = 0, 0, 0, 0
		c.vC = 0
		c.tL = 0
		c.scale = 0
		return
	}

	c.dC = c.dH * c.quad.Integrate(c.inverseE, 0, c.z)

	switch {
	case c.omegaK > 0:
		sk := math.Sqrt(c.omegaK)
		c.dM = c.dH / sk * math.Sinh(sk*c.dC/c.dH)
		x := c.dM / c.dH
		c.vC = 2 * math.Pi * cube(c.dH) / c.omegaK *
			(x*math.Sqrt(1+c.omegaK*x*x) - math.Asinh(sk*x)/sk) / 1e9
	case c.omegaK < 0:
		sk := math.Sqrt(-c.omegaK)
		c.dM = c.dH / sk * math.Sin(sk*c.dC/c.dH)
		x := c.dM / c.dH
		c.vC = 2 * math.Pi * cube(c.dH) / c.omegaK *
			(x*math.Sqrt(1+c.omegaK*x*x) - math.Asin(sk*x)/sk) / 1e9
	default:
		c.dM = c.dC
		c.vC = 4 * math.Pi * cube(c.dM) / 3 / 1e9
	}

	c.dA = c.dM / zp1
	c.dL = c.dM * zp1
	c.tL = c.quad.Integrate(c.lookbackIntegrand, 0, c.z) / c.h0 * KmPerMpc
	c.scale = c.dA * kpcPerArcsecPerMpc
}

// Clone returns an independent engine with the same parameters and
// redshift. A Romberg integrator is copied; any other quadrature is shared
// and must itself be safe for concurrent use.
func (c *Cosmology) Clone() *Cosmology {
	q := c.quad
	if r, ok := q.(*integrators.Romberg); ok {
		q = r.Clone()
	}
	n := New(c.h0, c.omegaM, c.omegaL, WithQuadrature(q))
	if c.z != 0 {
		n.SetRedshift(c.z)
	}
	return n
}

func sqr(a float64) float64  { return a * a }
func cube(a float64) float64 { return a * a * a }
