package cosmo

// Params is the input triple of a cosmology.
type Params struct {
	H0     float64 `json:"h0" yaml:"h0"`
	OmegaM float64 `json:"omega_m" yaml:"omega_m"`
	OmegaL float64 `json:"omega_l" yaml:"omega_l"`
}

// Curvature classifies the sign of Omega_k.
type Curvature int

const (
	Flat Curvature = iota
	Open
	Closed
)

func (k Curvature) String() string {
	switch k {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "flat"
	}
}

func (c *Cosmology) Z() float64  { return c.z }
func (c *Cosmology) DA() float64 { return c.dA } // angular diameter distance, Mpc
func (c *Cosmology) DL() float64 { return c.dL } // luminosity distance, Mpc
func (c *Cosmology) DC() float64 { return c.dC } // comoving line-of-sight distance, Mpc
func (c *Cosmology) DM() float64 { return c.dM } // comoving transverse distance, Mpc
func (c *Cosmology) VC() float64 { return c.vC } // comoving volume, Gpc^3

// Lookback is the lookback time to z in seconds.
func (c *Cosmology) Lookback() float64 { return c.tL }

// Scale is the proper size in kpc subtended by one arcsecond at z.
func (c *Cosmology) Scale() float64 { return c.scale }

// InverseScale is arcseconds per kpc, or 0 when Scale is 0.
func (c *Cosmology) InverseScale() float64 {
	if c.scale == 0 {
		return 0
	}
	return 1 / c.scale
}

// RhoCrit is the critical density at z in g/cm^3.
func (c *Cosmology) RhoCrit() float64 { return c.rhoCrit }

// Age is the current age of the universe in seconds. It depends only on
// the parameters.
func (c *Cosmology) Age() float64 { return c.age }

// AgeAt is the age of the universe at the current redshift in seconds.
func (c *Cosmology) AgeAt() float64 { return c.age - c.tL }

func (c *Cosmology) H0() float64             { return c.h0 }
func (c *Cosmology) OmegaM() float64         { return c.omegaM }
func (c *Cosmology) OmegaL() float64         { return c.omegaL }
func (c *Cosmology) OmegaK() float64         { return c.omegaK }
func (c *Cosmology) Q0() float64             { return c.q0 }
func (c *Cosmology) HubbleDistance() float64 { return c.dH }

func (c *Cosmology) Params() Params {
	return Params{H0: c.h0, OmegaM: c.omegaM, OmegaL: c.omegaL}
}

func (c *Cosmology) IsFlat() bool { return c.omegaK == 0 }

func (c *Cosmology) Curvature() Curvature {
	switch {
	case c.omegaK > 0:
		return Open
	case c.omegaK < 0:
		return Closed
	default:
		return Flat
	}
}
