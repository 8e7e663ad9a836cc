package cosmo

// Snapshot is a copy of a cosmology's parameters and derived quantities at
// one redshift. It carries no behavior beyond unit conversions so that
// formatting and storage code never touch a live engine.
type Snapshot struct {
	H0     float64 `json:"h0"`
	OmegaM float64 `json:"omega_m"`
	OmegaL float64 `json:"omega_l"`
	OmegaK float64 `json:"omega_k"`
	Q0     float64 `json:"q0"`

	Z        float64 `json:"z"`
	DA       float64 `json:"d_a"`
	DL       float64 `json:"d_l"`
	DC       float64 `json:"d_c"`
	DM       float64 `json:"d_m"`
	VC       float64 `json:"v_c"`
	Lookback float64 `json:"lookback"`
	Age      float64 `json:"age"`
	Scale    float64 `json:"scale"`
	RhoCrit  float64 `json:"rho_crit"`
}

func (c *Cosmology) Snapshot() Snapshot {
	return Snapshot{
		H0:       c.h0,
		OmegaM:   c.omegaM,
		OmegaL:   c.omegaL,
		OmegaK:   c.omegaK,
		Q0:       c.q0,
		Z:        c.z,
		DA:       c.dA,
		DL:       c.dL,
		DC:       c.dC,
		DM:       c.dM,
		VC:       c.vC,
		Lookback: c.tL,
		Age:      c.age,
		Scale:    c.scale,
		RhoCrit:  c.rhoCrit,
	}
}

func (s Snapshot) Params() Params {
	return Params{H0: s.H0, OmegaM: s.OmegaM, OmegaL: s.OmegaL}
}

// InverseScale is arcseconds per kpc, or 0 when Scale is 0.
func (s Snapshot) InverseScale() float64 {
	if s.Scale == 0 {
		return 0
	}
	return 1 / s.Scale
}

func (s Snapshot) LookbackGyr() float64 { return SecondsToGyr(s.Lookback) }
func (s Snapshot) AgeGyr() float64      { return SecondsToGyr(s.Age) }
func (s Snapshot) AgeAtGyr() float64    { return SecondsToGyr(s.Age - s.Lookback) }
