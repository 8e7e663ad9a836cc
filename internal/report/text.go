package report

import (
	"io"

	"github.com/san-kum/cosmic/internal/cosmo"
)

// Params writes the one-line parameter summary, prefixed by leader.
// Omega_k appears only for a curved cosmology.
func Params(w io.Writer, s cosmo.Snapshot, leader string) error {
	ew := &errWriter{w: w}
	writeParams(ew, s, leader)
	ew.printf("\n")
	return ew.err
}

func writeParams(ew *errWriter, s cosmo.Snapshot, leader string) {
	ew.printf("%sH_0 = %s, Omega_m = %s, Omega_L = %s", leader, g(s.H0), g(s.OmegaM), g(s.OmegaL))
	if showCurvature(s) {
		ew.printf(", Omega_k = %s", g(s.OmegaK))
	}
	ew.printf("  (q_0 = %s)", g(s.Q0))
}

// Long writes the verbose multi-line report.
func Long(w io.Writer, s cosmo.Snapshot) error {
	ew := &errWriter{w: w}
	writeParams(ew, s, "")
	ew.printf("\n")
	ew.printf("At z = %s\n", g(s.Z))
	ew.printf("  age of the Universe at z      = %s Gyr\n", g(s.AgeAtGyr()))
	ew.printf("  lookback time to z            = %s Gyr\n", g(s.LookbackGyr()))
	ew.printf("  angular diameter distance d_A = %s Mpc\n", g(s.DA))
	ew.printf("  luminosity distance d_L       = %s Mpc\n", g(s.DL))
	ew.printf("  comoving radial distance d_C  = %s Mpc\n", g(s.DC))
	if s.DM != s.DC {
		ew.printf("  comoving transverse distance  = %s Mpc\n", g(s.DM))
	}
	ew.printf("  comoving volume out to z      = %s Gpc**3\n", g(s.VC))
	ew.printf("  critical density at z         = %s g cm**-3\n", sci(s.RhoCrit))
	ew.printf("  1\" = %s kpc\n", fixed(s.Scale))
	if s.Scale != 0 {
		ew.printf("  1 kpc = %s\"\n", fixed(s.InverseScale()))
	}
	return ew.err
}

// ShortHeader writes the two comment lines that open a batch report.
func ShortHeader(w io.Writer, s cosmo.Snapshot) error {
	ew := &errWriter{w: w}
	writeParams(ew, s, "# ")
	ew.printf("\n")
	ew.printf("# z \td_A \td_L \td_C \tscale \t1/scale \ttL\n")
	return ew.err
}

// Short writes one tab-separated batch row: z, dA, dL, dC, scale, 1/scale
// and the lookback time in Gyr.
func Short(w io.Writer, s cosmo.Snapshot) error {
	ew := &errWriter{w: w}
	ew.printf("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		g(s.Z), g(s.DA), g(s.DL), g(s.DC), g(s.Scale), g(s.InverseScale()), g(s.LookbackGyr()))
	return ew.err
}
