package report

import (
	"io"

	"github.com/san-kum/cosmic/internal/cosmo"
)

func ParamsHTML(w io.Writer, s cosmo.Snapshot, leader string) error {
	ew := &errWriter{w: w}
	writeParamsHTML(ew, s, leader)
	return ew.err
}

func writeParamsHTML(ew *errWriter, s cosmo.Snapshot, leader string) {
	ew.printf("%sH<sub>0</sub> = %s, &#x03A9;<sub>m</sub> = %s, &#x03A9;<sub>&#x039B;</sub> = %s",
		leader, g(s.H0), g(s.OmegaM), g(s.OmegaL))
	if showCurvature(s) {
		ew.printf(", &#x03A9;<sub>k</sub> = %s", g(s.OmegaK))
	}
	ew.printf("  (q<sub>0</sub> = %s)", g(s.Q0))
}

const rowFormat = "<tr><td>&nbsp;&nbsp;%s</td><td>&nbsp;=&nbsp;%s</td></tr>\n"

// WriteHTML writes the verbose report as a paragraph and a table.
func WriteHTML(w io.Writer, s cosmo.Snapshot) error {
	ew := &errWriter{w: w}
	ew.printf("<p>")
	writeParamsHTML(ew, s, "")
	ew.printf("<br />")
	ew.printf("At z = %s</p>\n", g(s.Z))
	ew.printf("<table cellpadding=\"0\" cellspacing=\"\">\n")
	ew.printf(rowFormat, "age of the Universe at z", g(s.AgeAtGyr())+" Gyr")
	ew.printf(rowFormat, "lookback time to z", g(s.LookbackGyr())+" Gyr")
	ew.printf(rowFormat, "angular diameter distance d<sub>A</sub>", g(s.DA)+" Mpc")
	ew.printf(rowFormat, "luminosity distance d<sub>L</sub>", g(s.DL)+" Mpc")
	ew.printf(rowFormat, "comoving radial distance d<sub>C</sub>", g(s.DC)+" Mpc")
	if s.DM != s.DC {
		ew.printf(rowFormat, "comoving transverse distance", g(s.DM)+" Mpc")
	}
	ew.printf(rowFormat, "comoving volume out to z", g(s.VC)+" Gpc<sup>3</sup>")
	ew.printf(rowFormat, "critical density at z", sci(s.RhoCrit)+" g cm<sup>-3</sup>")
	ew.printf(rowFormat, "1\"", fixed(s.Scale)+" kpc")
	if s.Scale != 0 {
		ew.printf(rowFormat, "1 kpc", fixed(s.InverseScale())+"\"")
	}
	ew.printf("</table>\n")
	return ew.err
}
