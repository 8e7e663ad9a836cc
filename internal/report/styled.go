package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cosmic/internal/cosmo"
	"github.com/san-kum/cosmic/internal/viz"
)

type styledRow struct {
	label, value, unit string
}

// Styled renders the verbose report for a terminal.
func Styled(st viz.Styles, s cosmo.Snapshot) string {
	rows := []styledRow{
		{"age of the Universe at z", g(s.AgeAtGyr()), "Gyr"},
		{"lookback time to z", g(s.LookbackGyr()), "Gyr"},
		{"angular diameter distance d_A", g(s.DA), "Mpc"},
		{"luminosity distance d_L", g(s.DL), "Mpc"},
		{"comoving radial distance d_C", g(s.DC), "Mpc"},
	}
	if s.DM != s.DC {
		rows = append(rows, styledRow{"comoving transverse distance", g(s.DM), "Mpc"})
	}
	rows = append(rows,
		styledRow{"comoving volume out to z", g(s.VC), "Gpc³"},
		styledRow{"critical density at z", sci(s.RhoCrit), "g cm⁻³"},
		styledRow{`1"`, fixed(s.Scale), "kpc"},
	)
	if s.Scale != 0 {
		rows = append(rows, styledRow{"1 kpc", fixed(s.InverseScale()), `"`})
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r.label))
	}

	var b strings.Builder
	b.WriteString(st.Title.Render(styledParams(s)))
	b.WriteString("\n")
	b.WriteString(st.Title.Render(fmt.Sprintf("At z = %s", g(s.Z))))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(st.Label.Render(r.label + strings.Repeat(" ", width-len(r.label)) + " = "))
		b.WriteString(st.Value.Render(r.value))
		b.WriteString(" ")
		b.WriteString(st.Unit.Render(r.unit))
		b.WriteString("\n")
	}

	return st.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func styledParams(s cosmo.Snapshot) string {
	parts := []string{
		"H₀ = " + g(s.H0),
		"Ωm = " + g(s.OmegaM),
		"ΩΛ = " + g(s.OmegaL),
	}
	if showCurvature(s) {
		parts = append(parts, "Ωk = "+g(s.OmegaK))
	}
	return strings.Join(parts, ", ") + lipgloss.NewStyle().Faint(true).Render("  (q₀ = "+g(s.Q0)+")")
}
