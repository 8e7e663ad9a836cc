package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/cosmic/internal/cosmo"
	"github.com/san-kum/cosmic/internal/report"
	"github.com/san-kum/cosmic/internal/viz"
)

type state int

const (
	stateParams state = iota
	stateRedshift
)

type model struct {
	state  state
	styles viz.Styles

	values  []float64
	field   int
	editBuf string
	errMsg  string

	cosmo   *cosmo.Cosmology
	snap    *cosmo.Snapshot
	history []float64

	width int
}

// NewInteractiveApp builds the bubbletea model. With ask set the user is
// first walked through H0, Omega_m and Omega_L; otherwise p is used as is.
func NewInteractiveApp(p cosmo.Params, ask bool, st viz.Styles) model {
	m := model{
		state:  stateParams,
		styles: st,
		values: paramValues(p),
		width:  80,
	}
	if !ask {
		m.enterRedshift()
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		return m, tea.Quit
	case "q":
		if m.editBuf == "" {
			return m, tea.Quit
		}
		return m, nil
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
		return m, nil
	case "esc":
		m.editBuf = ""
		m.errMsg = ""
		if m.state == stateRedshift {
			m.state = stateParams
			m.field = 0
		}
		return m, nil
	case "enter":
		if m.state == stateParams {
			m.submitParam()
		} else {
			m.submitRedshift()
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if strings.ContainsRune("-0123456789.", r) {
				m.editBuf += string(r)
			}
		}
	}
	return m, nil
}

func (m *model) submitParam() {
	text := m.editBuf
	m.editBuf = ""

	v := m.values[m.field]
	if text != "" {
		var ok bool
		if v, ok = parseNumber(text); !ok {
			m.errMsg = msgNotNumber
			return
		}
	}
	if msg := params[m.field].check(v); msg != "" {
		m.errMsg = msg
		return
	}

	m.errMsg = ""
	m.values[m.field] = v
	m.field++
	if m.field == len(params) {
		m.enterRedshift()
	}
}

func (m *model) enterRedshift() {
	m.state = stateRedshift
	m.field = 0
	m.snap = nil
	m.history = nil
	p := paramsFrom(m.values)
	if m.cosmo == nil {
		m.cosmo = cosmo.FromParams(p)
	} else {
		m.cosmo.SetCosmology(p.H0, p.OmegaM, p.OmegaL)
	}
}

func (m *model) submitRedshift() {
	text := m.editBuf
	m.editBuf = ""

	z, ok := parseNumber(text)
	switch {
	case !ok:
		m.errMsg = msgRedshiftNumeric
		return
	case z < 0:
		m.errMsg = msgRedshiftRange
		return
	}

	m.errMsg = ""
	m.cosmo.SetRedshift(z)
	snap := m.cosmo.Snapshot()
	m.snap = &snap
	m.history = append(m.history, snap.DC)
}

func (m model) View() string {
	var b strings.Builder
	st := m.styles

	b.WriteString(st.Title.Render("cosmic"))
	b.WriteString(st.Subtle.Render("  FLRW distances and times"))
	b.WriteString("\n\n")

	switch m.state {
	case stateParams:
		for i, prm := range params {
			switch {
			case i < m.field:
				b.WriteString(st.Label.Render(prm.name + ": "))
				b.WriteString(st.Value.Render(formatValue(m.values[i])))
			case i == m.field:
				b.WriteString(st.Prompt.Render(prm.name + " (" + formatValue(m.values[i]) + "): "))
				b.WriteString(m.editBuf + "█")
			default:
				b.WriteString(st.Subtle.Render(prm.name + " (" + formatValue(m.values[i]) + ")"))
			}
			b.WriteString("\n")
		}
	case stateRedshift:
		if m.snap != nil {
			b.WriteString(report.Styled(st, *m.snap))
			b.WriteString("\n")
			if len(m.history) > 1 {
				b.WriteString(st.Label.Render("d_C history "))
				b.WriteString(st.Sparkline(m.history, min(len(m.history), max(m.width-20, 10))))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
		b.WriteString(st.Prompt.Render("redshift: "))
		b.WriteString(m.editBuf + "█")
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(st.Error.Render("  " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "enter accept · backspace edit · q quit"
	if m.state == stateRedshift {
		help = "enter compute · esc parameters · q quit"
	}
	b.WriteString(st.Subtle.Render(help))
	return b.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// RunInteractive runs the full-screen interactive mode until the user quits.
func RunInteractive(p cosmo.Params, ask bool, st viz.Styles) error {
	_, err := tea.NewProgram(NewInteractiveApp(p, ask, st)).Run()
	return err
}
