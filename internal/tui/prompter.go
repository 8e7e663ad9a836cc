package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/san-kum/cosmic/internal/cosmo"
	"github.com/san-kum/cosmic/internal/report"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Prompter is the line-oriented interactive mode used when stdin is not a
// terminal. Prompts and reports go to Out, complaints to Err.
type Prompter struct {
	in     *bufio.Reader
	Out    io.Writer
	Err    io.Writer
	Format report.Format
}

func NewPrompter(in io.Reader, out, errOut io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), Out: out, Err: errOut}
}

func (p *Prompter) readLine() (string, bool) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (p *Prompter) promptFor(name string, def float64) (float64, bool) {
	for {
		fmt.Fprintf(p.Out, "%s (%g): ", name, def)
		text, ok := p.readLine()
		if !ok {
			return def, false
		}
		if text == "" {
			return def, true
		}
		if v, ok := parseNumber(text); ok {
			return v, true
		}
		fmt.Fprintf(p.Err, "  %s\n", msgNotNumber)
	}
}

// AskParams asks for H0, Omega_m and Omega_L in turn, offering def as the
// default for each. Out-of-range answers are rejected and asked again.
func (p *Prompter) AskParams(def cosmo.Params) (cosmo.Params, error) {
	vals := paramValues(def)
	for i, prm := range params {
		for {
			v, ok := p.promptFor(prm.name, vals[i])
			msg := prm.check(v)
			if msg == "" {
				vals[i] = v
				break
			}
			if !ok {
				return def, ErrInputClosed
			}
			fmt.Fprintf(p.Err, "  %s\n", msg)
		}
	}
	return paramsFrom(vals), nil
}

// Loop reads redshifts until input ends, printing a report for each.
func (p *Prompter) Loop(c *cosmo.Cosmology) error {
	for {
		fmt.Fprint(p.Out, "redshift (ctrl-D to quit): ")
		text, ok := p.readLine()
		if !ok {
			fmt.Fprintln(p.Out)
			return nil
		}

		for _, tok := range strings.Fields(text) {
			z, ok := parseNumber(tok)
			if !ok {
				fmt.Fprintln(p.Err, msgRedshiftNumeric)
				continue
			}
			if z < 0 {
				fmt.Fprintf(p.Err, "  %s\n", msgRedshiftRange)
				break
			}

			c.SetRedshift(z)
			fmt.Fprintln(p.Out)
			if err := report.Write(p.Out, p.Format, c.Snapshot()); err != nil {
				return err
			}
			fmt.Fprintln(p.Out)
		}
	}
}
