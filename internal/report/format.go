// Package report renders cosmology snapshots as plain text, HTML, the
// tab-separated batch layout and CSV. It only reads [cosmo.Snapshot]
// values and never drives an engine.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/cosmic/internal/cosmo"
)

type Format int

const (
	Text Format = iota
	HTML
)

func (f Format) String() string {
	if f == HTML {
		return "html"
	}
	return "text"
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "text", "txt":
		return Text, nil
	case "html":
		return HTML, nil
	}
	return Text, fmt.Errorf("unknown format: %s", s)
}

// Write renders the verbose report for s in the given format.
func Write(w io.Writer, f Format, s cosmo.Snapshot) error {
	if f == HTML {
		return WriteHTML(w, s)
	}
	return Long(w, s)
}

// g formats like a default-precision stream: six significant digits,
// trailing zeros dropped.
func g(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func sci(v float64) string {
	return strconv.FormatFloat(v, 'e', 4, 64)
}

func showCurvature(s cosmo.Snapshot) bool {
	return math.Abs(s.OmegaK) >= cosmo.FlatTolerance
}

// errWriter keeps the first write error so report bodies read as a flat
// list of lines.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
