package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/cosmic/internal/cosmo"
)

var csvHeader = []string{
	"Angular Diameter Distance (Mpc)",
	"Luminosity Distance (Mpc)",
	"Comoving Radial Distance (Mpc)",
	"Comoving Transverse Distance (Mpc)",
}

// CSVWriter writes dA, dL, dC and dM per redshift.
type CSVWriter struct {
	w      *csv.Writer
	header bool
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

func (c *CSVWriter) Write(s cosmo.Snapshot) error {
	if !c.header {
		if err := c.w.Write(csvHeader); err != nil {
			return err
		}
		c.header = true
	}
	row := []string{
		strconv.FormatFloat(s.DA, 'g', -1, 64),
		strconv.FormatFloat(s.DL, 'g', -1, 64),
		strconv.FormatFloat(s.DC, 'g', -1, 64),
		strconv.FormatFloat(s.DM, 'g', -1, 64),
	}
	return c.w.Write(row)
}

func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}
