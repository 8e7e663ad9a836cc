package batch

import (
	"io"

	"github.com/san-kum/cosmic/internal/report"
)

// WriteTSV writes the two header lines followed by one tab-separated row
// per redshift.
func WriteTSV(w io.Writer, res *Result) error {
	if err := report.ShortHeader(w, res.Base); err != nil {
		return err
	}
	for _, s := range res.Snapshots {
		if err := report.Short(w, s); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the dA, dL, dC, dM table.
func WriteCSV(w io.Writer, res *Result) error {
	cw := report.NewCSVWriter(w)
	for _, s := range res.Snapshots {
		if err := cw.Write(s); err != nil {
			return err
		}
	}
	return cw.Flush()
}
