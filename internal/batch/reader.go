package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/cosmic/internal/cosmo"
)

// Input is a parsed batch file. Params is non-nil when the file carries its
// own cosmology.
type Input struct {
	Params    *cosmo.Params
	Redshifts []float64
}

type line struct {
	num    int
	fields []string
}

func readLines(r io.Reader) ([]line, error) {
	var lines []line
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		lines = append(lines, line{num: n, fields: fields})
	}
	return lines, sc.Err()
}

func parseRedshift(num int, text string) (float64, error) {
	z, err := strconv.ParseFloat(text, 64)
	if err != nil || z == 0 || cosmo.ValidateRedshift(z) != nil {
		return 0, &LineError{Line: num, Text: text, Wrapped: ErrBadRedshift}
	}
	return z, nil
}

// ReadRedshifts reads one or more redshifts per line. Blank lines and lines
// starting with '#' are skipped. The first value that does not parse, is
// zero or is negative stops the read with a *LineError.
func ReadRedshifts(r io.Reader) ([]float64, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	var zs []float64
	for _, l := range lines {
		for _, f := range l.fields {
			z, err := parseRedshift(l.num, f)
			if err != nil {
				return nil, err
			}
			zs = append(zs, z)
		}
	}
	if len(zs) == 0 {
		return nil, ErrEmpty
	}
	return zs, nil
}

// ReadParamFile reads the distance-table layout: H0, Omega_m and Omega_L on
// the first line, the redshift count on the second, then the redshifts.
func ReadParamFile(r io.Reader) (*Input, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 || len(lines[0].fields) != 3 || len(lines[1].fields) != 1 {
		return nil, ErrBadHeader
	}

	var vals [3]float64
	for i, f := range lines[0].fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, &LineError{Line: lines[0].num, Text: f, Wrapped: ErrBadHeader}
		}
		vals[i] = v
	}
	p := cosmo.Params{H0: vals[0], OmegaM: vals[1], OmegaL: vals[2]}
	if err := cosmo.Validate(p); err != nil {
		return nil, fmt.Errorf("line %d: %w", lines[0].num, err)
	}

	count, err := strconv.Atoi(lines[1].fields[0])
	if err != nil || count < 0 {
		return nil, &LineError{Line: lines[1].num, Text: lines[1].fields[0], Wrapped: ErrBadHeader}
	}

	zs := make([]float64, 0, count)
	for _, l := range lines[2:] {
		for _, f := range l.fields {
			if len(zs) == count {
				break
			}
			z, err := parseRedshift(l.num, f)
			if err != nil {
				return nil, err
			}
			zs = append(zs, z)
		}
	}
	if len(zs) < count {
		return nil, fmt.Errorf("expected %d redshifts, found %d: %w", count, len(zs), ErrBadHeader)
	}
	if count == 0 {
		return nil, ErrEmpty
	}

	return &Input{Params: &p, Redshifts: zs}, nil
}

// Layout selects how ReadFile interprets a batch file.
type Layout int

const (
	// LayoutList is a plain whitespace separated redshift list.
	LayoutList Layout = iota
	// LayoutParams is the ReadParamFile layout with its own cosmology.
	LayoutParams
)

// ReadFile opens path and reads it in the given layout. A plain list is
// never reinterpreted as a parameter header.
func ReadFile(path string, layout Layout) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening batch file: %w", err)
	}
	defer f.Close()

	if layout == LayoutParams {
		return ReadParamFile(f)
	}

	zs, err := ReadRedshifts(f)
	if err != nil {
		return nil, err
	}
	return &Input{Redshifts: zs}, nil
}
