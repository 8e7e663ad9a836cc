package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRedshift marks a batch line that is not a usable redshift:
	// non-numeric, zero or negative.
	ErrBadRedshift = errors.New("batch: non-numeric redshift")

	// ErrBadHeader marks a parameter file whose first lines do not hold
	// three parameters and a count.
	ErrBadHeader = errors.New("batch: malformed parameter header")

	// ErrEmpty indicates an input with no redshifts at all.
	ErrEmpty = errors.New("batch: no redshifts")
)

// LineError ties a read failure to its 1-based input line.
type LineError struct {
	Line    int
	Text    string
	Wrapped error
}

func (e *LineError) Error() string {
	if errors.Is(e.Wrapped, ErrBadRedshift) {
		return fmt.Sprintf("non-numeric redshift found in batch file on line %d: %q", e.Line, e.Text)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Wrapped)
}

func (e *LineError) Unwrap() error {
	return e.Wrapped
}
