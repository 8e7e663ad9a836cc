package tui

import (
	"strconv"
	"strings"
)

// IsNumeric reports whether s is made only of digits, at most one leading
// '-' and at most one '.'. The empty string is not numeric.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	if strings.Trim(s, "-0123456789.") != "" {
		return false
	}
	if strings.LastIndexByte(s, '-') > 0 {
		return false
	}
	return strings.Count(s, ".") <= 1
}

// parseNumber accepts what IsNumeric accepts. Bare "-" or "." read as 0.
func parseNumber(s string) (float64, bool) {
	if !IsNumeric(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true
	}
	return v, true
}
