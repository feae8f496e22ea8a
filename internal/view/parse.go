package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateOnly = "2006-01-02"

// ParseConstraint parses a user-entered filter value into a typed
// constraint. A value of the form from..to becomes a number or date range
// (either bound may be empty for an open range); anything else is a
// case-insensitive substring match.
func ParseConstraint(value string) (Constraint, error) {
	lo, hi, isRange := strings.Cut(value, "..")
	if !isRange {
		return TextConstraint{Value: value}, nil
	}
	if lo == "" && hi == "" {
		return nil, fmt.Errorf("empty range")
	}
	if c, ok := parseNumberRange(lo, hi); ok {
		return c, nil
	}
	if c, ok := parseDateRange(lo, hi); ok {
		return c, nil
	}
	return nil, fmt.Errorf("range bounds must both be numbers or dates (YYYY-MM-DD)")
}

// FormatConstraint renders a constraint back into the input syntax
// ParseConstraint accepts. Used to prefill filter editors.
func FormatConstraint(c Constraint) string {
	switch c := c.(type) {
	case TextConstraint:
		return c.Value
	case NumberConstraint:
		return formatRange(formatBound(c.From), formatBound(c.To))
	case DateConstraint:
		var lo, hi string
		if c.From != nil {
			lo = c.From.Format(dateOnly)
		}
		if c.To != nil {
			hi = c.To.Format(dateOnly)
		}
		return formatRange(lo, hi)
	default:
		return ""
	}
}

func formatBound(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatRange(lo, hi string) string {
	return lo + ".." + hi
}

func parseNumberRange(lo, hi string) (NumberConstraint, bool) {
	var c NumberConstraint
	if lo != "" {
		n, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return c, false
		}
		c.From = &n
	}
	if hi != "" {
		n, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return c, false
		}
		c.To = &n
	}
	return c, true
}

func parseDateRange(lo, hi string) (DateConstraint, bool) {
	var c DateConstraint
	if lo != "" {
		t, err := time.Parse(dateOnly, lo)
		if err != nil {
			return c, false
		}
		c.From = &t
	}
	if hi != "" {
		t, err := time.Parse(dateOnly, hi)
		if err != nil {
			return c, false
		}
		c.To = &t
	}
	return c, true
}
