package metadata

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearPattern        = regexp.MustCompile(`\d{3,4}`)
	leadingYearPattern = regexp.MustCompile(`^-?\d{4}`)
)

// ParseYear returns the first run of three or four digits in s as a year.
// Text such as "c. 1642" or "1606-07-15" yields 1642 and 1606.
func ParseYear(s string) *int {
	m := yearPattern.FindString(s)
	if m == "" {
		return nil
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &y
}

// ParseLeadingYear reads the signed four-digit year that starts an ISO-like
// timestamp, falling back to ParseYear for anything less regular.
func ParseLeadingYear(s string) *int {
	s = strings.TrimSpace(s)
	if m := leadingYearPattern.FindString(s); m != "" {
		if y, err := strconv.Atoi(m); err == nil {
			return &y
		}
	}
	return ParseYear(s)
}

// ParseNumber parses a decimal measurement value.
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToCentimeters converts value from the unit code "cm" or "mm" to
// centimeters. Any other unit is reported as unconvertible.
func ToCentimeters(value float64, unit string) (*float64, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "cm":
		return &value, true
	case "mm":
		cm := value / 10
		return &cm, true
	}
	return nil, false
}
