package providers

import (
	"strconv"
	"strings"
)

// ParseAmount parses a provider cell value: thousands separators, currency
// prefix, parenthesized negatives. The boolean is false for non-numeric
// values; callers exclude those rows rather than count them as zero.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

// AbsAmount is ParseAmount with the sign stripped.
func AbsAmount(s string) (float64, bool) {
	v, ok := ParseAmount(s)
	if v < 0 {
		v = -v
	}
	return v, ok
}

// IsTotalRow reports whether a row name denotes a subtotal.
func IsTotalRow(name string) bool {
	return strings.Contains(strings.ToLower(name), "total")
}
