package viewmodel

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR renders a rupee amount with Indian digit grouping and no
// decimals, e.g. 1234567 -> "₹12,34,567".
func FormatINR(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	// Last group of three, then groups of two.
	var groups []string
	groups = append(groups, digits[len(digits)-3:])
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		groups = append(groups, rest[len(rest)-2:])
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		groups = append(groups, rest)
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return sign + "₹" + strings.Join(groups, ",")
}

// TruncateString truncates a string to the specified length with ellipsis.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// OrDash substitutes a dash for empty display values.
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// SanitizeForDisplay removes control characters and collapses whitespace.
func SanitizeForDisplay(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Initial returns the upper-cased first rune of a name, for cluster avatars.
func Initial(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return "?"
}
