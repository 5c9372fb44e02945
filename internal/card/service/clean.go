package service

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	// separatorRegex matches runs of the separators users type between digit groups.
	separatorRegex = regexp.MustCompile(`[. ,:\-]+`)

	nonDigitRegex = regexp.MustCompile(`\D`)

	digitsRegex = regexp.MustCompile(`^\d+$`)
)

// CleanNumber removes periods, spaces, commas, colons and hyphens from text.
// Any other character, letters included, is kept.
func CleanNumber(text string) string {
	return separatorRegex.ReplaceAllString(text, "")
}

// CleanValue coerces v to its string form and cleans it like CleanNumber.
// Floating point values are rendered without exponent so that large card numbers
// decoded from JSON keep all their digits.
func CleanValue(v any) string {
	return CleanNumber(stringify(v))
}

// stringify renders v the way a checkout form would have submitted it.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// digitsOnly strips every character that is not an ASCII digit.
func digitsOnly(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// IsDigits reports whether s is a non-empty string of ASCII digits.
func IsDigits(s string) bool {
	return digitsRegex.MatchString(s)
}
