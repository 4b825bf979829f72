// Package phone normalizes Indian phone numbers to the
// country-code-prefixed digit form used as the Contact key.
package phone

import (
	"regexp"
	"strings"
)

const CountryCode = "91"

var (
	nonDigits = regexp.MustCompile(`\D`)
	canonical = regexp.MustCompile(`^` + CountryCode + `\d{10}$`)
)

// Normalize strips non-digits, drops one leading zero, prepends the
// country code to a bare 10-digit local number, and accepts only the
// resulting country-code+10-digit shape.
func Normalize(raw string) (string, bool) {
	digits := nonDigits.ReplaceAllString(raw, "")
	digits = strings.TrimPrefix(digits, "0")
	if len(digits) == 10 {
		digits = CountryCode + digits
	}
	if !canonical.MatchString(digits) {
		return "", false
	}
	return digits, true
}

// SplitList breaks a contact-phone field on commas and semicolons,
// dropping empty parts.
func SplitList(field string) []string {
	parts := strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
