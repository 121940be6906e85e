package services

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

func isEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// isStrongPassword requires at least 8 characters with at least one
// uppercase letter, one lowercase letter, one digit and one symbol.
func isStrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// stripNonDigits drops everything but digits, so "98-765 43210" and
// "9876543210" validate the same way.
func stripNonDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

func isPAN(s string) bool {
	return panPattern.MatchString(strings.ToUpper(s))
}
