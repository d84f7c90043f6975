// Package money normalizes spreadsheet currency text into decimals.
package money

import (
	"errors"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a token does not parse as an amount.
var ErrInvalidAmount = errors.New("invalid amount")

var currencyCodes = []string{"USD", "EUR", "GBP", "CAD", "AUD"}

// ParseAmount parses a locale-formatted currency token such as "$1,234.50",
// "(125.50)" or "-€ 1.234,56" into a non-negative magnitude and a sign flag.
// Fractional digits are preserved as given; nothing is rounded.
func ParseAmount(raw string) (decimal.Decimal, bool, error) {
	s := strings.TrimFunc(raw, isSpace)
	if s == "" {
		return decimal.Zero, false, ErrInvalidAmount
	}

	// symbols may sit outside the parentheses: "$(125.50)", "(125.50) USD"
	s = stripCurrency(s)

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = stripCurrency(s[1 : len(s)-1])
	}

	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasSuffix(s, "-"):
		negative = true
		s = s[:len(s)-1]
	}
	// codes may follow the sign: "-USD 12.00"
	s = stripCurrency(s)

	s, ok := normalizeSeparators(s)
	if !ok || s == "" {
		return decimal.Zero, false, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, ErrInvalidAmount
	}
	if d.IsZero() {
		negative = false
	}
	return d, negative, nil
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == ' '
}

func stripCurrency(s string) string {
	for _, code := range currencyCodes {
		if strings.HasPrefix(strings.ToUpper(s), code) {
			s = s[len(code):]
		} else if strings.HasSuffix(strings.ToUpper(s), code) {
			s = s[:len(s)-len(code)]
		}
	}
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Sc, r) || isSpace(r) || r == '\'' {
			return -1
		}
		return r
	}, s)
}

// normalizeSeparators rewrites s to plain "digits[.digits]".
func normalizeSeparators(s string) (string, bool) {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 {
			if frac := len(s) - lastComma - 1; frac == 1 || frac == 2 {
				s = strings.Replace(s, ",", ".", 1)
				break
			}
		}
		s = strings.ReplaceAll(s, ",", "")
	case lastDot >= 0 && strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	if strings.Count(s, ".") > 1 {
		return "", false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
		default:
			return "", false
		}
	}
	return s, digits > 0
}
