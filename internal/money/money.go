// Package money handles currency amounts for the arrangement forms.
//
// Field values travel as text: a non-empty value is a grouped decimal string
// with exactly two fraction digits ("1,250.00"); the empty string means
// zero/unset. Parsing is lenient because values come straight from form
// inputs.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a form field value into a decimal amount.
// Currency symbols, grouping commas and surrounding spaces are stripped.
// Empty or non-numeric input yields zero; ok reports whether the input was
// actually parseable (empty counts as parseable zero).
func Parse(s string) (decimal.Decimal, bool) {
	clean := strings.TrimSpace(s)
	clean = strings.ReplaceAll(clean, "$", "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return decimal.Zero, true
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

// ParseOrZero is Parse without the validity report. Garbage becomes zero.
func ParseOrZero(s string) decimal.Decimal {
	d, _ := Parse(s)
	return d
}

// Format renders an amount as a grouped decimal string with two fraction
// digits, e.g. 1250 -> "1,250.00".
func Format(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	b.WriteByte('.')
	b.WriteString(fracPart)

	return b.String()
}

// FormatOrEmpty renders an amount like Format, except that zero becomes the
// empty string. Used for optional fields where blank means unset.
func FormatOrEmpty(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}

	return Format(d)
}

// MustParse parses a literal amount and panics on failure. For static tables.
func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
