// Package person models the people on a pre-arrangement: the applicant
// purchasing it, their beneficiary contact, and the funeral home
// representative writing it up. It also owns the display formatting the
// printed forms expect for phone numbers, postal codes and SINs.
package person

import (
	"strings"
)

// Applicant is the purchaser. All fields are free text as entered; the
// formatting helpers normalize the contact fields as the user types.
type Applicant struct {
	FirstName  string
	MiddleName string
	LastName   string
	Birthdate  string
	Gender     string
	SIN        string
	Occupation string
	Phone      string
	Email      string
	Address    string
	City       string
	Province   string
	PostalCode string
}

// Beneficiary is the applicant's contact person. SameAddress mirrors the
// applicant's address onto the forms instead of the beneficiary's own.
type Beneficiary struct {
	Name         string
	Relationship string
	Phone        string
	Email        string
	SameAddress  bool
	Address      string
	City         string
	Province     string
	PostalCode   string
}

// Representative is the funeral home staff member completing the forms.
type Representative struct {
	FirstName  string
	MiddleName string
	LastName   string
	ID         string
	Phone      string
	Email      string
}

// FullName joins first, middle and last, skipping an empty middle name.
func (a Applicant) FullName() string {
	return joinName(a.FirstName, a.MiddleName, a.LastName)
}

// MiddleInitial is the first character of the middle name, or empty.
func (a Applicant) MiddleInitial() string {
	return initial(a.MiddleName)
}

// FullName joins first, middle and last, skipping an empty middle name.
func (r Representative) FullName() string {
	return joinName(r.FirstName, r.MiddleName, r.LastName)
}

// MiddleInitial is the first character of the middle name, or empty.
func (r Representative) MiddleInitial() string {
	return initial(r.MiddleName)
}

func joinName(first, middle, last string) string {
	if middle != "" {
		return strings.TrimSpace(first + " " + middle + " " + last)
	}

	return strings.TrimSpace(first + " " + last)
}

func initial(name string) string {
	if name == "" {
		return ""
	}

	return name[:1]
}

// FormatPhone normalizes to XXX-XXX-XXXX, formatting progressively so the
// field stays readable while partially typed. Non-digits are dropped; digits
// past the tenth are discarded.
func FormatPhone(phone string) string {
	digits := digitsOnly(phone)

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + "-" + digits[3:]
	default:
		if len(digits) > 10 {
			digits = digits[:10]
		}

		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	}
}

// FormatPostalCode normalizes to "XXX XXX" uppercase. Characters past the
// sixth are discarded.
func FormatPostalCode(code string) string {
	var b strings.Builder

	for _, r := range strings.ToUpper(code) {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}

	clean := b.String()
	if len(clean) <= 3 {
		return clean
	}

	if len(clean) > 6 {
		clean = clean[:6]
	}

	return clean[:3] + " " + clean[3:]
}

// FormatSIN normalizes to XXX-XXX-XXX, formatting progressively. Digits past
// the ninth are discarded.
func FormatSIN(sin string) string {
	digits := digitsOnly(sin)

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + "-" + digits[3:]
	default:
		if len(digits) > 9 {
			digits = digits[:9]
		}

		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	}
}

func digitsOnly(s string) string {
	var b strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
