package person

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidBirthdate is returned when a birthdate matches none of the
// accepted layouts.
var ErrInvalidBirthdate = errors.New("unrecognized birthdate")

// Birthdates arrive as free text; these are the layouts seen in practice.
var birthdateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
}

// ParseBirthdate parses a free-text birthdate against the accepted layouts.
func ParseBirthdate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidBirthdate
	}

	for _, layout := range birthdateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidBirthdate
}

// Age returns the whole years between the birthdate and now: the calendar
// year difference, less one if this year's birthday has not yet passed.
func Age(birthdate, now time.Time) int {
	years := now.Year() - birthdate.Year()

	anniversary := birthdate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}

	return years
}

// FormatBirthdateShort renders dd/mm/yy for the form date boxes. Unparseable
// input comes back empty.
func FormatBirthdateShort(s string) string {
	t, err := ParseBirthdate(s)
	if err != nil {
		return ""
	}

	return t.Format("02/01/06")
}
