package person_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kearneyfs/prearrange/internal/person"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"6045551234", "604-555-1234"},
		{"(604) 555-1234", "604-555-1234"},
		{"604", "604"},
		{"60455", "604-55"},
		{"60455512345678", "604-555-1234"},
		{"", ""},
		{"abc", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, person.FormatPhone(tt.in), "input %q", tt.in)
	}
}

func TestFormatPostalCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"v5y1e2", "V5Y 1E2"},
		{"V5Y 1E2", "V5Y 1E2"},
		{"v5y-1e2-extra", "V5Y 1E2"},
		{"v5y", "V5Y"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, person.FormatPostalCode(tt.in), "input %q", tt.in)
	}
}

func TestFormatSIN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"123456789", "123-456-789"},
		{"123-456-789", "123-456-789"},
		{"1234", "123-4"},
		{"12345678901", "123-456-789"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, person.FormatSIN(tt.in), "input %q", tt.in)
	}
}

func TestFullName(t *testing.T) {
	a := person.Applicant{FirstName: "Mary", MiddleName: "Anne", LastName: "Doyle"}
	assert.Equal(t, "Mary Anne Doyle", a.FullName())
	assert.Equal(t, "A", a.MiddleInitial())

	a.MiddleName = ""
	assert.Equal(t, "Mary Doyle", a.FullName())
	assert.Empty(t, a.MiddleInitial())
}

func TestParseBirthdate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"January 2, 1950", "1950-01-02"},
		{"Jan 2, 1950", "1950-01-02"},
		{"1950-01-02", "1950-01-02"},
		{"02/01/1950", "1950-01-02"},
	}

	for _, tt := range tests {
		got, err := person.ParseBirthdate(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got.Format("2006-01-02"), "input %q", tt.in)
	}

	_, err := person.ParseBirthdate("sometime in winter")
	assert.ErrorIs(t, err, person.ErrInvalidBirthdate)

	_, err = person.ParseBirthdate("")
	assert.ErrorIs(t, err, person.ErrInvalidBirthdate)
}

func TestAge(t *testing.T) {
	now := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	birth := time.Date(1960, time.August, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 66, person.Age(birth, now))

	birth = time.Date(1960, time.August, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 65, person.Age(birth, now))

	birth = time.Date(1960, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 66, person.Age(birth, now))
}

func TestFormatBirthdateShort(t *testing.T) {
	assert.Equal(t, "02/01/50", person.FormatBirthdateShort("January 2, 1950"))
	assert.Empty(t, person.FormatBirthdateShort("garbage"))
}
