package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kearneyfs/prearrange/internal/money"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "Plain", input: "525.00", want: "525", wantOK: true},
		{name: "Grouped", input: "1,250.00", want: "1250", wantOK: true},
		{name: "CurrencySymbol", input: "$2,755.00", want: "2755", wantOK: true},
		{name: "Whitespace", input: "  365.00 ", want: "365", wantOK: true},
		{name: "Empty", input: "", want: "0", wantOK: true},
		{name: "Garbage", input: "abc", want: "0", wantOK: false},
		{name: "MixedGarbage", input: "12x4", want: "0", wantOK: false},
		{name: "Negative", input: "-400.00", want: "-400", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := money.Parse(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Small", input: "0", want: "0.00"},
		{name: "Hundreds", input: "525", want: "525.00"},
		{name: "Thousands", input: "1250", want: "1,250.00"},
		{name: "Millions", input: "1234567.89", want: "1,234,567.89"},
		{name: "ExactGroup", input: "100000", want: "100,000.00"},
		{name: "Negative", input: "-1250.5", want: "-1,250.50"},
		{name: "RoundsToTwo", input: "19.955", want: "19.96"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.Format(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatOrEmpty(t *testing.T) {
	assert.Equal(t, "", money.FormatOrEmpty(decimal.Zero))
	assert.Equal(t, "35.00", money.FormatOrEmpty(decimal.NewFromInt(35)))
}

func TestRoundTrip(t *testing.T) {
	// Formatting then re-parsing must be stable: recomputation with
	// unchanged inputs reproduces identical outputs.
	d := decimal.RequireFromString("12345.67")
	formatted := money.Format(d)
	reparsed, ok := money.Parse(formatted)

	assert.True(t, ok)
	assert.True(t, d.Equal(reparsed))
	assert.Equal(t, formatted, money.Format(reparsed))
}
