package financing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kearneyfs/prearrange/internal/financing"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMonthlyPayments(t *testing.T) {
	quote, err := financing.MonthlyPayments(d("1000"), decimal.Zero, 40)
	require.NoError(t, err)

	assert.True(t, quote.Principal.Equal(d("1000")))

	monthly, ok := quote.Monthly(financing.Term5)
	require.True(t, ok)
	assert.Equal(t, "19.95", monthly.StringFixed(2))

	monthly, ok = quote.Monthly(financing.Term20)
	require.True(t, ok)
	assert.Equal(t, "7.35", monthly.StringFixed(2))
}

func TestMonthlyPayments_PrincipalRoundsUp(t *testing.T) {
	quote, err := financing.MonthlyPayments(d("5471.65"), d("2000"), 40)
	require.NoError(t, err)

	assert.True(t, quote.Principal.Equal(d("3472")))
}

func TestMonthlyPayments_ThresholdAges(t *testing.T) {
	tests := []struct {
		name      string
		age       int
		term      financing.Term
		want      string
		available bool
	}{
		{name: "At65TwentyYearOffered", age: 65, term: financing.Term20, want: "9.98", available: true},
		{name: "At66TwentyYearGone", age: 66, term: financing.Term20, available: false},
		{name: "At66ThreeYearSameRateAs65", age: 66, term: financing.Term3, want: "33.60", available: true},
		{name: "At70FifteenYearOffered", age: 70, term: financing.Term15, want: "12.60", available: true},
		{name: "At71FifteenYearGone", age: 71, term: financing.Term15, available: false},
		{name: "At76TenYearGone", age: 76, term: financing.Term10, available: false},
		{name: "At80FiveYearOffered", age: 80, term: financing.Term5, want: "26.25", available: true},
		{name: "At82OnlyThreeYear", age: 82, term: financing.Term3, want: "37.80", available: true},
		{name: "At82FiveYearGone", age: 82, term: financing.Term5, available: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := financing.MonthlyPayments(d("1000"), decimal.Zero, tt.age)
			require.NoError(t, err)

			monthly, ok := quote.Monthly(tt.term)
			assert.Equal(t, tt.available, ok)

			if tt.available {
				assert.Equal(t, tt.want, monthly.StringFixed(2))
			}
		})
	}
}

func TestMonthlyPayments_AgeOutOfRange(t *testing.T) {
	_, err := financing.MonthlyPayments(d("1000"), decimal.Zero, 83)
	assert.ErrorIs(t, err, financing.ErrAgeOutOfRange)

	_, err = financing.MonthlyPayments(d("1000"), decimal.Zero, -1)
	assert.ErrorIs(t, err, financing.ErrAgeOutOfRange)
}

func TestMonthlyPayments_NothingToFinance(t *testing.T) {
	tests := []struct {
		name string
		age  int
	}{
		{name: "MidBand", age: 50},
		{name: "NarrowedTerms", age: 80},
		{name: "AgeOutsideBands", age: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := financing.MonthlyPayments(d("1000"), d("1500"), tt.age)
			require.NoError(t, err)

			assert.True(t, quote.Principal.IsZero())
			require.Len(t, quote.Payments, 5)

			for _, p := range quote.Payments {
				assert.Equal(t, "0.00", p.Monthly.StringFixed(2))
				assert.True(t, p.Available)
			}
		})
	}
}
