// Package financing quotes the monthly time-pay options for the preplanned
// amount. Rates come from the insurer's factor sheet: one factor per age band
// and term, applied to the financed principal. Longer terms stop being
// offered as the applicant's age goes up.
package financing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrAgeOutOfRange is returned when the applicant's age falls outside the
// insurable range of the factor sheet.
var ErrAgeOutOfRange = errors.New("age outside insurable range")

// Term is a financing term in years.
type Term int

const (
	Term3  Term = 3
	Term5  Term = 5
	Term10 Term = 10
	Term15 Term = 15
	Term20 Term = 20
)

// Terms lists the offered terms in display order.
var Terms = []Term{Term3, Term5, Term10, Term15, Term20}

// Payment is the quoted monthly amount for one term. Available is false when
// the insurer does not offer the term at the applicant's age; Monthly is
// meaningless in that case.
type Payment struct {
	Term      Term
	Monthly   decimal.Decimal
	Available bool
}

// Quote is the full set of payment options for one principal and age.
type Quote struct {
	Principal decimal.Decimal
	Payments  []Payment
}

// Monthly returns the quoted amount for a term. The second return is false
// when the term is not offered.
func (q Quote) Monthly(term Term) (decimal.Decimal, bool) {
	for _, p := range q.Payments {
		if p.Term == term {
			return p.Monthly, p.Available
		}
	}

	return decimal.Zero, false
}

// band maps an inclusive age range to the per-term factors. An empty factor
// marks a term the insurer does not offer at that age.
type band struct {
	min, max int
	factors  [5]string
}

// Factor sheet, effective rates per dollar of principal per month. The bands
// narrow near the threshold ages (65, 70, 75, 80) where single years carry
// their own rates.
var bands = []band{
	{0, 54, [5]string{"0.03150", "0.01995", "0.01155", "0.008925", "0.00735"}},
	{55, 59, [5]string{"0.03255", "0.01995", "0.01260", "0.009975", "0.00840"}},
	{60, 64, [5]string{"0.03255", "0.02100", "0.01365", "0.01050", "0.008925"}},
	{65, 65, [5]string{"0.03360", "0.02100", "0.01470", "0.01155", "0.009975"}},
	{66, 69, [5]string{"0.03360", "0.02100", "0.01470", "0.01155", ""}},
	{70, 70, [5]string{"0.03465", "0.02205", "0.01575", "0.01260", ""}},
	{71, 74, [5]string{"0.03465", "0.02205", "0.01575", "", ""}},
	{75, 75, [5]string{"0.03675", "0.02310", "0.01680", "", ""}},
	{76, 79, [5]string{"0.03675", "0.02310", "", "", ""}},
	{80, 80, [5]string{"0.03780", "0.02625", "", "", ""}},
	{81, 82, [5]string{"0.03780", "", "", "", ""}},
}

// MonthlyPayments quotes every term for the amount left to finance. The
// principal is the preplanned total less the single payment, rounded up to
// the whole dollar. A principal at or below zero quotes zero on all five
// terms without consulting the factor sheet, so neither the age nor the
// narrowed term list applies.
func MonthlyPayments(preplannedTotal, singlePay decimal.Decimal, age int) (Quote, error) {
	principal := preplannedTotal.Sub(singlePay).Ceil()

	// Nothing to finance quotes zero on every term, before age even comes
	// into it: the quote table stays filled for a fully paid-up plan.
	if !principal.IsPositive() {
		payments := make([]Payment, len(Terms))
		for i, term := range Terms {
			payments[i] = Payment{Term: term, Available: true}
		}

		return Quote{Principal: decimal.Zero, Payments: payments}, nil
	}

	factors, err := factorsForAge(age)
	if err != nil {
		return Quote{}, err
	}

	payments := make([]Payment, len(Terms))

	for i, term := range Terms {
		if factors[i] == "" {
			payments[i] = Payment{Term: term}
			continue
		}

		factor := decimal.RequireFromString(factors[i])

		payments[i] = Payment{
			Term:      term,
			Monthly:   principal.Mul(factor),
			Available: true,
		}
	}

	return Quote{Principal: principal, Payments: payments}, nil
}

func factorsForAge(age int) ([5]string, error) {
	for _, b := range bands {
		if age >= b.min && age <= b.max {
			return b.factors, nil
		}
	}

	return [5]string{}, fmt.Errorf("%w: %d", ErrAgeOutOfRange, age)
}
