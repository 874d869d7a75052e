// Package invoice models the pre-arrangement invoice: the named currency
// fields of sections A through D, the preplanned and payment sections, the
// discount ledger, and the engine that derives every computed total.
package invoice

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/kearneyfs/prearrange/internal/money"
)

// Field names. Currency fields hold grouped two-decimal strings; empty means
// zero/unset. The names double as the keys the printed forms use.
const (
	// Derived totals.
	FieldTotalA     = "Total A"
	FieldTotalB     = "Total B"
	FieldTotalC     = "Total C"
	FieldTotalD     = "Total D"
	FieldTotalABC   = "Total (ABC)"
	FieldDiscount   = "Discount"
	FieldGST        = "GST"
	FieldPST        = "PST"
	FieldGrandTotal = "Grand Total"

	// Preplanned amounts (section 3). 3A always mirrors the grand total.
	FieldGoodsAndServices = "3A Goods and Services"
	FieldMonumentMarker   = "3B MonumentMarker"
	FieldOtherExpenses    = "3C Other Expenses"
	FieldFinalDocuments   = "3D Final Documents Service"
	FieldJourneyHome      = "3E Journey Home"
	FieldTotal3           = "Total 3"

	// Payment selections (section 4).
	FieldSinglePay            = "4A Single Pay"
	FieldTimePay              = "4B Time Pay"
	FieldSinglePayJourneyHome = "4C Single Pay Journey Home"
	FieldLPR                  = "4D LPR"
	FieldTotal4               = "Total 4 (ABCD)"

	// Descriptive fields.
	FieldTypeOfService       = "Type of Service"
	FieldCasket              = "Casket"
	FieldUrn                 = "Urn"
	FieldCrematorium         = "Crematorium"
	FieldViewing             = "Evening Prayers or Visitation"
	FieldLimousine           = "Limousine"
	FieldReceptionFacilities = "Reception Facilities"
	FieldWeekend             = "Weekend or Statutory Holiday"
	FieldOther1              = "Other_1"
	FieldOther2              = "Other_2"
	FieldOther3              = "Other_3"
	FieldOther4              = "Other_4"

	// Quantity fields driving fixed-rate amounts.
	FieldDeathCertQuantity  = "Death_Certificates_Quantity"
	FieldCardsQuantity      = "Cards_Quantity"
	FieldGuestBooksQuantity = "Guest_Books_Quantity"
)

// Section field codes. The lists are fixed; summation is order-independent.
var (
	SectionA = []string{
		"A1", "A2A", "A2B", "A2C", "A2D", "A3", "A4A", "A4B", "A4C",
		"A5A", "A5B", "A5C", "A5D", "A6", "A7", "A8", "A9A", "A9B",
		"A9C", "A9D", "A9E", "A9F", "A9G", "A9H",
	}
	SectionB = []string{"B1", "B2", "B3", "B4", "B5", "B6", "B7"}
	SectionC = []string{"C1", "C2", "C3", "C4", "C5", "C6", "C7", "C8", "C9", "C10"}
	SectionD = []string{"D1", "D2", "D3", "D4", "D5", "D6", "D7", "D8"}
)

// gstApplicable lists every field the 5% GST applies to: all of section A
// plus the taxable merchandise and cash disbursements.
var gstApplicable = []string{
	"A1", "A2A", "A2B", "A2C", "A2D", "A3", "A4A", "A4B",
	"A4C", "A5A", "A5B", "A5C", "A5D", "A6", "A7", "A8",
	"A9A", "A9B", "A9C", "A9D", "A9E", "A9F", "A9G", "A9H",
	"B1", "B2", "B3", "B4", "B5", "B6", "B7", "C1", "C2",
	"C3", "C4", "C5", "C6", "C7", "C8", "C9", "C10",
}

// pstApplicable lists the 7% PST fields. B1 is conditionally exempt when the
// casket is the basic cremation container.
var pstApplicable = []string{
	"B1", "B2", "B3", "B4", "B5", "B6", "B7", "C4", "C7",
}

// FieldSet holds the textual value of every form field for one session.
type FieldSet map[string]string

// enteredAmountFields lists every currency field a user types into directly.
// Derived totals are always written in display form already.
var enteredAmountFields = func() []string {
	fields := make([]string, 0, 64)
	fields = append(fields, SectionA...)
	fields = append(fields, SectionB...)
	fields = append(fields, SectionC...)
	fields = append(fields, SectionD...)

	return append(fields,
		FieldMonumentMarker, FieldOtherExpenses, FieldFinalDocuments,
		FieldJourneyHome, FieldSinglePay, FieldTimePay,
		FieldSinglePayJourneyHome, FieldLPR,
	)
}()

// NewFieldSet returns an empty field set.
func NewFieldSet() FieldSet {
	return make(FieldSet)
}

// Amount parses a currency field. Empty or unparseable content counts as
// zero; garbage is logged once per read, never fatal.
func (f FieldSet) Amount(field string) decimal.Decimal {
	raw, ok := f[field]
	if !ok {
		return decimal.Zero
	}

	d, parsed := money.Parse(raw)
	if !parsed {
		slog.Warn("non-numeric currency field treated as zero", "field", field, "value", raw)
	}

	return d
}

// SetAmount writes a currency field in display form.
func (f FieldSet) SetAmount(field string, d decimal.Decimal) {
	f[field] = money.Format(d)
}

// NormalizeAmounts rewrites every parseable, non-empty entered currency
// field into display form, so "1250" becomes "1,250.00". Unparseable text is
// left as typed; it already reads as zero.
func (f FieldSet) NormalizeAmounts() {
	for _, field := range enteredAmountFields {
		raw, ok := f[field]
		if !ok || raw == "" {
			continue
		}

		if d, parsed := money.Parse(raw); parsed {
			f.SetAmount(field, d)
		}
	}
}

// Clone returns an independent copy of the field set.
func (f FieldSet) Clone() FieldSet {
	cp := make(FieldSet, len(f))
	for k, v := range f {
		cp[k] = v
	}

	return cp
}

func sum(f FieldSet, fields []string) decimal.Decimal {
	total := decimal.Zero
	for _, field := range fields {
		total = total.Add(f.Amount(field))
	}

	return total
}
