package invoice

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/kearneyfs/prearrange/internal/catalog"
)

// ErrUnknownPackage is returned by ApplyPackage for names not in the preset
// catalogue. No field is mutated in that case.
var ErrUnknownPackage = errors.New("unknown package")

// Tax rates. GST is computed on the discounted base; PST is computed before
// the discount is subtracted. The asymmetry is long-standing observed
// behavior and is kept as-is, as is the unclamped GST base (a discount
// larger than the GST-applicable subtotal yields negative GST).
var (
	gstRate = decimal.RequireFromString("0.05")
	pstRate = decimal.RequireFromString("0.07")
)

// Unit prices behind the quantity fields.
var (
	cardUnitPrice      = decimal.RequireFromString("2.95")
	guestBookUnitPrice = decimal.RequireFromString("75.00")
	deathCertUnitPrice = decimal.RequireFromString("27.00")
)

// SectionTotals carries the per-section sums.
type SectionTotals struct {
	A, B, C, D decimal.Decimal
}

// Taxes carries the computed GST and PST amounts.
type Taxes struct {
	GST, PST decimal.Decimal
}

// Summary is the result of a full recomputation pass.
type Summary struct {
	Sections   SectionTotals
	Discount   decimal.Decimal
	Taxes      Taxes
	TotalABC   decimal.Decimal
	GrandTotal decimal.Decimal
	Total3     decimal.Decimal
	Total4     decimal.Decimal
}

// Engine derives every computed invoice field from the raw line items. It is
// stateless: each operation is a pure derivation over the field set passed
// in, and re-running with unchanged inputs reproduces identical outputs.
type Engine struct {
	packages  map[string]catalog.Package
	clearKeys []string
}

// NewEngine returns an engine over the current package presets.
func NewEngine() *Engine {
	packages := make(map[string]catalog.Package, len(catalog.Packages))
	keys := make(map[string]struct{})

	for _, p := range catalog.Packages {
		packages[p.Name] = p

		for code := range p.Amounts {
			keys[code] = struct{}{}
		}

		for field := range p.Labels {
			keys[field] = struct{}{}
		}
	}

	clearKeys := make([]string, 0, len(keys))
	for k := range keys {
		clearKeys = append(clearKeys, k)
	}

	sort.Strings(clearKeys)

	return &Engine{packages: packages, clearKeys: clearKeys}
}

// ApplyPackage overwrites the field set with a preset. Every field that
// appears in any preset is cleared first, so switching packages never leaves
// stale values behind. The bundled Cadence discount is upserted into the
// ledger, keyed by description, so re-applying a package never duplicates
// the row.
func (e *Engine) ApplyPackage(name string, f FieldSet, l *Ledger) error {
	pkg, ok := e.packages[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPackage, name)
	}

	for _, field := range e.clearKeys {
		f[field] = ""
	}

	f[FieldTypeOfService] = name

	for code, amount := range pkg.Amounts {
		f.SetAmount(code, amount)
	}

	for field, label := range pkg.Labels {
		f[field] = label
	}

	l.Upsert(catalog.CadenceDiscountDescription, catalog.CadenceDiscountAmount.StringFixed(2))

	return nil
}

// SectionTotals sums the fixed field codes of each section. Empty or
// non-numeric values count as zero.
func (e *Engine) SectionTotals(f FieldSet) SectionTotals {
	return SectionTotals{
		A: sum(f, SectionA),
		B: sum(f, SectionB),
		C: sum(f, SectionC),
		D: sum(f, SectionD),
	}
}

// ComputeTaxes derives GST and PST. GST = 5% of (GST-applicable sum minus the
// total discount), deliberately unclamped. PST = 7% of the PST-applicable
// sum before discount, except that B1 is exempt while the casket is the
// basic cremation container.
func (e *Engine) ComputeTaxes(f FieldSet, discountTotal decimal.Decimal) Taxes {
	gstBase := sum(f, gstApplicable).Sub(discountTotal)

	basicCasket := f[FieldCasket] == catalog.BasicCremationContainer

	pstBase := decimal.Zero

	for _, field := range pstApplicable {
		if field == "B1" && basicCasket {
			continue
		}

		pstBase = pstBase.Add(f.Amount(field))
	}

	return Taxes{
		GST: gstBase.Mul(gstRate),
		PST: pstBase.Mul(pstRate),
	}
}

// GrandTotal combines the section totals, discount and taxes:
// A + B + C - discount + GST + PST + D.
func (e *Engine) GrandTotal(st SectionTotals, discountTotal decimal.Decimal, taxes Taxes) decimal.Decimal {
	return st.A.Add(st.B).Add(st.C).
		Sub(discountTotal).
		Add(taxes.GST).Add(taxes.PST).
		Add(st.D)
}

// PreplannedTotal sums the section 3 fields (3A through 3E).
func PreplannedTotal(f FieldSet) decimal.Decimal {
	return sum(f, []string{
		FieldGoodsAndServices, FieldMonumentMarker, FieldOtherExpenses,
		FieldFinalDocuments, FieldJourneyHome,
	})
}

// Section4Total sums the payment selection fields (4A through 4D).
func Section4Total(f FieldSet) decimal.Decimal {
	return sum(f, []string{
		FieldSinglePay, FieldTimePay, FieldSinglePayJourneyHome, FieldLPR,
	})
}

// Recalculate runs the whole derivation pipeline over the field set: total
// discount, taxes, section totals, grand total, preplanned total and section
// 4 total, writing every derived field back in display form. 3A is
// overwritten with the grand total on every pass: the preplanned goods and
// services amount always mirrors the invoice, it is not independently
// editable.
func (e *Engine) Recalculate(f FieldSet, l *Ledger) Summary {
	discount := l.Total()
	taxes := e.ComputeTaxes(f, discount)
	sections := e.SectionTotals(f)

	totalABC := sections.A.Add(sections.B).Add(sections.C)
	grand := e.GrandTotal(sections, discount, taxes)

	f.SetAmount(FieldTotalA, sections.A)
	f.SetAmount(FieldTotalB, sections.B)
	f.SetAmount(FieldTotalC, sections.C)
	f.SetAmount(FieldTotalD, sections.D)
	f.SetAmount(FieldTotalABC, totalABC)
	f.SetAmount(FieldDiscount, discount)
	f.SetAmount(FieldGST, taxes.GST)
	f.SetAmount(FieldPST, taxes.PST)
	f.SetAmount(FieldGrandTotal, grand)
	f.SetAmount(FieldGoodsAndServices, grand)

	total3 := PreplannedTotal(f)
	f.SetAmount(FieldTotal3, total3)

	total4 := Section4Total(f)
	f.SetAmount(FieldTotal4, total4)

	return Summary{
		Sections:   sections,
		Discount:   discount,
		Taxes:      taxes,
		TotalABC:   totalABC,
		GrandTotal: grand,
		Total3:     total3,
		Total4:     total4,
	}
}

// SetSinglePayJourneyHome moves the journey-home amount between 3E and 4C.
// The value is paid either as part of the financed preplanned amount (3E) or
// as a separate single payment (4C), never both. Callers recalculate after.
func SetSinglePayJourneyHome(f FieldSet, singlePay bool) {
	if singlePay {
		if v := f[FieldJourneyHome]; v != "" {
			f[FieldSinglePayJourneyHome] = v
			f[FieldJourneyHome] = ""
		}

		return
	}

	if v := f[FieldSinglePayJourneyHome]; v != "" {
		f[FieldJourneyHome] = v
		f[FieldSinglePayJourneyHome] = ""
	}
}

// SetCardQuantity derives B5 (thank-you cards) from a quantity. Non-numeric
// quantities blank the field rather than erroring.
func SetCardQuantity(f FieldSet, quantity string) {
	setQuantityAmount(f, FieldCardsQuantity, "B5", quantity, cardUnitPrice)
}

// SetGuestBookQuantity derives B6 (guest books) from a quantity.
func SetGuestBookQuantity(f FieldSet, quantity string) {
	setQuantityAmount(f, FieldGuestBooksQuantity, "B6", quantity, guestBookUnitPrice)
}

// SetDeathCertificateQuantity derives D7 (death certificates) from a quantity.
func SetDeathCertificateQuantity(f FieldSet, quantity string) {
	setQuantityAmount(f, FieldDeathCertQuantity, "D7", quantity, deathCertUnitPrice)
}

func setQuantityAmount(f FieldSet, quantityField, amountField, quantity string, unit decimal.Decimal) {
	f[quantityField] = quantity

	qty, err := strconv.Atoi(quantity)
	if err != nil {
		f[amountField] = ""
		return
	}

	f.SetAmount(amountField, unit.Mul(decimal.NewFromInt(int64(qty))))
}
