package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kearneyfs/prearrange/internal/invoice"
)

func TestApplyPackage_MinimumCremation(t *testing.T) {
	engine := invoice.NewEngine()
	fields := invoice.NewFieldSet()
	ledger := invoice.NewLedger()

	err := engine.ApplyPackage("Minimum Cremation - No Viewing", fields, ledger)
	require.NoError(t, err)

	summary := engine.Recalculate(fields, ledger)

	assert.Equal(t, "2,250.00", fields[invoice.FieldTotalA])
	assert.Equal(t, "430.00", fields[invoice.FieldTotalB])
	assert.Equal(t, "1,384.00", fields[invoice.FieldTotalC])
	assert.Equal(t, "27.00", fields[invoice.FieldTotalD])
	assert.Equal(t, "4,064.00", fields[invoice.FieldTotalABC])
	assert.Equal(t, "400.00", fields[invoice.FieldDiscount])

	// GST: 5% of (4,064 - 400). PST: 7% of B2 only, B1 being exempt with the
	// basic cremation container.
	assert.Equal(t, "183.20", fields[invoice.FieldGST])
	assert.Equal(t, "2.45", fields[invoice.FieldPST])

	assert.Equal(t, "3,876.65", fields[invoice.FieldGrandTotal])
	assert.Equal(t, "3,876.65", fields[invoice.FieldGoodsAndServices])
	assert.Equal(t, "595.00", fields[invoice.FieldJourneyHome])
	assert.Equal(t, "4,471.65", fields[invoice.FieldTotal3])
	assert.Equal(t, "0.00", fields[invoice.FieldTotal4])

	assert.Equal(t, "Minimum Cremation - No Viewing", fields[invoice.FieldTypeOfService])
	assert.Equal(t, "Basic Cremation Container", fields[invoice.FieldCasket])
	assert.Equal(t, "1", fields[invoice.FieldDeathCertQuantity])

	assert.True(t, summary.GrandTotal.Equal(
		summary.Sections.A.Add(summary.Sections.B).Add(summary.Sections.C).
			Sub(summary.Discount).
			Add(summary.Taxes.GST).Add(summary.Taxes.PST).
			Add(summary.Sections.D)))
}

func TestApplyPackage_Unknown(t *testing.T) {
	engine := invoice.NewEngine()
	fields := invoice.NewFieldSet()
	fields["A1"] = "100.00"
	ledger := invoice.NewLedger()

	err := engine.ApplyPackage("Deluxe Mausoleum", fields, ledger)
	require.ErrorIs(t, err, invoice.ErrUnknownPackage)

	// Nothing was mutated.
	assert.Equal(t, "100.00", fields["A1"])
	assert.Empty(t, ledger.Rows())
}

func TestApplyPackage_Idempotent(t *testing.T) {
	engine := invoice.NewEngine()
	fields := invoice.NewFieldSet()
	ledger := invoice.NewLedger()

	require.NoError(t, engine.ApplyPackage("Graveside - With Viewing", fields, ledger))
	engine.Recalculate(fields, ledger)
	first := fields.Clone()

	require.NoError(t, engine.ApplyPackage("Graveside - With Viewing", fields, ledger))
	engine.Recalculate(fields, ledger)

	assert.Equal(t, first, fields)
	assert.Len(t, ledger.Rows(), 1)
}

func TestApplyPackage_SwitchClearsStaleFields(t *testing.T) {
	engine := invoice.NewEngine()
	fields := invoice.NewFieldSet()
	ledger := invoice.NewLedger()

	require.NoError(t, engine.ApplyPackage("Ship Out International - Service at Church", fields, ledger))
	require.Equal(t, "3,500.00", fields["D8"])
	require.Equal(t, "Airfare Estimate", fields[invoice.FieldOther4])

	require.NoError(t, engine.ApplyPackage("Minimum Cremation - No Viewing", fields, ledger))

	assert.Empty(t, fields["D8"])
	assert.Empty(t, fields[invoice.FieldOther4])
	assert.Empty(t, fields["B7"])

	// The Cadence row was updated, not duplicated.
	rows := ledger.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Cadence", rows[0].Description)
	assert.Equal(t, "400.00", rows[0].Amount)
}

func TestComputeTaxes_PSTIncludesCasketUnlessBasic(t *testing.T) {
	engine := invoice.NewEngine()
	ledger := invoice.NewLedger()

	fields := invoice.NewFieldSet()
	require.NoError(t, engine.ApplyPackage("Minimum Cremation - With Viewing", fields, ledger))
	engine.Recalculate(fields, ledger)

	// Mazri casket: PST covers B1 795 + B2 35.
	assert.Equal(t, "58.10", fields[invoice.FieldPST])

	fields[invoice.FieldCasket] = "Basic Cremation Container"
	engine.Recalculate(fields, ledger)

	// B1 drops out of the base, only B2 remains.
	assert.Equal(t, "2.45", fields[invoice.FieldPST])
}

func TestComputeTaxes_GSTUnclamped(t *testing.T) {
	engine := invoice.NewEngine()
	fields := invoice.NewFieldSet()
	fields["A1"] = "100.00"

	ledger := invoice.NewLedger()
	ledger.Add("Goodwill", "500.00")

	summary := engine.Recalculate(fields, ledger)

	// The discount exceeds the taxable base; GST goes negative rather than
	// clamping at zero.
	assert.Equal(t, "-20.00", fields[invoice.FieldGST])
	assert.True(t, summary.Taxes.GST.IsNegative())
	assert.Equal(t, "-425.00", fields[invoice.FieldGrandTotal])
}

func TestRecalculate_GarbageFieldCountsAsZero(t *testing.T) {
	engine := invoice.NewEngine()
	fields := invoice.NewFieldSet()
	fields["A1"] = "250.00"
	fields["A3"] = "not a number"

	summary := engine.Recalculate(fields, invoice.NewLedger())

	assert.Equal(t, "250.00", fields[invoice.FieldTotalA])
	assert.True(t, summary.Sections.B.IsZero())
}

func TestNormalizeAmounts(t *testing.T) {
	fields := invoice.NewFieldSet()
	fields["A1"] = "1250"
	fields["B1"] = "$2,000"
	fields[invoice.FieldJourneyHome] = " 595 "
	fields[invoice.FieldCasket] = "Basic Cremation Container"
	fields["C3"] = "call for pricing"

	fields.NormalizeAmounts()

	assert.Equal(t, "1,250.00", fields["A1"])
	assert.Equal(t, "2,000.00", fields["B1"])
	assert.Equal(t, "595.00", fields[invoice.FieldJourneyHome])

	// Description fields and unparseable text stay as typed.
	assert.Equal(t, "Basic Cremation Container", fields[invoice.FieldCasket])
	assert.Equal(t, "call for pricing", fields["C3"])
}

func TestSetSinglePayJourneyHome(t *testing.T) {
	fields := invoice.NewFieldSet()
	fields[invoice.FieldJourneyHome] = "595.00"

	invoice.SetSinglePayJourneyHome(fields, true)
	assert.Empty(t, fields[invoice.FieldJourneyHome])
	assert.Equal(t, "595.00", fields[invoice.FieldSinglePayJourneyHome])

	// Toggling again with no 3E value must not wipe 4C.
	invoice.SetSinglePayJourneyHome(fields, true)
	assert.Equal(t, "595.00", fields[invoice.FieldSinglePayJourneyHome])

	invoice.SetSinglePayJourneyHome(fields, false)
	assert.Equal(t, "595.00", fields[invoice.FieldJourneyHome])
	assert.Empty(t, fields[invoice.FieldSinglePayJourneyHome])
}

func TestQuantityHelpers(t *testing.T) {
	tests := []struct {
		name       string
		set        func(invoice.FieldSet, string)
		quantity   string
		amountCode string
		want       string
	}{
		{name: "Cards", set: invoice.SetCardQuantity, quantity: "3", amountCode: "B5", want: "8.85"},
		{name: "GuestBooks", set: invoice.SetGuestBookQuantity, quantity: "2", amountCode: "B6", want: "150.00"},
		{name: "DeathCertificates", set: invoice.SetDeathCertificateQuantity, quantity: "4", amountCode: "D7", want: "108.00"},
		{name: "GarbageBlanks", set: invoice.SetCardQuantity, quantity: "lots", amountCode: "B5", want: ""},
		{name: "EmptyBlanks", set: invoice.SetGuestBookQuantity, quantity: "", amountCode: "B6", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := invoice.NewFieldSet()
			fields[tt.amountCode] = "999.00"

			tt.set(fields, tt.quantity)

			assert.Equal(t, tt.want, fields[tt.amountCode])
		})
	}
}

func TestPreplannedAndSection4Totals(t *testing.T) {
	fields := invoice.NewFieldSet()
	fields[invoice.FieldGoodsAndServices] = "3,876.65"
	fields[invoice.FieldMonumentMarker] = "1,000.00"
	fields[invoice.FieldJourneyHome] = "595.00"
	fields[invoice.FieldSinglePay] = "2,000.00"
	fields[invoice.FieldLPR] = "150.00"

	assert.Equal(t, "5471.65", invoice.PreplannedTotal(fields).StringFixed(2))
	assert.Equal(t, "2150.00", invoice.Section4Total(fields).StringFixed(2))
}
