package document_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kearneyfs/prearrange/internal/document"
	"github.com/kearneyfs/prearrange/internal/establishment"
	"github.com/kearneyfs/prearrange/internal/financing"
	"github.com/kearneyfs/prearrange/internal/invoice"
	"github.com/kearneyfs/prearrange/internal/person"
)

func testData(t *testing.T) document.Data {
	t.Helper()

	est, ok := establishment.ByKey("Kearney Burnaby Chapel (KBC)")
	require.True(t, ok)

	fields := invoice.NewFieldSet()
	fields[invoice.FieldTypeOfService] = "Minimum Cremation - No Viewing"
	fields[invoice.FieldCasket] = "Basic Cremation Container"
	fields["B1"] = "395.00"
	fields[invoice.FieldUrn] = "Basic Cardboard Urn"
	fields["B2"] = "35.00"
	fields[invoice.FieldOther2] = "Cadence Legacy Planner"
	fields[invoice.FieldDeathCertQuantity] = "2"
	fields["D7"] = "54.00"
	fields[invoice.FieldGoodsAndServices] = "3,876.65"
	fields[invoice.FieldJourneyHome] = "595.00"
	fields[invoice.FieldTotal3] = "4,471.65"
	fields[invoice.FieldDiscount] = "400.00"
	fields[invoice.FieldGrandTotal] = "3,876.65"

	return document.Data{
		Establishment: est,
		Applicant: person.Applicant{
			FirstName:  "Mary",
			MiddleName: "Anne",
			LastName:   "Doyle",
			Birthdate:  "January 2, 1950",
			Gender:     "Female",
			Phone:      "604-555-1234",
			Address:    "12 Elm St",
			City:       "Burnaby",
			Province:   "BC",
			PostalCode: "V5C 2K8",
		},
		Beneficiary: person.Beneficiary{
			Name:         "Patrick Doyle",
			Relationship: "Son",
			SameAddress:  true,
		},
		Representative: person.Representative{
			FirstName: "James",
			LastName:  "Kearney",
			ID:        "R-104",
		},
		Fields:               fields,
		DiscountDescriptions: "Cadence",
		CadenceDiscount:      "400.00",
		PaymentTerm:          financing.Term5,
		SignedCity:           "Burnaby",
		SignedProvince:       "BC",
		Now:                  time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestFieldMaps_InsuranceApplication(t *testing.T) {
	maps := document.FieldMaps(testData(t))
	m := maps[document.FormInsuranceApplication]

	assert.Equal(t, "Kearney Burnaby Chapel", m.Get("Establishment Name"))
	assert.Equal(t, "Mary", m.Get("First Name"))
	assert.Equal(t, "A", m.Get("MI"))
	assert.Equal(t, "02/01/50", m.Get("Birthdate ddmmyy"))
	assert.Equal(t, "76", m.Get("Age"))

	// SameAddress copies the applicant's address into the beneficiary block.
	assert.Equal(t, "12 Elm St", m.Get("Address (if different)"))
	assert.Equal(t, "Burnaby", m.Get("City_4"))

	assert.Equal(t, "On", m.Get("5-year"))
	assert.Empty(t, m.Get("10-year"))

	assert.Equal(t, "Burnaby, BC", m.Get("Location Where Signed"))
	assert.Equal(t, "03/03/26", m.Get("Date ddmmyy"))
	assert.Equal(t, "James Kearney", m.Get("Representative Name"))
}

func TestFieldMaps_LocationCheckbox(t *testing.T) {
	maps := document.FieldMaps(testData(t))

	assert.Equal(t, "Yes", maps[document.FormPersonalInformation].Get("Kearney Burnaby Chapel"))
	assert.Equal(t, "Yes", maps[document.FormInstructions].Get("Kearney Burnaby Chapel"))
	assert.Equal(t, "On", maps[document.FormServiceAgreement].Get("Kearney Burnaby Chapel"))
	assert.Empty(t, maps[document.FormPersonalInformation].Get("Kearney Vancouver Chapel"))
}

func TestFieldMaps_Instructions(t *testing.T) {
	maps := document.FieldMaps(testData(t))
	m := maps[document.FormInstructions]

	assert.Equal(t, "Mary Anne Doyle", m.Get("Name"))
	assert.Equal(t, "Basic Cremation Container - $395.00", m.Get("Casket"))
	assert.Equal(t, "Basic Cardboard Urn - $35.00", m.Get("Urn"))
	assert.Equal(t, "4715 Hastings St, Burnaby, BC, V5C 2K8", m.Get("Address"))
	assert.Equal(t, "2", m.Get("Death Certificates"))
}

func TestFieldMaps_ServiceAgreement(t *testing.T) {
	maps := document.FieldMaps(testData(t))
	m := maps[document.FormServiceAgreement]

	assert.Equal(t, "Mary Anne Doyle", m.Get("Purchaser"))
	assert.Equal(t, "3rd", m.Get("Day"))
	assert.Equal(t, "March", m.Get("Month"))
	assert.Equal(t, "2026", m.Get("Year"))

	assert.Equal(t, "Cadence Legacy Planner (Discount - $400.00)", m.Get("Other_2"))
	assert.Equal(t, "2 x $27.00", m.Get("Death Certificates"))
	assert.Equal(t, "(400.00)", m.Get("Discount"))
	assert.Equal(t, "Cadence", m.Get("Discount_description"))
}

func TestFieldMaps_JourneyHome(t *testing.T) {
	maps := document.FieldMaps(testData(t))
	m := maps[document.FormJourneyHomeEnrollment]

	assert.Equal(t, "595.00", m.Get("Amount Due"))
	assert.Equal(t, "On", m.Get("Female"))
	assert.Empty(t, m.Get("Male"))
	assert.Equal(t, "03/03/26", m.Get("Purchase Date ddmmyy"))
}

func TestOutputFileName(t *testing.T) {
	name := document.FormServiceAgreement.OutputFileName("Mary", "Doyle")
	assert.Equal(t, "Mary Doyle - Pre-Arranged Funeral Service Agreement.pdf", name)
}
