package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kearneyfs/prearrange/internal/invoice"
	"github.com/kearneyfs/prearrange/internal/money"
	"github.com/kearneyfs/prearrange/internal/person"
)

// checked is the value the PDF checkboxes expect.
const checked = "On"

// locationBoxes maps the establishment selector label to the checkbox each
// form carries for it.
var locationBoxes = map[string]string{
	"Kearney Funeral Services (KFS)":          "Kearney Vancouver Chapel",
	"Kearney Burnaby Chapel (KBC)":            "Kearney Burnaby Chapel",
	"Kearney Burquitlam Funeral Home (BFH)":   "Kearney Burquitlam Funeral Home",
	"Kearney Columbia-Bowell Chapel (CBC)":    "Kearney ColumbiaBowell Chapel",
	"Kearney Cloverdale & South Surrey (CLO)": "Kearney Cloverdale South Surrey",
}

// FieldMaps builds the ordered field map of every form.
func FieldMaps(d Data) map[Form]FieldMap {
	return map[Form]FieldMap{
		FormInsuranceApplication:  insuranceApplication(d),
		FormPersonalInformation:   personalInformation(d),
		FormInstructions:          instructions(d),
		FormServiceAgreement:      serviceAgreement(d),
		FormJourneyHomeEnrollment: journeyHomeEnrollment(d),
	}
}

func insuranceApplication(d Data) FieldMap {
	var m FieldMap

	m.add("I understand that this is an enrollment into a group policy in order to provide funding for funeral expenses", checked)

	m.add("Establishment Name", d.Establishment.Name)
	m.add("Phone", d.Establishment.Phone)
	m.add("Email", d.Establishment.Email)
	m.add("Address", d.Establishment.Address)
	m.add("City", d.Establishment.City)
	m.add("Province", d.Establishment.Province)
	m.add("Postal Code", d.Establishment.PostalCode)

	m.add("First Name", d.Applicant.FirstName)
	m.add("MI", d.Applicant.MiddleInitial())
	m.add("Last Name", d.Applicant.LastName)
	m.add("Birthdate ddmmyy", person.FormatBirthdateShort(d.Applicant.Birthdate))
	m.add("Age", d.ageText())
	m.add("Gender", d.Applicant.Gender)
	m.add("SIN", d.Applicant.SIN)
	m.add("Occupation", d.Applicant.Occupation)
	m.add("Phone_2", d.Applicant.Phone)
	m.add("Email_2", d.Applicant.Email)
	m.add("Mailing Address", d.Applicant.Address)
	m.add("City_2", d.Applicant.City)
	m.add("Province_2", d.Applicant.Province)
	m.add("Postal Code_2", d.Applicant.PostalCode)

	m.add("Name", d.Beneficiary.Name)
	m.add("Relationship", d.Beneficiary.Relationship)
	m.add("Phone_3", d.Beneficiary.Phone)
	m.add("Email_3", d.Beneficiary.Email)

	if d.Beneficiary.SameAddress {
		m.add("Address (if different)", d.Applicant.Address)
		m.add("City_4", d.Applicant.City)
		m.add("Province_4", d.Applicant.Province)
		m.add("Postal Code_4", d.Applicant.PostalCode)
	} else {
		m.add("Address (if different)", d.Beneficiary.Address)
		m.add("City_4", d.Beneficiary.City)
		m.add("Province_4", d.Beneficiary.Province)
		m.add("Postal Code_4", d.Beneficiary.PostalCode)
	}

	m.add("3A Goods and Services", d.Fields[invoice.FieldGoodsAndServices])
	m.add("3B MonumentMarker", d.Fields[invoice.FieldMonumentMarker])
	m.add("3C Other Expenses", d.Fields[invoice.FieldOtherExpenses])
	m.add("3D Final Documents Service", d.Fields[invoice.FieldFinalDocuments])
	m.add("3E Journey Home", d.Fields[invoice.FieldJourneyHome])
	m.add("Total 3", d.Fields[invoice.FieldTotal3])

	if d.PaymentTerm != 0 {
		m.add(fmt.Sprintf("%d-year", d.PaymentTerm), checked)
	}

	m.add("4A Single Pay", d.Fields[invoice.FieldSinglePay])
	m.add("4B Time Pay", d.Fields[invoice.FieldTimePay])
	m.add("4C Single Pay Journey Home", d.Fields[invoice.FieldSinglePayJourneyHome])
	m.add("4D LPR", d.Fields[invoice.FieldLPR])
	m.add("Total 4 (ABCD)", d.Fields[invoice.FieldTotal4])
	m.add("Monthly", checked)

	m.add("Location Where Signed", joinNonEmpty(d.SignedCity, d.SignedProvince))
	m.add("Date ddmmyy", d.Now.Format("02/01/06"))

	m.add("Representative Name", d.Representative.FullName())
	m.add("ID", d.Representative.ID)
	m.add("Phone_5", d.Representative.Phone)
	m.add("Email_5", d.Representative.Email)
	m.add("Date ddmmyy_3", d.Now.Format("02/01/06"))

	m.add("Payment (PAC)", checked)
	m.add("I hereby assign as its interest may lie the death benefit of the certificate applied for and to be issued to the funeral Establishment indicated above to provide funeral goods and", checked)
	m.add("I request that no new product be offered to me by TruStage Life of Canada or their affiliates or partners", checked)
	m.add("I also hereby assign the death benefit of the certificate to the funeral Establishment to provide certain cemetery goods and services and elect my certificate to be an EFA", checked)
	m.add("Protector Plus not available on FEGA IP", checked)

	return m
}

func personalInformation(d Data) FieldMap {
	var m FieldMap

	m.add("Date", d.Now.Format("January 2, 2006"))
	m.add("Last name", d.Applicant.LastName)
	m.add("First name", d.Applicant.FirstName)
	m.add("Middle name", d.Applicant.MiddleName)
	m.add("Address_1", joinNonEmpty(d.Applicant.Address, d.Applicant.City, d.Applicant.Province, d.Applicant.PostalCode))
	m.add("Phone", d.Applicant.Phone)
	m.add("Email", d.Applicant.Email)
	m.add("Date of Birth", d.Applicant.Birthdate)
	m.add("Occupation", d.Applicant.Occupation)
	m.add("SIN", d.Applicant.SIN)
	m.add("Death Certificate #", d.Fields[invoice.FieldDeathCertQuantity])

	if box, ok := locationBoxes[d.Establishment.Key]; ok {
		m.add(box, "Yes")
	}

	return m
}

func instructions(d Data) FieldMap {
	var m FieldMap

	m.add("Date", d.Now.Format("January 2, 2006"))
	m.add("Name", d.Applicant.FullName())
	m.add("Phone", d.Applicant.Phone)
	m.add("Email", d.Applicant.Email)
	m.add("Type of Service", d.Fields[invoice.FieldTypeOfService])
	m.add("Service to be Held at", d.Establishment.Name)
	m.add("Address", joinNonEmpty(d.Establishment.Address, d.Establishment.City, d.Establishment.Province, d.Establishment.PostalCode))
	m.add("Death Certificates", d.Fields[invoice.FieldDeathCertQuantity])

	m.add("Casket", labelWithPrice(d.Fields[invoice.FieldCasket], d.Fields["B1"]))

	// A keepsake selection takes the urn line when both are present.
	if keepsake := d.Fields["Keepsake"]; keepsake != "" {
		m.add("Urn", labelWithPrice(keepsake, d.Fields["B3"]))
	} else {
		m.add("Urn", labelWithPrice(d.Fields[invoice.FieldUrn], d.Fields["B2"]))
	}

	if box, ok := locationBoxes[d.Establishment.Key]; ok {
		m.add(box, "Yes")
	}

	return m
}

// serviceAgreementLines pairs each description field of the invoice with its
// amount code, in the order the agreement prints them.
var serviceAgreementLines = []struct {
	label string // empty when the line has no description field
	code  string
}{
	{"", "A1"},
	{"Pallbearers", "A2A"},
	{"Alternate Day Interment 1", "A2B"},
	{"Alternate Day Interment 2", "A2C"},
	{"", "A2D"},
	{"", "A3"},
	{"", "A4A"},
	{"", "A4B"},
	{"", "A4C"},
	{"", "A5A"},
	{"", "A5B"},
	{"Pacemaker Removal", "A5C"},
	{"Autopsy Care", "A5D"},
	{"Evening Prayers or Visitation", "A6"},
	{"Weekend or Statutory Holiday", "A7"},
	{"Reception Facilities", "A8"},
	{"Delivery of Cremated Remains", "A9A"},
	{"Transfer to Crematorium or Airport", "A9B"},
	{"Lead Vehicle", "A9C"},
	{"Service Vehicle", "A9D"},
	{"Funeral Coach", "A9E"},
	{"Limousine", "A9F"},
	{"Additional Limousines", "A9G"},
	{"Flower Van", "A9H"},
	{"Traditional Mourning Items", "B4"},
	{"Other_1", "B7"},
	{"Cemetery", "C1"},
	{"Crematorium", "C2"},
	{"Obituary Notices", "C3"},
	{"Flowers", "C4"},
	{"CPBC Administration Fee", "C5"},
	{"Hostess", "C6"},
	{"Markers", "C7"},
	{"Catering", "C8"},
	{"Other_3", "C10"},
	{"Clergy Honorarium", "D1"},
	{"Church Honorarium", "D2"},
	{"Altar Servers", "D3"},
	{"Organist", "D4"},
	{"Soloist", "D5"},
	{"Harpist", "D6"},
	{"Other_4", "D8"},
}

func serviceAgreement(d Data) FieldMap {
	var m FieldMap

	m.add("Purchaser", d.Applicant.FullName())
	m.add("PURCHASERS NAME", d.Applicant.FullName())
	m.add("Phone Number", d.Applicant.Phone)
	m.add("Address", joinNonEmpty(d.Applicant.Address, d.Applicant.City, d.Applicant.Province, d.Applicant.PostalCode))
	m.add("Type of Service", d.Fields[invoice.FieldTypeOfService])
	m.add("FUNERAL HOME REPRESENTATIVE NAME", d.Representative.FullName())
	m.add("BENEFICIARY", d.Applicant.FullName())
	m.add("DATE OF BIRTH", d.Applicant.Birthdate)
	m.add("ADDRESS CITY PROVINCE POSTAL CODE", joinNonEmpty(d.Applicant.Address, d.Applicant.City, d.Applicant.Province, d.Applicant.PostalCode))
	m.add("TELEPHONE NUMBER", d.Applicant.Phone)
	m.add("Day", ordinal(d.Now.Day()))
	m.add("Month", d.Now.Format("January"))
	m.add("Year", strconv.Itoa(d.Now.Year()))
	m.add("SIN", d.Applicant.SIN)

	for _, line := range serviceAgreementLines {
		if line.label != "" {
			m.add(line.label, d.Fields[line.label])
		}

		m.add(line.code, displayAmount(d.Fields[line.code]))
	}

	m.add("Casket", d.Fields[invoice.FieldCasket])
	m.add("B1", displayAmount(d.Fields["B1"]))
	m.add("Urn", d.Fields[invoice.FieldUrn])
	m.add("B2", displayAmount(d.Fields["B2"]))
	m.add("Keepsake", d.Fields["Keepsake"])
	m.add("B3", displayAmount(d.Fields["B3"]))

	if qty := d.Fields[invoice.FieldCardsQuantity]; qty != "" {
		m.add("Memorial Stationary", fmt.Sprintf("Cards (%s x $2.95)", qty))
	}

	m.add("B5", displayAmount(d.Fields["B5"]))

	if qty := d.Fields[invoice.FieldGuestBooksQuantity]; qty != "" {
		m.add("Funeral Register", fmt.Sprintf("Guest Book (%s x $75.00)", qty))
	}

	m.add("B6", displayAmount(d.Fields["B6"]))

	if d.Fields[invoice.FieldOther2] != "" && d.CadenceDiscount != "" {
		m.add("Other_2", fmt.Sprintf("%s (Discount - $%s)", d.Fields[invoice.FieldOther2], d.CadenceDiscount))
	} else {
		m.add("Other_2", d.Fields[invoice.FieldOther2])
	}

	m.add("C9", displayAmount(d.Fields["C9"]))

	if qty := d.Fields[invoice.FieldDeathCertQuantity]; qty != "" {
		m.add("Death Certificates", fmt.Sprintf("%s x $27.00", qty))
	}

	m.add("D7", displayAmount(d.Fields["D7"]))

	m.add("Total A", d.Fields[invoice.FieldTotalA])
	m.add("Total B", d.Fields[invoice.FieldTotalB])
	m.add("Total C", d.Fields[invoice.FieldTotalC])
	m.add("Total D", d.Fields[invoice.FieldTotalD])
	m.add("Total (ABC)", d.Fields[invoice.FieldTotalABC])

	m.add("Discount_description", d.DiscountDescriptions)

	// The discount prints in parentheses on the agreement.
	if v := d.Fields[invoice.FieldDiscount]; v != "" && v != "0.00" {
		m.add("Discount", "("+v+")")
	} else {
		m.add("Discount", "")
	}

	m.add("GST", d.Fields[invoice.FieldGST])
	m.add("PST", d.Fields[invoice.FieldPST])
	m.add("Grand Total", d.Fields[invoice.FieldGrandTotal])

	m.add("City Province", joinNonEmpty(d.SignedCity, d.SignedProvince))

	if box, ok := locationBoxes[d.Establishment.Key]; ok {
		m.add(box, checked)
	}

	return m
}

func journeyHomeEnrollment(d Data) FieldMap {
	var m FieldMap

	m.add("Purchase Date ddmmyy", d.Now.Format("02/01/06"))
	m.add("First Name", d.Applicant.FirstName)
	m.add("MI", d.Applicant.MiddleInitial())
	m.add("Last Name", d.Applicant.LastName)
	m.add("Date of Birth", person.FormatBirthdateShort(d.Applicant.Birthdate))
	m.add("Address", d.Applicant.Address)
	m.add("City", d.Applicant.City)
	m.add("Province", d.Applicant.Province)
	m.add("Postal Code", d.Applicant.PostalCode)
	m.add("Phone Number", d.Applicant.Phone)
	m.add("Email", d.Applicant.Email)

	m.add("Rep First Name", d.Representative.FirstName)
	m.add("Rep MI", d.Representative.MiddleInitial())
	m.add("Rep Last Name", d.Representative.LastName)
	m.add("Representative ID", d.Representative.ID)
	m.add("Rep Phone Number", d.Representative.Phone)

	m.add("Funeral Home Name if known", d.Establishment.Name)
	m.add("Amount Due", d.Fields[invoice.FieldJourneyHome])

	switch strings.ToLower(strings.TrimSpace(d.Applicant.Gender)) {
	case "m", "male":
		m.add("Male", checked)
	case "f", "female":
		m.add("Female", checked)
	}

	return m
}

func (d Data) ageText() string {
	bd, err := person.ParseBirthdate(d.Applicant.Birthdate)
	if err != nil {
		return ""
	}

	return strconv.Itoa(person.Age(bd, d.Now))
}

func joinNonEmpty(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))

	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	return strings.Join(nonEmpty, ", ")
}

// labelWithPrice renders "Label - $Amount", or just the label when no price
// is set.
func labelWithPrice(label, amount string) string {
	if label == "" {
		return ""
	}

	if amount == "" {
		return label
	}

	return label + " - $" + amount
}

// displayAmount normalizes a hand-entered amount to grouped two-decimal
// form; text that does not parse passes through untouched.
func displayAmount(v string) string {
	if v == "" {
		return ""
	}

	d, ok := money.Parse(v)
	if !ok {
		return v
	}

	return money.Format(d)
}

func ordinal(n int) string {
	suffix := "th"

	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}

	return strconv.Itoa(n) + suffix
}
