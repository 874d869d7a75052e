package document

import (
	"time"

	"github.com/kearneyfs/prearrange/internal/establishment"
	"github.com/kearneyfs/prearrange/internal/financing"
	"github.com/kearneyfs/prearrange/internal/invoice"
	"github.com/kearneyfs/prearrange/internal/person"
)

// Data is everything the printed forms draw on: the people, the selected
// location, the invoice fields with all derived totals already recalculated,
// and the signing details.
type Data struct {
	Establishment  establishment.Establishment
	Applicant      person.Applicant
	Beneficiary    person.Beneficiary
	Representative person.Representative

	Fields invoice.FieldSet

	// DiscountDescriptions is the ledger's joined description line;
	// CadenceDiscount is the Cadence row's amount, empty when absent.
	DiscountDescriptions string
	CadenceDiscount      string

	// PaymentTerm is the selected financing term, zero when the applicant
	// pays in full.
	PaymentTerm financing.Term

	SignedCity     string
	SignedProvince string

	Now time.Time
}

// Entry is one field of a printed form.
type Entry struct {
	Key   string
	Value string
}

// FieldMap is a form's fields in print order.
type FieldMap []Entry

// Get returns the value of a key, or empty when the form has no such field.
func (m FieldMap) Get(key string) string {
	for _, e := range m {
		if e.Key == key {
			return e.Value
		}
	}

	return ""
}

func (m *FieldMap) add(key, value string) {
	*m = append(*m, Entry{Key: key, Value: value})
}
