// Package arrangement holds the working state of one pre-arrangement
// session: the people, the selected location, the invoice fields and
// discounts, and the financing selection. The service drives recalculation
// and turns a finished session into the printed forms.
package arrangement

import (
	"time"

	"github.com/google/uuid"

	"github.com/kearneyfs/prearrange/internal/catalog"
	"github.com/kearneyfs/prearrange/internal/establishment"
	"github.com/kearneyfs/prearrange/internal/financing"
	"github.com/kearneyfs/prearrange/internal/invoice"
	"github.com/kearneyfs/prearrange/internal/person"
)

// Arrangement is one session's full state.
type Arrangement struct {
	ID uuid.UUID

	Establishment  establishment.Establishment
	Applicant      person.Applicant
	Beneficiary    person.Beneficiary
	Representative person.Representative

	Fields    invoice.FieldSet
	Discounts *invoice.Ledger
	Catalogs  *catalog.Set

	// PaymentTerm is zero until the applicant picks a financing term.
	PaymentTerm financing.Term

	// SinglePayJourneyHome pays the journey home amount up front (4C)
	// instead of financing it (3E).
	SinglePayJourneyHome bool

	SignedCity     string
	SignedProvince string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns a fresh session with the built-in catalogues and an empty
// invoice.
func New() *Arrangement {
	now := time.Now()

	return &Arrangement{
		ID:        uuid.New(),
		Fields:    invoice.NewFieldSet(),
		Discounts: invoice.NewLedger(),
		Catalogs:  catalog.NewSet(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// selectionTarget maps a catalogue kind to the description field and amount
// code a selection fills in.
type selectionTarget struct {
	labelField string
	amountCode string
}

var selectionTargets = map[catalog.Kind]selectionTarget{
	catalog.KindCasket:            {invoice.FieldCasket, "B1"},
	catalog.KindUrn:               {invoice.FieldUrn, "B2"},
	catalog.KindViewing:           {invoice.FieldViewing, "A6"},
	catalog.KindLimousine:         {invoice.FieldLimousine, "A9F"},
	catalog.KindCrematorium:       {invoice.FieldCrematorium, "C2"},
	catalog.KindReceptionFacility: {invoice.FieldReceptionFacilities, "A8"},
	catalog.KindWeekend:           {invoice.FieldWeekend, "A7"},
	catalog.KindMiscOther:         {invoice.FieldOther3, "C10"},
}
