package arrangement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kearneyfs/prearrange/internal/catalog"
	"github.com/kearneyfs/prearrange/internal/document"
	"github.com/kearneyfs/prearrange/internal/financing"
	"github.com/kearneyfs/prearrange/internal/invoice"
	"github.com/kearneyfs/prearrange/internal/person"
)

// ErrUnknownItem is returned when a selection names an item the catalogue
// does not carry.
var ErrUnknownItem = errors.New("unknown catalog item")

// ErrNotFound is returned by the archive for unknown ids.
var ErrNotFound = errors.New("arrangement not found")

// Record is the archive listing of a stored session.
type Record struct {
	ID            uuid.UUID
	ApplicantName string
	TypeOfService string
	GrandTotal    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=arrangement
type Repository interface {
	SaveArrangement(ctx context.Context, a *Arrangement) error
	GetArrangement(ctx context.Context, id uuid.UUID) (*Arrangement, error)
	ListArrangements(ctx context.Context) ([]Record, error)
	DeleteArrangement(ctx context.Context, id uuid.UUID) error
}

// Service drives a session: selections, recalculation, financing quotes and
// form generation. The repository is optional; with a nil repository
// completed sessions are not archived.
type Service struct {
	engine   *invoice.Engine
	renderer *document.Renderer
	logsDir  string
	repo     Repository
	now      func() time.Time
}

// NewService wires a session service.
func NewService(engine *invoice.Engine, renderer *document.Renderer, logsDir string, repo Repository) *Service {
	return &Service{
		engine:   engine,
		renderer: renderer,
		logsDir:  logsDir,
		repo:     repo,
		now:      time.Now,
	}
}

// Recalculate re-derives every computed field from the current line items
// and discounts.
func (s *Service) Recalculate(a *Arrangement) invoice.Summary {
	summary := s.engine.Recalculate(a.Fields, a.Discounts)
	a.UpdatedAt = s.now()

	return summary
}

// ApplyPackage loads a preset and recalculates.
func (s *Service) ApplyPackage(a *Arrangement, name string) (invoice.Summary, error) {
	if err := s.engine.ApplyPackage(name, a.Fields, a.Discounts); err != nil {
		return invoice.Summary{}, err
	}

	return s.Recalculate(a), nil
}

// SelectItem fills the description field and amount code behind a catalogue
// kind with the chosen item and its price, then recalculates.
func (s *Service) SelectItem(a *Arrangement, kind catalog.Kind, label string) (invoice.Summary, error) {
	target, ok := selectionTargets[kind]
	if !ok {
		return invoice.Summary{}, fmt.Errorf("no invoice target for catalog kind %q", kind)
	}

	return s.applySelection(a, kind, label, target)
}

// SelectKeepsake picks a keepsake from the urn catalogue. Keepsakes have
// their own line (B3) so an urn and a keepsake can coexist.
func (s *Service) SelectKeepsake(a *Arrangement, label string) (invoice.Summary, error) {
	return s.applySelection(a, catalog.KindUrn, label, selectionTarget{"Keepsake", "B3"})
}

func (s *Service) applySelection(a *Arrangement, kind catalog.Kind, label string, target selectionTarget) (invoice.Summary, error) {
	price, ok := a.Catalogs.Price(kind, label)
	if !ok {
		return invoice.Summary{}, fmt.Errorf("%w: %s %q", ErrUnknownItem, kind, label)
	}

	a.Fields[target.labelField] = label
	a.Fields.SetAmount(target.amountCode, price)

	return s.Recalculate(a), nil
}

// SetSinglePayJourneyHome toggles how the journey home amount is paid and
// recalculates.
func (s *Service) SetSinglePayJourneyHome(a *Arrangement, singlePay bool) invoice.Summary {
	a.SinglePayJourneyHome = singlePay
	invoice.SetSinglePayJourneyHome(a.Fields, singlePay)

	return s.Recalculate(a)
}

// Quote derives the monthly payment options from the preplanned total, the
// single payment and the applicant's age.
func (s *Service) Quote(a *Arrangement) (financing.Quote, error) {
	birthdate, err := person.ParseBirthdate(a.Applicant.Birthdate)
	if err != nil {
		return financing.Quote{}, fmt.Errorf("applicant birthdate: %w", err)
	}

	age := person.Age(birthdate, s.now())

	return financing.MonthlyPayments(
		a.Fields.Amount(invoice.FieldTotal3),
		a.Fields.Amount(invoice.FieldSinglePay),
		age,
	)
}

// SelectPaymentTerm writes the chosen term's monthly amount into the time
// pay field. Selecting a term the quote does not offer clears the field.
func (s *Service) SelectPaymentTerm(a *Arrangement, term financing.Term) (invoice.Summary, error) {
	quote, err := s.Quote(a)
	if err != nil {
		return invoice.Summary{}, err
	}

	monthly, available := quote.Monthly(term)
	if available {
		a.PaymentTerm = term
		a.Fields.SetAmount(invoice.FieldTimePay, monthly)
	} else {
		a.PaymentTerm = 0
		a.Fields[invoice.FieldTimePay] = ""
	}

	return s.Recalculate(a), nil
}

// CompleteResult reports what a completed session produced.
type CompleteResult struct {
	FormPaths    []string
	ValueLogPath string
}

// Complete recalculates, renders all five forms, writes the value log, and
// archives the session when a repository is configured. Rendering stops at
// the first failure so a file-in-use error surfaces with its path.
func (s *Service) Complete(ctx context.Context, a *Arrangement) (CompleteResult, error) {
	s.Recalculate(a)

	data := document.Data{
		Establishment:        a.Establishment,
		Applicant:            a.Applicant,
		Beneficiary:          a.Beneficiary,
		Representative:       a.Representative,
		Fields:               a.Fields,
		DiscountDescriptions: a.Discounts.Descriptions(),
		CadenceDiscount:      a.Discounts.AmountFor(catalog.CadenceDiscountDescription),
		PaymentTerm:          a.PaymentTerm,
		SignedCity:           a.SignedCity,
		SignedProvince:       a.SignedProvince,
		Now:                  s.now(),
	}

	maps := document.FieldMaps(data)

	result := CompleteResult{FormPaths: make([]string, 0, len(document.Forms))}

	for _, form := range document.Forms {
		path, err := s.renderer.Render(form, data, maps[form])
		if err != nil {
			return CompleteResult{}, fmt.Errorf("rendering %s: %w", form.Title(), err)
		}

		result.FormPaths = append(result.FormPaths, path)
	}

	logPath, err := document.WriteValueLog(s.logsDir, data.Now, maps)
	if err != nil {
		return CompleteResult{}, err
	}

	result.ValueLogPath = logPath

	if s.repo != nil {
		if err := s.repo.SaveArrangement(ctx, a); err != nil {
			return CompleteResult{}, fmt.Errorf("archiving arrangement: %w", err)
		}

		slog.Info("arrangement archived", "id", a.ID)
	}

	return result, nil
}

// Get loads an archived session.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Arrangement, error) {
	if s.repo == nil {
		return nil, errors.New("archive not configured")
	}

	return s.repo.GetArrangement(ctx, id)
}

// List returns the archive listing.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	if s.repo == nil {
		return nil, nil
	}

	return s.repo.ListArrangements(ctx)
}

// Delete removes an archived session.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if s.repo == nil {
		return errors.New("archive not configured")
	}

	return s.repo.DeleteArrangement(ctx, id)
}
