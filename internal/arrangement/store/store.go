// Package store persists completed arrangements to Postgres. The session
// state is stored as a JSON snapshot next to a few indexed columns for the
// archive listing.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/kearneyfs/prearrange/internal/arrangement"
	"github.com/kearneyfs/prearrange/internal/catalog"
	"github.com/kearneyfs/prearrange/internal/establishment"
	"github.com/kearneyfs/prearrange/internal/financing"
	"github.com/kearneyfs/prearrange/internal/invoice"
	"github.com/kearneyfs/prearrange/internal/person"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// snapshot is the stored JSON form of a session. Catalogues are not stored:
// they are rebuilt from the built-in tables on load, so archived sessions
// pick up current prices for any further edits.
type snapshot struct {
	EstablishmentKey string                `json:"establishment_key,omitempty"`
	Applicant        person.Applicant      `json:"applicant"`
	Beneficiary      person.Beneficiary    `json:"beneficiary"`
	Representative   person.Representative `json:"representative"`
	Fields           map[string]string     `json:"fields"`
	Discounts        []discountRow         `json:"discounts,omitempty"`
	PaymentTerm      int                   `json:"payment_term,omitempty"`
	SinglePayJH      bool                  `json:"single_pay_journey_home,omitempty"`
	SignedCity       string                `json:"signed_city,omitempty"`
	SignedProvince   string                `json:"signed_province,omitempty"`
}

type discountRow struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

func encodeSnapshot(a *arrangement.Arrangement) ([]byte, error) {
	snap := snapshot{
		EstablishmentKey: a.Establishment.Key,
		Applicant:        a.Applicant,
		Beneficiary:      a.Beneficiary,
		Representative:   a.Representative,
		Fields:           a.Fields,
		PaymentTerm:      int(a.PaymentTerm),
		SinglePayJH:      a.SinglePayJourneyHome,
		SignedCity:       a.SignedCity,
		SignedProvince:   a.SignedProvince,
	}

	for _, row := range a.Discounts.Rows() {
		snap.Discounts = append(snap.Discounts, discountRow{
			Description: row.Description,
			Amount:      row.Amount,
		})
	}

	return json.Marshal(snap)
}

func decodeSnapshot(data []byte, a *arrangement.Arrangement) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	if est, ok := establishment.ByKey(snap.EstablishmentKey); ok {
		a.Establishment = est
	}

	a.Applicant = snap.Applicant
	a.Beneficiary = snap.Beneficiary
	a.Representative = snap.Representative
	a.Fields = invoice.FieldSet(snap.Fields)

	if a.Fields == nil {
		a.Fields = invoice.NewFieldSet()
	}

	a.Discounts = invoice.NewLedger()
	for _, row := range snap.Discounts {
		a.Discounts.Add(row.Description, row.Amount)
	}

	a.Catalogs = catalog.NewSet()
	a.PaymentTerm = financing.Term(snap.PaymentTerm)
	a.SinglePayJourneyHome = snap.SinglePayJH
	a.SignedCity = snap.SignedCity
	a.SignedProvince = snap.SignedProvince

	return nil
}

func (s *Store) SaveArrangement(ctx context.Context, a *arrangement.Arrangement) error {
	snap, err := encodeSnapshot(a)
	if err != nil {
		return fmt.Errorf("encoding arrangement: %w", err)
	}

	query := `
		INSERT INTO arrangements (id, applicant_name, type_of_service, grand_total, snapshot, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO UPDATE
		SET applicant_name = EXCLUDED.applicant_name,
		    type_of_service = EXCLUDED.type_of_service,
		    grand_total = EXCLUDED.grand_total,
		    snapshot = EXCLUDED.snapshot,
		    updated_at = NOW()
	`

	_, err = s.db.ExecContext(ctx, query,
		a.ID,
		a.Applicant.FullName(),
		a.Fields[invoice.FieldTypeOfService],
		a.Fields[invoice.FieldGrandTotal],
		snap,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving arrangement: %w", err)
	}

	return nil
}

func (s *Store) GetArrangement(ctx context.Context, id uuid.UUID) (*arrangement.Arrangement, error) {
	query := `
		SELECT id, snapshot, created_at, updated_at
		FROM arrangements
		WHERE id = $1 AND deleted_at IS NULL
	`

	var (
		a    arrangement.Arrangement
		snap []byte
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &snap, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, arrangement.ErrNotFound
		}

		return nil, fmt.Errorf("getting arrangement: %w", err)
	}

	if err := decodeSnapshot(snap, &a); err != nil {
		return nil, fmt.Errorf("decoding arrangement: %w", err)
	}

	return &a, nil
}

func (s *Store) ListArrangements(ctx context.Context) ([]arrangement.Record, error) {
	query := `
		SELECT id, applicant_name, type_of_service, grand_total, created_at, updated_at
		FROM arrangements
		WHERE deleted_at IS NULL
		ORDER BY updated_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing arrangements: %w", err)
	}
	defer rows.Close()

	var records []arrangement.Record

	for rows.Next() {
		var r arrangement.Record

		if err := rows.Scan(&r.ID, &r.ApplicantName, &r.TypeOfService, &r.GrandTotal, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning arrangement: %w", err)
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

func (s *Store) DeleteArrangement(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE arrangements
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting arrangement: %w", err)
	}

	return nil
}
