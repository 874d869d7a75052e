package invoice

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kearneyfs/prearrange/internal/money"
)

// Ledger is the ordered list of discount rows. Rows are keyed by a
// monotonically increasing id; removing a row deactivates its slot so
// remaining ids never shift.
type Ledger struct {
	rows   []ledgerRow
	nextID int
}

type ledgerRow struct {
	id          int
	description string
	amount      string
	active      bool
}

// Row is one visible discount entry.
type Row struct {
	ID          int
	Description string
	Amount      string
}

// NewLedger returns an empty discount ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends a discount row and returns its id.
func (l *Ledger) Add(description, amount string) int {
	id := l.nextID
	l.nextID++

	l.rows = append(l.rows, ledgerRow{
		id:          id,
		description: description,
		amount:      amount,
		active:      true,
	})

	return id
}

// Update rewrites an active row in place. Returns false for unknown ids.
func (l *Ledger) Update(id int, description, amount string) bool {
	for i := range l.rows {
		if l.rows[i].id == id && l.rows[i].active {
			l.rows[i].description = description
			l.rows[i].amount = amount

			return true
		}
	}

	return false
}

// Remove deactivates a row. The slot keeps its id and is never reused.
func (l *Ledger) Remove(id int) {
	for i := range l.rows {
		if l.rows[i].id == id {
			l.rows[i].active = false
			return
		}
	}
}

// Upsert writes a discount keyed by description: if an active row already
// carries the description (case-insensitively), its amount is updated;
// otherwise the first fully empty row is reused, or a new row is appended.
// At most one row per distinct description.
func (l *Ledger) Upsert(description, amount string) int {
	want := strings.ToLower(strings.TrimSpace(description))

	emptyRow := -1

	for i := range l.rows {
		if !l.rows[i].active {
			continue
		}

		if strings.ToLower(strings.TrimSpace(l.rows[i].description)) == want {
			l.rows[i].amount = amount
			return l.rows[i].id
		}

		if emptyRow < 0 && l.rows[i].description == "" && l.rows[i].amount == "" {
			emptyRow = i
		}
	}

	if emptyRow >= 0 {
		l.rows[emptyRow].description = description
		l.rows[emptyRow].amount = amount

		return l.rows[emptyRow].id
	}

	return l.Add(description, amount)
}

// Rows returns the active rows in insertion order.
func (l *Ledger) Rows() []Row {
	rows := make([]Row, 0, len(l.rows))

	for _, r := range l.rows {
		if r.active {
			rows = append(rows, Row{ID: r.id, Description: r.description, Amount: r.amount})
		}
	}

	return rows
}

// Total sums the active rows with a parseable non-negative amount. Rows with
// both fields empty are inert; unparseable or negative amounts are skipped
// with a warning, never fatal.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero

	for _, r := range l.rows {
		if !r.active {
			continue
		}

		if r.description == "" && r.amount == "" {
			continue
		}

		d, ok := money.Parse(r.amount)
		if !ok || d.IsNegative() {
			slog.Warn("invalid discount amount skipped",
				"description", r.description, "amount", r.amount)
			continue
		}

		total = total.Add(d)
	}

	return total
}

// Descriptions joins the non-empty active descriptions with " + " for the
// printed forms.
func (l *Ledger) Descriptions() string {
	var parts []string

	for _, r := range l.rows {
		if r.active {
			if desc := strings.TrimSpace(r.description); desc != "" {
				parts = append(parts, desc)
			}
		}
	}

	return strings.Join(parts, " + ")
}

// AmountFor returns the cleaned amount of the row matching the description
// case-insensitively, or the empty string.
func (l *Ledger) AmountFor(description string) string {
	want := strings.ToLower(strings.TrimSpace(description))

	for _, r := range l.rows {
		if r.active && strings.ToLower(strings.TrimSpace(r.description)) == want {
			d, ok := money.Parse(r.amount)
			if !ok || d.IsZero() {
				return ""
			}

			return d.StringFixed(2)
		}
	}

	return ""
}
