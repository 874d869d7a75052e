package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kearneyfs/prearrange/internal/invoice"
)

func TestLedger_StableIDs(t *testing.T) {
	l := invoice.NewLedger()

	first := l.Add("Veteran", "100.00")
	second := l.Add("Goodwill", "50.00")
	third := l.Add("Referral", "25.00")

	l.Remove(second)

	rows := l.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, first, rows[0].ID)
	assert.Equal(t, third, rows[1].ID)

	// Removed ids stay dead; new rows get fresh ids.
	assert.False(t, l.Update(second, "Goodwill", "60.00"))
	fourth := l.Add("Staff", "10.00")
	assert.Greater(t, fourth, third)
}

func TestLedger_Upsert(t *testing.T) {
	l := invoice.NewLedger()

	id := l.Upsert("Cadence", "400.00")
	again := l.Upsert("cadence", "450.00")

	assert.Equal(t, id, again)

	rows := l.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "450.00", rows[0].Amount)
}

func TestLedger_UpsertReusesEmptyRow(t *testing.T) {
	l := invoice.NewLedger()

	blank := l.Add("", "")
	l.Add("Veteran", "100.00")

	id := l.Upsert("Cadence", "400.00")
	assert.Equal(t, blank, id)

	rows := l.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Cadence", rows[0].Description)
	assert.Equal(t, "Veteran", rows[1].Description)
}

func TestLedger_Total(t *testing.T) {
	l := invoice.NewLedger()
	l.Add("Cadence", "400.00")
	l.Add("Veteran", "$1,100.00")
	// Inert, unparseable and negative rows are excluded from the total.
	l.Add("", "")
	l.Add("Typo", "four hundred")
	l.Add("Negative", "-50.00")

	assert.Equal(t, "1500.00", l.Total().StringFixed(2))
}

func TestLedger_Descriptions(t *testing.T) {
	l := invoice.NewLedger()
	l.Add("Cadence", "400.00")
	veteran := l.Add("Veteran", "100.00")
	l.Add("  ", "25.00")

	assert.Equal(t, "Cadence + Veteran", l.Descriptions())

	l.Remove(veteran)
	assert.Equal(t, "Cadence", l.Descriptions())
}

func TestLedger_AmountFor(t *testing.T) {
	l := invoice.NewLedger()
	l.Add("Cadence", "$400.00")

	assert.Equal(t, "400.00", l.AmountFor("cadence"))
	assert.Empty(t, l.AmountFor("Veteran"))

	l.Add("Zero", "0")
	assert.Empty(t, l.AmountFor("Zero"))
}
