package schedule

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/internal/models"
)

func payment(due string, amount float64, status string) *models.Payment {
	return &models.Payment{
		ID:      uuid.New(),
		Amount:  amount,
		DueDate: due,
		Status:  status,
	}
}

func TestReconcileQuarterlyScenario(t *testing.T) {
	// One paid row against a four-slot schedule: only the matching slot
	// shows paid, the rest default to pending.
	entries := Parse("01-01-2024, 01-04-2024, 01-07-2024, 01-10-2024", "1000, 1000, 1000, 1000")
	payments := []*models.Payment{payment("2024-04-01", 1000, models.PaymentStatusPaid)}

	out := Reconcile(entries, payments)
	require.Len(t, out, 4)

	assert.Equal(t, models.PaymentStatusPending, out[0].Status)
	assert.Equal(t, models.PaymentStatusPaid, out[1].Status)
	assert.Equal(t, models.PaymentStatusPending, out[2].Status)
	assert.Equal(t, models.PaymentStatusPending, out[3].Status)

	for i, want := range []string{"01-01-2024", "01-04-2024", "01-07-2024", "01-10-2024"} {
		assert.Equal(t, want, out[i].DueDate)
		assert.Equal(t, 1000.0, out[i].Amount)
	}
}

func TestReconcileDateMatchBeatsIndexFallback(t *testing.T) {
	entries := Parse("01-07-2024", "")
	// sorted order puts the January row at index 0, which would be the
	// index-based candidate; the July row must win by date.
	payments := []*models.Payment{
		payment("2024-01-01", 100, models.PaymentStatusOverdue),
		payment("2024-07-01", 900, models.PaymentStatusPaid),
	}

	out := Reconcile(entries, payments)
	require.Len(t, out, 1)
	assert.Equal(t, models.PaymentStatusPaid, out[0].Status)
	assert.Equal(t, 900.0, out[0].Amount)
}

func TestReconcileMatchesLegacyDisplayFormatRows(t *testing.T) {
	// Legacy payment rows may store the display form verbatim.
	entries := Parse("01-07-2024", "")
	payments := []*models.Payment{payment("01-07-2024", 450, models.PaymentStatusPaid)}

	out := Reconcile(entries, payments)
	require.Len(t, out, 1)
	assert.Equal(t, models.PaymentStatusPaid, out[0].Status)
	assert.Equal(t, 450.0, out[0].Amount)
}

func TestReconcileIndexFallback(t *testing.T) {
	// No date matches at all: each entry adopts the payment at its sorted
	// position.
	entries := Parse("05-01-2024, 05-02-2024, 05-03-2024", "")
	payments := []*models.Payment{
		payment("2024-02-10", 200, models.PaymentStatusPending),
		payment("2024-01-10", 100, models.PaymentStatusPaid),
	}

	out := Reconcile(entries, payments)
	require.Len(t, out, 3)
	assert.Equal(t, 100.0, out[0].Amount) // sorted position 0
	assert.Equal(t, models.PaymentStatusPaid, out[0].Status)
	assert.Equal(t, 200.0, out[1].Amount) // sorted position 1
	assert.Equal(t, models.PaymentStatusPending, out[1].Status)
	// No payment at position 2: unmatched defaults.
	assert.Equal(t, models.PaymentStatusPending, out[2].Status)
	assert.Equal(t, 0.0, out[2].Amount)
	assert.Nil(t, out[2].Matched)
}

func TestReconcileIndexFallbackSkipsDateClaimedPayments(t *testing.T) {
	// The June row is taken by date, so the May slot's index fallback must
	// draw from the leftover March row, not the already-claimed June one.
	entries := Parse("01-05-2024, 01-06-2024", "")
	payments := []*models.Payment{
		payment("2024-06-01", 600, models.PaymentStatusPaid),
		payment("2024-03-15", 150, models.PaymentStatusOverdue),
	}

	out := Reconcile(entries, payments)
	require.Len(t, out, 2)
	assert.Equal(t, 150.0, out[0].Amount)
	assert.Equal(t, models.PaymentStatusOverdue, out[0].Status)
	assert.Equal(t, 600.0, out[1].Amount)
	assert.Equal(t, models.PaymentStatusPaid, out[1].Status)
}

func TestReconcileUnmatchedDefaults(t *testing.T) {
	entries := Parse("01-01-2024, 01-06-2024", "1500")
	out := Reconcile(entries, nil)
	require.Len(t, out, 2)

	assert.Equal(t, 1500.0, out[0].Amount)
	assert.Equal(t, models.PaymentStatusPending, out[0].Status)
	assert.Nil(t, out[0].PaidDate)
	// Missing positional amount and no match falls back to zero.
	assert.Equal(t, 0.0, out[1].Amount)
}

func TestReconcileDuplicateTokensShareOnePayment(t *testing.T) {
	// Both duplicate slots match the same row via pass 1. The duplication is
	// visible and deliberate.
	entries := Parse("01-04-2024, 01-04-2024", "")
	p := payment("2024-04-01", 300, models.PaymentStatusPaid)

	out := Reconcile(entries, []*models.Payment{p})
	require.Len(t, out, 2)
	assert.Same(t, p, out[0].Matched)
	assert.Same(t, p, out[1].Matched)
}

func TestReconcileIgnoresPaymentsWithoutSlot(t *testing.T) {
	entries := Parse("01-01-2024", "")
	payments := []*models.Payment{
		payment("2024-01-01", 100, models.PaymentStatusPaid),
		payment("2024-02-01", 200, models.PaymentStatusPending),
	}

	out := Reconcile(entries, payments)
	require.Len(t, out, 1)
	assert.Equal(t, 100.0, out[0].Amount)
}

func TestReconcileAmountFallsBackToMatchedPayment(t *testing.T) {
	// Positional amount missing: the matched payment's amount is shown.
	entries := Parse("01-01-2024, 01-02-2024", "250")
	payments := []*models.Payment{
		payment("2024-01-01", 250, models.PaymentStatusPaid),
		payment("2024-02-01", 275, models.PaymentStatusPending),
	}

	out := Reconcile(entries, payments)
	require.Len(t, out, 2)
	assert.Equal(t, 250.0, out[0].Amount)
	assert.Equal(t, 275.0, out[1].Amount)
}

func TestSumMatchesTotal(t *testing.T) {
	payments := []*models.Payment{
		payment("2024-01-01", 1000, models.PaymentStatusPaid),
		payment("2024-07-01", 1000, models.PaymentStatusPending),
	}

	assert.True(t, SumMatchesTotal(payments, 2000))
	assert.True(t, SumMatchesTotal(payments, 2000.009))
	assert.False(t, SumMatchesTotal(payments, 2000.02))
	assert.False(t, SumMatchesTotal(payments, 1900))
}
