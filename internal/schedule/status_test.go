package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rental-backend/internal/models"
	"rental-backend/internal/timeutil"
)

func TestNextStatus(t *testing.T) {
	today, err := timeutil.ParseDate("2024-06-15")
	if err != nil {
		t.Fatalf("parse today: %v", err)
	}

	cases := []struct {
		name   string
		status string
		due    string
		want   string
	}{
		{"scheduled before due stays scheduled", models.PaymentStatusScheduled, "2024-07-01", models.PaymentStatusScheduled},
		{"scheduled becomes pending on due day", models.PaymentStatusScheduled, "2024-06-15", models.PaymentStatusPending},
		{"scheduled becomes pending after due day", models.PaymentStatusScheduled, "2024-06-01", models.PaymentStatusPending},
		{"pending on due day stays pending", models.PaymentStatusPending, "2024-06-15", models.PaymentStatusPending},
		{"pending past due becomes overdue", models.PaymentStatusPending, "2024-06-14", models.PaymentStatusOverdue},
		{"display-format due date is canonicalized", models.PaymentStatusPending, "14-06-2024", models.PaymentStatusOverdue},
		{"paid never changes", models.PaymentStatusPaid, "2020-01-01", models.PaymentStatusPaid},
		{"overdue never changes", models.PaymentStatusOverdue, "2020-01-01", models.PaymentStatusOverdue},
		{"unparseable due date leaves status alone", models.PaymentStatusPending, "soon", models.PaymentStatusPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextStatus(tc.status, tc.due, today))
		})
	}
}

func TestNextStatusNormalizesTimeOfDay(t *testing.T) {
	// A "today" captured mid-afternoon must not push a same-day pending
	// payment into overdue.
	noon := time.Date(2024, 6, 15, 15, 30, 0, 0, timeutil.Location)
	got := NextStatus(models.PaymentStatusPending, "2024-06-15", noon)
	assert.Equal(t, models.PaymentStatusPending, got)
}
