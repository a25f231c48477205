package schedule

import (
	"time"

	"rental-backend/internal/models"
	"rental-backend/internal/timeutil"
)

// NextStatus rolls a payment's due status forward against today: scheduled
// becomes pending once the due date arrives, pending becomes overdue once
// the due date has passed. Paid and overdue never change here. A due date
// that cannot be parsed leaves the status alone.
func NextStatus(status, dueDate string, today time.Time) string {
	due, err := timeutil.ParseDate(CanonicalDate(dueDate))
	if err != nil {
		return status
	}
	due = timeutil.StartOfDay(due)
	today = timeutil.StartOfDay(today)

	switch status {
	case models.PaymentStatusScheduled:
		if !due.After(today) {
			return models.PaymentStatusPending
		}
	case models.PaymentStatusPending:
		if due.Before(today) {
			return models.PaymentStatusOverdue
		}
	}
	return status
}
