package schedule

import (
	"math"
	"sort"

	"rental-backend/internal/models"
)

// EffectivePayment is the transient, derived record combining a contract's
// declared schedule slot with any matched persisted payment. It is
// recomputed on every read and never stored.
type EffectivePayment struct {
	// DueDate is always the original contract token, never the matched
	// payment's own due date, so a partial schedule edit does not surprise
	// the user with a reformatted date.
	DueDate  string          `json:"due_date"`
	Amount   float64         `json:"amount"`
	Status   string          `json:"status"`
	PaidDate *string         `json:"paid_date,omitempty"`
	Matched  *models.Payment `json:"payment,omitempty"`
}

// Reconcile aligns each schedule entry with at most one persisted payment.
// Two passes per entry, in this order:
//
//  1. match-by-date: the first payment whose stored due date equals either
//     the canonical form or the original token (legacy rows exist in both
//     formats);
//  2. match-by-index: the payment at the entry's position among the
//     due-date-sorted payments that no entry matched by date.
//
// Schedules are edited independently of payment rows, so exact-date
// matching is preferred but index alignment keeps statuses attached after
// a due-date string edit. A payment claimed by date is excluded from the
// index fallback, so a single paid row never also marks an earlier slot
// paid. Duplicate date tokens may both match the same payment; that
// duplication is accepted, not deduplicated. Payments with no schedule
// slot are simply not surfaced.
func Reconcile(entries []Entry, payments []*models.Payment) []EffectivePayment {
	sorted := make([]*models.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate < sorted[j].DueDate
	})

	byDate := make([]*models.Payment, len(entries))
	claimed := make(map[*models.Payment]bool, len(sorted))
	for i, e := range entries {
		for _, p := range sorted {
			if p.DueDate == e.Canonical || p.DueDate == e.DateToken {
				byDate[i] = p
				claimed[p] = true
				break
			}
		}
	}
	remainder := make([]*models.Payment, 0, len(sorted))
	for _, p := range sorted {
		if !claimed[p] {
			remainder = append(remainder, p)
		}
	}

	out := make([]EffectivePayment, 0, len(entries))
	for i, e := range entries {
		match := byDate[i]
		if match == nil && e.Index < len(remainder) {
			match = remainder[e.Index]
		}

		ep := EffectivePayment{
			DueDate: e.DateToken,
			Status:  models.PaymentStatusPending,
		}
		if match != nil {
			ep.Status = match.Status
			ep.PaidDate = match.PaidDate
			ep.Matched = match
		}

		switch {
		case !math.IsNaN(e.Amount):
			ep.Amount = e.Amount
		case match != nil:
			ep.Amount = match.Amount
		default:
			ep.Amount = 0
		}

		out = append(out, ep)
	}
	return out
}

// SumTolerance is the floating-point slack allowed between a contract's
// total rent and the sum of its payment amounts.
const SumTolerance = 0.01

// SumMatchesTotal reports whether the payment amounts add up to the
// contract total within SumTolerance.
func SumMatchesTotal(payments []*models.Payment, total float64) bool {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return math.Abs(sum-total) <= SumTolerance
}
