package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Entry is one parsed slot of a contract's payment schedule.
type Entry struct {
	Index     int
	DateToken string  // verbatim token from payment_dates
	Canonical string  // YYYY-MM-DD when normalization succeeded, else the original token
	Amount    float64 // NaN when the positional amount is missing or unparseable
}

// Parse converts a contract's raw comma-separated payment_dates and
// payment_amounts strings into ordered schedule entries. An empty or
// all-blank date string yields an empty schedule. Amounts are aligned by
// position and never dropped, so a blank or garbage amount token stays in
// place as NaN for downstream fallback handling.
func Parse(paymentDates, paymentAmounts string) []Entry {
	dates := splitDateTokens(paymentDates)
	if len(dates) == 0 {
		return nil
	}

	amounts := parseAmounts(paymentAmounts)

	entries := make([]Entry, len(dates))
	for i, tok := range dates {
		amt := math.NaN()
		if i < len(amounts) {
			amt = amounts[i]
		}
		entries[i] = Entry{
			Index:     i,
			DateToken: tok,
			Canonical: CanonicalDate(tok),
			Amount:    amt,
		}
	}
	return entries
}

func splitDateTokens(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func parseAmounts(s string) []float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	tokens := strings.Split(s, ",")
	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}

// CanonicalDate normalizes a due-date token to YYYY-MM-DD for matching.
// Supported inputs are DD-MM-YYYY, DD/MM/YYYY and ISO YYYY-MM-DD. Any other
// shape, or a component outside day 1..31 / month 1..12 / year > 1900,
// fails normalization and the original token is returned unchanged, which
// degrades matching to index-based only.
func CanonicalDate(token string) string {
	if d, m, y, ok := splitDateParts(token); ok {
		if !validDateParts(d, m, y) {
			return token
		}
		return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
	}
	return token
}

// splitDateParts recognizes the two display forms and ISO. For ISO input
// the year comes first, so the parts are swapped before returning.
func splitDateParts(token string) (day, month, year int, ok bool) {
	var parts []string
	switch {
	case strings.Count(token, "-") == 2:
		parts = strings.Split(token, "-")
	case strings.Count(token, "/") == 2:
		parts = strings.Split(token, "/")
	default:
		return 0, 0, 0, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}

	if len(parts[0]) == 4 {
		// ISO: YYYY-MM-DD
		return nums[2], nums[1], nums[0], true
	}
	return nums[0], nums[1], nums[2], true
}

func validDateParts(day, month, year int) bool {
	return day >= 1 && day <= 31 && month >= 1 && month <= 12 && year > 1900
}
