package importer

import (
	"strings"
)

// Record is one incoming row, field name to raw value. Both spreadsheet and
// JSON imports are flattened into this shape before classification.
type Record map[string]string

// Rule scores one keyword toward one entity label.
type Rule struct {
	Keyword string
	Label   string
	Weight  float64
}

// Classifier is a weighted keyword scorer over a fixed label set. It is a
// heuristic: results are advisory and surfaced for manual confirmation,
// never hard blocks.
type Classifier struct {
	rules  []Rule
	labels []string // declaration order, used to break score ties
}

// Import labels
const (
	LabelProperty    = "property"
	LabelUnit        = "unit"
	LabelClient      = "client"
	LabelContract    = "contract"
	LabelPayment     = "payment"
	LabelMaintenance = "maintenance_request"
	LabelCustomer    = "customer"
	LabelSupplier    = "supplier"
	LabelExchange    = "exchange_transaction"
	LabelUnknown     = "unknown"
)

// NewClassifier builds a classifier from a rule table. Label precedence for
// ties follows the first appearance of each label in the table.
func NewClassifier(rules []Rule) *Classifier {
	c := &Classifier{rules: rules}
	seen := map[string]bool{}
	for _, r := range rules {
		if !seen[r.Label] {
			seen[r.Label] = true
			c.labels = append(c.labels, r.Label)
		}
	}
	return c
}

// DefaultClassifier returns the stock rule table tuned for the entities this
// system imports.
func DefaultClassifier() *Classifier {
	return NewClassifier([]Rule{
		{"property", LabelProperty, 3},
		{"building", LabelProperty, 2},
		{"location", LabelProperty, 1},
		{"floors", LabelProperty, 1},

		{"unit", LabelUnit, 2},
		{"floor", LabelUnit, 1},
		{"unit_type", LabelUnit, 3},

		{"client", LabelClient, 3},
		{"tenant", LabelClient, 3},
		{"email", LabelClient, 1},
		{"phone", LabelClient, 1},
		{"id_number", LabelClient, 2},

		{"contract", LabelContract, 3},
		{"lease", LabelContract, 3},
		{"start_date", LabelContract, 1},
		{"end_date", LabelContract, 1},
		{"rent", LabelContract, 2},
		{"payment_dates", LabelContract, 3},

		{"payment", LabelPayment, 3},
		{"due_date", LabelPayment, 2},
		{"paid_date", LabelPayment, 3},
		{"check_number", LabelPayment, 2},
		{"bank", LabelPayment, 1},

		{"maintenance", LabelMaintenance, 3},
		{"repair", LabelMaintenance, 2},
		{"priority", LabelMaintenance, 1},

		{"customer", LabelCustomer, 3},

		{"supplier", LabelSupplier, 3},
		{"company", LabelSupplier, 1},

		{"exchange", LabelExchange, 3},
		{"currency", LabelExchange, 2},
		{"rate", LabelExchange, 2},
		{"vault", LabelExchange, 2},
	})
}

// Classify scores a record's field names against the rule table and returns
// the winning label with a 0..1 confidence (winning score over total score).
// Records that hit no rule come back as unknown with zero confidence. Ties
// go to the label declared first in the table.
func (c *Classifier) Classify(record Record) (string, float64) {
	scores := map[string]float64{}
	var total float64

	for field := range record {
		f := normalizeField(field)
		for _, r := range c.rules {
			if strings.Contains(f, r.Keyword) {
				scores[r.Label] += r.Weight
				total += r.Weight
			}
		}
	}

	if total == 0 {
		return LabelUnknown, 0
	}

	best := ""
	var bestScore float64
	for _, label := range c.labels {
		if s := scores[label]; s > bestScore {
			best = label
			bestScore = s
		}
	}
	return best, bestScore / total
}

func normalizeField(field string) string {
	f := strings.ToLower(strings.TrimSpace(field))
	f = strings.ReplaceAll(f, " ", "_")
	f = strings.ReplaceAll(f, "-", "_")
	return f
}
