package importer

import (
	"strings"
)

// KeySet holds the natural keys of already-persisted rows, prefixed by
// label (e.g. "client|email|a@b.c"). Services build it from the tenant's
// current dataset before an import run.
type KeySet map[string]struct{}

func (k KeySet) Add(key string) {
	if key != "" {
		k[key] = struct{}{}
	}
}

func (k KeySet) Has(key string) bool {
	_, ok := k[key]
	return ok
}

// Result is the advisory outcome for one imported record.
type Result struct {
	Index        int     `json:"index"`
	Label        string  `json:"label"`
	Confidence   float64 `json:"confidence"`
	Duplicate    bool    `json:"duplicate"`
	DuplicateKey string  `json:"duplicate_key,omitempty"`
}

// NaturalKeys returns the composite keys used for duplicate flagging:
// name+location for properties, email/phone/id-number for clients and
// customers, client+property+unit for contracts. Labels without a natural
// key return nothing and are never flagged.
func NaturalKeys(label string, record Record) []string {
	get := func(names ...string) string {
		for _, n := range names {
			for field, v := range record {
				if normalizeField(field) == n {
					return strings.ToLower(strings.TrimSpace(v))
				}
			}
		}
		return ""
	}

	var keys []string
	add := func(kind, value string) {
		if value != "" {
			keys = append(keys, label+"|"+kind+"|"+value)
		}
	}

	switch label {
	case LabelProperty:
		name := get("name", "property", "property_name")
		loc := get("location", "address", "city")
		if name != "" {
			add("name_location", name+"+"+loc)
		}
	case LabelClient, LabelCustomer:
		add("email", get("email"))
		add("phone", get("phone", "mobile"))
		add("id_number", get("id_number", "national_id"))
	case LabelContract:
		client := get("client", "client_name", "tenant")
		property := get("property", "property_name")
		unit := get("unit", "unit_number")
		if client != "" && property != "" && unit != "" {
			add("client_property_unit", client+"+"+property+"+"+unit)
		}
	}
	return keys
}

// Analyze classifies every record and flags likely duplicates against the
// existing key set and against earlier records in the same batch. False
// positives and negatives are expected; the caller surfaces flags for
// manual confirmation.
func Analyze(c *Classifier, records []Record, existing KeySet) []Result {
	if existing == nil {
		existing = KeySet{}
	}
	seen := KeySet{}

	results := make([]Result, len(records))
	for i, rec := range records {
		label, confidence := c.Classify(rec)
		res := Result{Index: i, Label: label, Confidence: confidence}

		for _, key := range NaturalKeys(label, rec) {
			if existing.Has(key) || seen.Has(key) {
				res.Duplicate = true
				res.DuplicateKey = key
				break
			}
		}
		for _, key := range NaturalKeys(label, rec) {
			seen.Add(key)
		}
		results[i] = res
	}
	return results
}
