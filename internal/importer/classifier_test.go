package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyByFieldNames(t *testing.T) {
	c := DefaultClassifier()

	cases := []struct {
		name   string
		record Record
		want   string
	}{
		{
			"contract shape",
			Record{"client": "Ali", "start_date": "2024-01-01", "end_date": "2024-12-31", "payment_dates": "01-01-2024", "rent": "12000"},
			LabelContract,
		},
		{
			"client shape",
			Record{"name": "Sara", "email": "s@example.com", "phone": "555", "id_number": "A-9"},
			LabelClient,
		},
		{
			"payment shape",
			Record{"due_date": "2024-02-01", "paid_date": "2024-02-03", "check_number": "114"},
			LabelPayment,
		},
		{
			"exchange shape",
			Record{"vault": "main", "currency": "USD", "rate": "3.67"},
			LabelExchange,
		},
		{
			"spaced headers normalize",
			Record{"Due Date": "2024-02-01", "Paid Date": "", "Check Number": "9"},
			LabelPayment,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			label, confidence := c.Classify(tc.record)
			assert.Equal(t, tc.want, label)
			assert.Greater(t, confidence, 0.0)
			assert.LessOrEqual(t, confidence, 1.0)
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	label, confidence := DefaultClassifier().Classify(Record{"foo": "1", "bar": "2"})
	assert.Equal(t, LabelUnknown, label)
	assert.Zero(t, confidence)
}

func TestClassifyTieBreaksByDeclarationOrder(t *testing.T) {
	c := NewClassifier([]Rule{
		{"alpha", "first", 1},
		{"alpha", "second", 1},
	})
	label, _ := c.Classify(Record{"alpha": "x"})
	assert.Equal(t, "first", label)
}

func TestAnalyzeFlagsDuplicates(t *testing.T) {
	c := DefaultClassifier()
	existing := KeySet{}
	existing.Add("client|email|sara@example.com")

	records := []Record{
		{"name": "Sara", "email": "Sara@Example.com", "phone": "555", "id_number": ""},
		{"name": "Omar", "email": "omar@example.com", "phone": "777", "id_number": ""},
		{"name": "Omar again", "email": "omar@example.com", "phone": "999", "id_number": ""},
	}

	results := Analyze(c, records, existing)
	require.Len(t, results, 3)

	// Against the persisted dataset, case-insensitively.
	assert.True(t, results[0].Duplicate)
	assert.True(t, strings.HasPrefix(results[0].DuplicateKey, "client|email|"))
	// First occurrence in the batch is clean.
	assert.False(t, results[1].Duplicate)
	// Second occurrence within the same batch is flagged.
	assert.True(t, results[2].Duplicate)
}

func TestAnalyzePropertyNaturalKey(t *testing.T) {
	c := DefaultClassifier()
	records := []Record{
		{"property_name": "Marina Tower", "location": "Dubai", "floors": "12"},
		{"property_name": "Marina Tower", "location": "Dubai", "floors": "12"},
		{"property_name": "Marina Tower", "location": "Abu Dhabi", "floors": "8"},
	}

	results := Analyze(c, records, nil)
	require.Len(t, results, 3)
	assert.False(t, results[0].Duplicate)
	assert.True(t, results[1].Duplicate)
	// Same name, different location: not a duplicate.
	assert.False(t, results[2].Duplicate)
}
