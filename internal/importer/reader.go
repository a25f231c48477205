package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX flattens the first sheet of a workbook into records, using the
// first row as field names. Blank rows are skipped.
func ReadXLSX(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headers := rows[0]
	var records []Record
	for _, row := range rows[1:] {
		rec := Record{}
		empty := true
		for i, h := range headers {
			if h == "" {
				continue
			}
			var v string
			if i < len(row) {
				v = strings.TrimSpace(row[i])
			}
			if v != "" {
				empty = false
			}
			rec[h] = v
		}
		if !empty {
			records = append(records, rec)
		}
	}
	return records, nil
}

// ReadJSON accepts an array of flat objects and stringifies every value, so
// numbers and booleans classify the same way spreadsheet cells do.
func ReadJSON(r io.Reader) ([]Record, error) {
	var raw []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON import payload: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for _, obj := range raw {
		rec := Record{}
		for k, v := range obj {
			switch val := v.(type) {
			case nil:
				rec[k] = ""
			case string:
				rec[k] = val
			case float64:
				rec[k] = trimFloat(val)
			case bool:
				if val {
					rec[k] = "true"
				} else {
					rec[k] = "false"
				}
			default:
				b, _ := json.Marshal(val)
				rec[k] = string(b)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
