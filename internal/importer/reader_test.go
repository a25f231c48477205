package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadJSONStringifiesValues(t *testing.T) {
	payload := `[
		{"name": "Marina Tower", "floors": 12, "furnished": true, "notes": null},
		{"name": "Harbor View", "floors": 4.5, "furnished": false}
	]`

	records, err := ReadJSON(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Marina Tower", records[0]["name"])
	assert.Equal(t, "12", records[0]["floors"])
	assert.Equal(t, "true", records[0]["furnished"])
	assert.Equal(t, "", records[0]["notes"])
	assert.Equal(t, "4.5", records[1]["floors"])
	assert.Equal(t, "false", records[1]["furnished"])
}

func TestReadJSONRejectsNonArray(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"name": "x"}`))
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"name", "location", "floors"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Marina Tower", "Downtown", 12}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"", "", ""}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]interface{}{"Harbor View", "Pier 3", 4}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	records, err := ReadXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Marina Tower", records[0]["name"])
	assert.Equal(t, "Downtown", records[0]["location"])
	assert.Equal(t, "12", records[0]["floors"])
	assert.Equal(t, "Harbor View", records[1]["name"])
}

func TestReadXLSXHeaderOnly(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"name"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	records, err := ReadXLSX(&buf)
	require.NoError(t, err)
	assert.Nil(t, records)
}
