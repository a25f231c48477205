package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-04-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, 0, d.Hour())
}

func TestParseDateRejectsDisplayForm(t *testing.T) {
	_, err := ParseDate("01-04-2024")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	at := time.Date(2024, 6, 15, 17, 42, 9, 123, Location)
	midnight := StartOfDay(at)

	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, 0, midnight.Minute())
	assert.Equal(t, 0, midnight.Second())
	assert.Equal(t, at.Day(), midnight.Day())
	assert.True(t, midnight.Before(at))
}

func TestSetLocationKeepsCurrentOnUnknownName(t *testing.T) {
	orig := Location
	defer func() { Location = orig }()

	SetLocation("Not/AZone")
	assert.Equal(t, orig, Location)

	SetLocation("UTC")
	assert.Equal(t, time.UTC, Location)
}
