package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocal(t *testing.T) {
	parsed, err := ParseLocal("2026-09-10T08:30:00")
	require.NoError(t, err)

	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.September, parsed.Month())
	assert.Equal(t, 10, parsed.Day())
	assert.Equal(t, 8, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestParseLocal_Invalid(t *testing.T) {
	_, err := ParseLocal("2026-09-10 08:30")
	assert.Error(t, err)

	_, err = ParseLocal("not-a-time")
	assert.Error(t, err)
}

func TestFormatLocal_RoundTrip(t *testing.T) {
	value := "2026-09-10T08:30:00"
	parsed, err := ParseLocal(value)
	require.NoError(t, err)
	assert.Equal(t, value, FormatLocal(parsed))
}

func TestFormatLocal_DropsZone(t *testing.T) {
	loc := time.FixedZone("TEST", 3*60*60)
	ts := time.Date(2026, time.September, 10, 8, 30, 0, 0, loc)
	assert.Equal(t, "2026-09-10T08:30:00", FormatLocal(ts))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, time.September, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-09-10", FormatDate(ts))
}
