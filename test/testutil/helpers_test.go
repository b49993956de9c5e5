package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTestJSON(t *testing.T) {
	data := LoadTestJSON(t, "amadeus_offers_response.json")
	require.NotEmpty(t, data)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Contains(t, payload, "data")
}

func TestMustParseTime(t *testing.T) {
	parsed := MustParseTime(t, "2026-09-10T08:00:00Z")
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.September, parsed.Month())
	assert.Equal(t, 8, parsed.Hour())
}

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2026-09-10")
	assert.Equal(t, 10, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
}

func TestPtr(t *testing.T) {
	v := Ptr(42)
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)

	s := Ptr("offer")
	assert.Equal(t, "offer", *s)
}
