package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := map[string]Clock{
		"09:05":    {Hour: 9, Minute: 5},
		"23:59":    {Hour: 23, Minute: 59},
		"00:00":    {Hour: 0, Minute: 0},
		"14:30:45": {Hour: 14, Minute: 30}, // seconds are discarded
	}
	for input, want := range cases {
		got, err := ParseClock(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, input := range []string{"", "25:00", "9am", "12:60", "noon"} {
		_, err := ParseClock(input)
		assert.Error(t, err, input)
	}
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "09:05", Clock{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "00:00", Clock{}.String())
}

func TestClockOn(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	ts := Clock{Hour: 14, Minute: 30}.On(day)
	assert.Equal(t, time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC), ts)
}

func TestClockScanRoundTrip(t *testing.T) {
	c := Clock{Hour: 15, Minute: 4}
	value, err := c.Value()
	require.NoError(t, err)

	var scanned Clock
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, c, scanned)
}

func TestClockScanBytes(t *testing.T) {
	var c Clock
	require.NoError(t, c.Scan([]byte("08:15")))
	assert.Equal(t, Clock{Hour: 8, Minute: 15}, c)
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("somewhere", -5*3600)
	ts := time.Date(2024, 3, 15, 23, 45, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), DateOf(ts))
}
