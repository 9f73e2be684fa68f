package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestShortID(t *testing.T) {
	t.Parallel()

	a, b := ShortID(), ShortID()
	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}

func TestDateRef(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-10", DateRef(instant, nil))

	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "2024-03-11", DateRef(instant, tokyo))
}

func TestParseDateRef(t *testing.T) {
	t.Parallel()

	got, err := ParseDateRef(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)

	_, err = ParseDateRef("2023-02-29")
	assert.Error(t, err)
	_, err = ParseDateRef("today")
	assert.Error(t, err)
}

func TestPreviousDateRef(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-02-29", PreviousDateRef("2024-03-01"))
	assert.Equal(t, "2023-12-31", PreviousDateRef("2024-01-01"))
	assert.Empty(t, PreviousDateRef(""))
}

func TestLoadLocation(t *testing.T) {
	t.Parallel()

	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = LoadLocation("Mars/Olympus")
	assert.Error(t, err)
}
