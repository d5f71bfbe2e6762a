package adherence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeDistribution_SkipsMalformedRecords(t *testing.T) {
	points := TimeDistribution(sampleRecords(), time.UTC)

	// "25:99" y "not-a-date" quedan fuera
	require.Len(t, points, 5)

	first := points[0]
	assert.Equal(t, "Aspirin", first.Name)
	assert.Equal(t, "2024-03-01", first.Date)
	assert.Equal(t, 8.0, first.Hour)
	assert.Equal(t, CategoryOnTime, first.Category)

	assert.InDelta(t, 8+40.0/60, points[1].Hour, 1e-9)
	assert.Equal(t, CategoryLate, points[1].Category)
	assert.InDelta(t, 9.25, points[4].Hour, 1e-9)
}

func TestTimeDistribution_Empty(t *testing.T) {
	assert.Empty(t, TimeDistribution(nil, time.UTC))
}

func TestParseClock(t *testing.T) {
	valid := map[string][2]int{
		"00:00":   {0, 0},
		"8:05":    {8, 5},
		"23:59":   {23, 59},
		" 07:30 ": {7, 30},
	}
	for in, want := range valid {
		h, m, ok := ParseClock(in)
		require.Truef(t, ok, "ParseClock(%q)", in)
		assert.Equal(t, want[0], h)
		assert.Equal(t, want[1], m)
	}

	for _, in := range []string{"", "24:00", "12:60", "7", "07:5", "aa:bb", "-1:30", "+1:30", "12:30:00"} {
		_, _, ok := ParseClock(in)
		assert.Falsef(t, ok, "ParseClock(%q) should fail", in)
	}
}

func TestParseLocalDate(t *testing.T) {
	d, ok := ParseLocalDate("2024-03-01", zoneBehind)
	require.True(t, ok)
	assert.Equal(t, "2024-03-01", ISODate(d))
	assert.Equal(t, zoneBehind, d.Location())

	d, ok = ParseLocalDate("2024-03-01T01:00:00Z", zoneBehind)
	require.True(t, ok)
	assert.Equal(t, "2024-02-29", ISODate(d))

	_, ok = ParseLocalDate("yesterday", time.UTC)
	assert.False(t, ok)
}
