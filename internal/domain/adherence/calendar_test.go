package adherence

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	zoneAhead  = time.FixedZone("UTC+9", 9*60*60)
	zoneBehind = time.FixedZone("UTC-5", -5*60*60)
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 1, 29}, // febrero bisiesto
		{2023, 1, 28},
		{1900, 1, 28},
		{2000, 1, 29},
		{2024, 0, 31},
		{2024, 3, 30},
		{2024, 11, 31},
	}
	for _, c := range cases {
		got, err := DaysInMonth(c.year, c.month)
		require.NoError(t, err)
		assert.Equalf(t, c.want, got, "DaysInMonth(%d, %d)", c.year, c.month)
	}
}

func TestFirstWeekday_AcrossYearBoundary(t *testing.T) {
	dec, err := FirstWeekday(2024, 11)
	require.NoError(t, err)
	assert.Equal(t, 0, dec) // 2024-12-01 domingo

	jan, err := FirstWeekday(2025, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, jan) // 2025-01-01 miércoles
}

func TestProjectCalendar_InvalidMonthIndex(t *testing.T) {
	for _, m := range []int{-1, 12, 99} {
		_, err := ProjectCalendar(nil, 2024, m, time.UTC)
		require.Error(t, err)
		assert.Truef(t, errors.Is(err, ErrInvalidMonthIndex), "month %d: %v", m, err)
	}
}

func TestProjectCalendar_NegativeYear(t *testing.T) {
	_, err := ProjectCalendar(nil, -1, 0, time.UTC)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidYear))
}

func TestProjectCalendar_LeapFebruary(t *testing.T) {
	cal, err := ProjectCalendar(nil, 2024, 1, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 29, cal.DaysInMonth)
	assert.Len(t, cal.Days, 29)
	assert.Equal(t, 4, cal.FirstWeekdayOffset) // 2024-02-01 jueves
	assert.Equal(t, "2024-02-29", cal.Days[28].ISODate)
}

func TestProjectCalendar_CellsAreUniqueAndIncreasing(t *testing.T) {
	for month := 0; month < 12; month++ {
		cal, err := ProjectCalendar(sampleRecords(), 2024, month, time.UTC)
		require.NoError(t, err)
		require.Len(t, cal.Days, cal.DaysInMonth)

		seen := map[string]bool{}
		for i, d := range cal.Days {
			assert.False(t, seen[d.ISODate], "duplicated date %s", d.ISODate)
			seen[d.ISODate] = true
			assert.Equal(t, i+1, d.Day)
			assert.Equal(t, d.RecordCount, len(d.Records))
			if i > 0 {
				assert.Less(t, cal.Days[i-1].ISODate, d.ISODate)
			}
		}
	}
}

func TestProjectCalendar_EmptyInput(t *testing.T) {
	cal, err := ProjectCalendar([]DoseRecord{}, 2024, 2, time.UTC)
	require.NoError(t, err)

	assert.Len(t, cal.Days, 31)
	for _, d := range cal.Days {
		assert.Equal(t, 0, d.RecordCount)
		assert.Equal(t, CategoryNone, d.DominantStatus)
		assert.Empty(t, d.Records)
	}
}

func TestProjectCalendar_MissedDominates(t *testing.T) {
	records := []DoseRecord{
		{Name: "A", Date: "2024-03-05", Time: "08:00", Status: "On time"},
		{Name: "B", Date: "2024-03-05", Time: "09:00", Status: "Missed"},
		{Name: "C", Date: "2024-03-06", Time: "09:00", Status: "Late"},
		{Name: "D", Date: "2024-03-06", Time: "10:00", Status: "taken"},
		{Name: "E", Date: "2024-03-07", Time: "10:00", Status: "taken"},
		{Name: "F", Date: "2024-03-08", Time: "10:00", Status: "skipped"},
	}

	cal, err := ProjectCalendar(records, 2024, 2, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, CategoryMissed, cal.Days[4].DominantStatus)
	assert.Equal(t, CategoryLate, cal.Days[5].DominantStatus)
	assert.Equal(t, CategoryOnTime, cal.Days[6].DominantStatus)
	assert.Equal(t, CategoryNone, cal.Days[7].DominantStatus)
	assert.Equal(t, 1, cal.Days[7].RecordCount, "unclassified records still count")
	assert.Equal(t, CategoryNone, cal.Days[8].DominantStatus)
}

func TestProjectCalendar_PreservesRelativeOrder(t *testing.T) {
	records := []DoseRecord{
		{Name: "first", Date: "2024-03-10", Status: "Late"},
		{Name: "other-day", Date: "2024-03-11", Status: "Late"},
		{Name: "second", Date: "2024-03-10", Status: "On time"},
		{Name: "third", Date: "2024-03-10T07:30:00Z", Status: "Missed"},
	}

	cal, err := ProjectCalendar(records, 2024, 2, time.UTC)
	require.NoError(t, err)

	want := []DoseRecord{records[0], records[2], records[3]}
	if diff := cmp.Diff(want, cal.Days[9].Records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, StatusTally{OnTime: 1, Late: 1, Missed: 1}, cal.Days[9].Tally)
}

// Una fecha "2024-03-01" nunca debe caer en el 29 de febrero por pasar por UTC.
func TestProjectCalendar_DateOnlyIsNotUTCShifted(t *testing.T) {
	records := []DoseRecord{{Name: "Aspirin", Date: "2024-03-01", Time: "00:30", Status: "On time"}}

	for _, loc := range []*time.Location{zoneAhead, zoneBehind, time.UTC} {
		march, err := ProjectCalendar(records, 2024, 2, loc)
		require.NoError(t, err)
		assert.Equalf(t, 1, march.Days[0].RecordCount, "zone %s: record missing from March 1", loc)
		assert.Equal(t, CategoryOnTime, march.Days[0].DominantStatus)

		feb, err := ProjectCalendar(records, 2024, 1, loc)
		require.NoError(t, err)
		assert.Equalf(t, 0, feb.Days[28].RecordCount, "zone %s: record leaked into February 29", loc)
	}
}

func TestProjectCalendar_TimestampsUseLocalDay(t *testing.T) {
	// 2024-02-29 20:00 UTC es 2024-03-01 05:00 en UTC+9
	records := []DoseRecord{{Name: "Aspirin", Date: "2024-02-29T20:00:00Z", Status: "Late"}}

	march, err := ProjectCalendar(records, 2024, 2, zoneAhead)
	require.NoError(t, err)
	assert.Equal(t, 1, march.Days[0].RecordCount)

	feb, err := ProjectCalendar(records, 2024, 1, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 1, feb.Days[28].RecordCount)
}

func TestProjectCalendar_OtherYearsAndBadDatesAreIgnored(t *testing.T) {
	records := []DoseRecord{
		{Date: "2023-03-01", Status: "Missed"},
		{Date: "2024-03-01", Status: "On time"},
		{Date: "03/01/2024", Status: "Missed"},
		{Date: "", Status: "Missed"},
	}

	cal, err := ProjectCalendar(records, 2024, 2, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 1, cal.Days[0].RecordCount)
	assert.Equal(t, CategoryOnTime, cal.Days[0].DominantStatus)
}

func TestMonthCalendar_DailyRates(t *testing.T) {
	records := []DoseRecord{
		{Date: "2024-03-01", Status: "On time"},
		{Date: "2024-03-01", Status: "Missed"},
		{Date: "2024-03-02", Status: "taken"},
	}
	cal, err := ProjectCalendar(records, 2024, 2, time.UTC)
	require.NoError(t, err)

	rates := cal.DailyRates()
	require.Len(t, rates, 31)
	assert.Equal(t, 50.0, rates[0])
	assert.Equal(t, 100.0, rates[1])
	assert.Equal(t, 0.0, rates[2])
}

func TestAggregator_DefaultsToCurrentMonth(t *testing.T) {
	agg := NewAggregator(zoneAhead)
	// 2024-02-29 18:00 UTC ya es 1 de marzo en UTC+9
	agg.now = func() time.Time { return time.Date(2024, 2, 29, 18, 0, 0, 0, time.UTC) }

	y, m := agg.CurrentMonth()
	assert.Equal(t, 2024, y)
	assert.Equal(t, 2, m)

	cal, err := agg.ProjectCalendar(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 31, cal.DaysInMonth)

	feb := 1
	cal, err = agg.ProjectCalendar(nil, nil, &feb)
	require.NoError(t, err)
	assert.Equal(t, 29, cal.DaysInMonth)
}
