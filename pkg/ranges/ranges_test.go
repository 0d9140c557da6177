package ranges

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/format"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDays(t *testing.T) {
	g := New(calendar.New(time.UTC))
	require.Equal(t, span(1, 29), g.Days(2024, time.February))
	require.Equal(t, span(1, 28), g.Days(2023, time.February))
	require.Equal(t, span(1, 30), g.Days(2024, time.April))
	require.Len(t, g.Days(2024, time.July), 31)
}

func TestYears(t *testing.T) {
	g := New(calendar.New(time.UTC))
	now := date(2024, time.June, 1)

	tests := []struct {
		name     string
		min, max time.Time
		first    int
		last     int
		count    int
	}{
		{name: "unbounded", first: 1924, last: 2124, count: 201},
		{name: "both", min: date(2020, 1, 1), max: date(2030, 12, 31), first: 2020, last: 2030, count: 11},
		{name: "min only", min: date(2010, 5, 5), first: 2010, last: 2124, count: 115},
		{name: "max only", max: date(2025, 5, 5), first: 1924, last: 2025, count: 102},
		{name: "single year", min: date(2020, 1, 1), max: date(2020, 1, 1), first: 2020, last: 2020, count: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years := g.Years(now, tt.min, tt.max)
			require.Len(t, years, tt.count)
			require.Equal(t, tt.first, years[0])
			require.Equal(t, tt.last, years[len(years)-1])
		})
	}
}

func TestYearsCrossedBoundsIsEmpty(t *testing.T) {
	g := New(calendar.New(time.UTC))
	require.Empty(t, g.Years(date(2024, 1, 1), date(2030, 1, 1), date(2020, 1, 1)))
}

func TestWithSpan(t *testing.T) {
	g := New(calendar.New(time.UTC)).WithSpan(5)
	require.Equal(t, span(2019, 2029), g.Years(date(2024, 1, 1), time.Time{}, time.Time{}))
	require.Equal(t, 5, g.WithSpan(0).Span())
}

func TestConstantRanges(t *testing.T) {
	require.Equal(t, span(1, 12), Months())
	require.Equal(t, span(1, 12), Hours(true))
	require.Equal(t, span(0, 23), Hours(false))
	require.Equal(t, span(0, 59), Minutes())
}

func TestBuildValues(t *testing.T) {
	g := New(calendar.New(time.UTC))
	s := g.Build(date(2023, time.February, 10), time.Time{}, time.Time{})
	require.Equal(t, 28, s.Len(format.Day, false))
	require.Equal(t, 2023, s.DayYear)
	require.Equal(t, time.February, s.DayMonth)
	require.Equal(t, 24, s.Len(format.Hour, false))
	require.Equal(t, 12, s.Len(format.Hour, true))
	require.Equal(t, 2, s.Len(format.AmPm, true))
	require.Equal(t, 60, s.Len(format.Minute, false))
}
