package set

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/format"
	"tableflip.dev/datepick/pkg/picker"
)

func init() {
	color.NoColor = true
}

func newEngine(code format.Code, initial time.Time) *picker.Engine {
	return picker.New(code, initial, picker.WithCalendar(calendar.New(time.UTC)))
}

func TestParseEdits(t *testing.T) {
	edits, err := ParseEdits([]string{"year=2023", " Month = 2 ", "ampm=pm"})
	require.NoError(t, err)
	require.Equal(t, []Edit{
		{Kind: format.Year, Value: "2023"},
		{Kind: format.Month, Value: "2"},
		{Kind: format.AmPm, Value: "pm"},
	}, edits)
	require.Equal(t, "month=2", edits[1].String())

	for _, bad := range []string{"year", "year=", "week=3"} {
		_, err := ParseEdits([]string{bad})
		require.Error(t, err, bad)
	}
}

func TestLeapDayYearEdit(t *testing.T) {
	var buf bytes.Buffer
	s := Set{
		Engine: newEngine(format.DDMMYYYYHHmm, time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)),
		Edits:  []Edit{{Kind: format.Year, Value: "2023"}},
		Trace:  true,
		Out:    &buf,
	}
	require.NoError(t, s.Do(context.Background()))
	require.Equal(t, time.Date(2023, time.February, 28, 23, 59, 0, 0, time.UTC), s.Engine.Selected())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "year=2023:")
	require.Contains(t, lines[0], "reload(0)")
	require.Equal(t, "28/02/2023 23:59  (year, month, day, hour, minute)", lines[1])
}

func TestTwelveHourEdits(t *testing.T) {
	var buf bytes.Buffer
	s := Set{
		Engine: newEngine(format.YYYYMMDDhhmmA, time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)),
		Edits: []Edit{
			{Kind: format.Hour, Value: "12"},
			{Kind: format.AmPm, Value: "PM"},
			{Kind: format.Minute, Value: "5"},
		},
		Out: &buf,
	}
	require.NoError(t, s.Do(context.Background()))
	require.Equal(t, time.Date(2025, time.March, 15, 12, 5, 0, 0, time.UTC), s.Engine.Selected())
	require.True(t, strings.HasPrefix(buf.String(), "2025/03/15 12:05 PM"))
}

func TestEditErrors(t *testing.T) {
	s := Set{
		Engine: newEngine(format.DDMMYYYY, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)),
		Edits:  []Edit{{Kind: format.Hour, Value: "3"}},
		Out:    &bytes.Buffer{},
	}
	require.ErrorContains(t, s.Do(context.Background()), "has no hour column")

	s.Edits = []Edit{{Kind: format.Day, Value: "32"}}
	require.ErrorContains(t, s.Do(context.Background()), "outside the column range 01–31")
}

func TestJSONAndCalendar(t *testing.T) {
	var buf bytes.Buffer
	s := Set{
		Engine: newEngine(format.YYYYMMDD, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)),
		Edits:  []Edit{{Kind: format.Month, Value: "4"}},
		JSON:   true,
		Out:    &buf,
	}
	require.NoError(t, s.Do(context.Background()))
	require.Contains(t, buf.String(), `"formatted":"2025/04/15"`)

	buf.Reset()
	s.JSON = false
	s.Calendar = true
	s.Edits = nil
	require.NoError(t, s.Do(context.Background()))
	require.Contains(t, buf.String(), "April 2025")
}
