package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/format"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/selection"
	"tableflip.dev/datepick/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestSelectionJSON(t *testing.T) {
	e := picker.New(format.YYYYMMDD, time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC),
		picker.WithCalendar(calendar.New(time.UTC)))
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	require.NoError(t, pp.SelectionJSON(e.Selection()))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "2025/03/15", got["formatted"])
	require.Equal(t, []interface{}{"year", "month", "day"}, got["components"])
	require.Equal(t, map[string]interface{}{"year": 2025.0, "month": 3.0, "day": 15.0}, got["fields"])
}

func TestSelection(t *testing.T) {
	e := picker.New(format.DDMMYYYYHHmm, time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC),
		picker.WithCalendar(calendar.New(time.UTC)))
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Selection(e.Selection())
	require.Equal(t, "15/03/2025 09:30  (year, month, day, hour, minute)\n", buf.String())
}

func TestRecords(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Records()
	require.Contains(t, buf.String(), "none")

	buf.Reset()
	pp.ShowID = true
	pp.Records(&store.Record{ID: "abc", Formatted: "2025/03/15", Format: "yyyyMMdd", Created: time.Now()})
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "abc "))
	require.Contains(t, out, "2025/03/15 yyyyMMdd, picked ")
}

func TestMonth(t *testing.T) {
	cal := calendar.New(time.UTC)
	var buf bytes.Buffer
	b := selection.Bounds{Min: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)}
	(&PrettyPrint{Out: &buf}).Month(cal, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), b)

	lines := strings.Split(buf.String(), "\n")
	require.Contains(t, lines[0], "February 2024")
	// February 2024 starts on a Thursday.
	require.True(t, strings.HasPrefix(lines[1], strings.Repeat(" ", 12)+" 1 "), lines[1])
	require.Contains(t, buf.String(), "29")
}
