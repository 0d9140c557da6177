// Package selection converts between a picked instant and the row each
// picker column has selected.
package selection

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/format"
	"tableflip.dev/datepick/pkg/ranges"
)

// ErrInvalidComposite is returned by FromRows when the selected values do
// not form a date.
var ErrInvalidComposite = errors.New("selection: rows do not form a valid date")

// AM and PM are the rows of the AM/PM column.
const (
	AM = 0
	PM = 1
)

// Rows holds the selected row of every column kind. Kinds the active format
// does not show are ignored.
type Rows [format.KindCount]int

// Sync converts between instants and rows using a calendar.
type Sync struct {
	cal calendar.Calendar
}

// New returns a Sync for cal.
func New(cal calendar.Calendar) *Sync {
	return &Sync{cal: cal}
}

// To12Hour maps a 24 hour clock hour to the 12 hour dial.
func To12Hour(hour int) int {
	switch {
	case hour == 0:
		return 12
	case hour > 12:
		return hour - 12
	}
	return hour
}

// AmPmRow returns the AM/PM row for a 24 hour clock hour.
func AmPmRow(hour int) int {
	if hour < 12 {
		return AM
	}
	return PM
}

// From12Hour maps a 12 hour dial value and AM/PM row back to 0..23.
func From12Hour(hour, ampm int) int {
	switch {
	case ampm == PM && hour < 12:
		return hour + 12
	case ampm == AM && hour == 12:
		return 0
	}
	return hour
}

// ToRows finds the row of each of t's fields in the column ranges. A value
// missing from its range selects row 0.
func (s *Sync) ToRows(t time.Time, code format.Code, set ranges.Set) Rows {
	f := s.cal.Fields(t)
	twelve := code.HasAmPm()

	var rows Rows
	for _, k := range code.Columns() {
		var v int
		switch k {
		case format.Day:
			v = f.Day
		case format.Month:
			v = int(f.Month)
		case format.Year:
			v = f.Year
		case format.Hour:
			v = f.Hour
			if twelve {
				v = To12Hour(f.Hour)
			}
		case format.Minute:
			v = f.Minute
		case format.AmPm:
			v = AmPmRow(f.Hour)
		}
		rows[k] = indexOf(set.Values(k, twelve), v)
	}
	return rows
}

// FromRows resolves the instant the rows select. Fields the format does not
// show are taken from previous, and the day is pulled into the resolved
// month so year and month changes always land on a real date. When the
// calendar still rejects the result, previous is returned with an error
// wrapping ErrInvalidComposite.
func (s *Sync) FromRows(rows Rows, code format.Code, set ranges.Set, previous time.Time) (time.Time, error) {
	f := s.cal.Fields(previous)
	twelve := code.HasAmPm()

	var shown [format.KindCount]bool
	for _, k := range code.Columns() {
		shown[k] = true
	}

	if shown[format.Year] {
		f.Year = valueAt(set.Years, rows[format.Year], f.Year)
	}
	if shown[format.Month] {
		f.Month = time.Month(valueAt(set.Months, rows[format.Month], int(f.Month)))
	}
	if shown[format.Day] {
		f.Day = valueAt(set.Days, rows[format.Day], f.Day)
	}
	if shown[format.Hour] {
		if twelve {
			ampm := AmPmRow(f.Hour)
			if shown[format.AmPm] {
				ampm = clampRow(rows[format.AmPm], 2)
			}
			f.Hour = From12Hour(valueAt(set.Hours12, rows[format.Hour], To12Hour(f.Hour)), ampm)
		} else {
			f.Hour = valueAt(set.Hours24, rows[format.Hour], f.Hour)
		}
	}
	if shown[format.Minute] {
		f.Minute = valueAt(set.Minutes, rows[format.Minute], f.Minute)
	}

	if n := s.cal.DaysIn(f.Year, f.Month); f.Day > n {
		f.Day = n
	}

	t, err := s.cal.Compose(f)
	if err != nil {
		return previous, fmt.Errorf("%w: %v", ErrInvalidComposite, err)
	}
	return t, nil
}

func indexOf(values []int, v int) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return 0
}

func clampRow(row, n int) int {
	if row < 0 {
		return 0
	}
	if row >= n {
		return n - 1
	}
	return row
}

func valueAt(values []int, row int, fallback int) int {
	if len(values) == 0 {
		return fallback
	}
	return values[clampRow(row, len(values))]
}
