// Package ranges computes the selectable values of each picker column.
package ranges

import (
	"time"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/format"
)

// DefaultYearSpan is how many years either side of the current year an
// unbounded year column offers.
const DefaultYearSpan = 100

// AmPmLabels are the rows of the AM/PM column.
var AmPmLabels = []string{"AM", "PM"}

// Set holds one value sequence per column kind.
type Set struct {
	Years   []int
	Months  []int
	Days    []int
	Hours24 []int
	Hours12 []int
	Minutes []int

	// DayYear and DayMonth identify the month Days was generated for.
	DayYear  int
	DayMonth time.Month
}

// Values returns the sequence backing a column of kind k. The AM/PM column
// is represented by its row indices 0 and 1.
func (s Set) Values(k format.Kind, twelve bool) []int {
	switch k {
	case format.Day:
		return s.Days
	case format.Month:
		return s.Months
	case format.Year:
		return s.Years
	case format.Hour:
		if twelve {
			return s.Hours12
		}
		return s.Hours24
	case format.Minute:
		return s.Minutes
	case format.AmPm:
		return []int{0, 1}
	}
	return nil
}

// Len is the number of rows in a column of kind k.
func (s Set) Len(k format.Kind, twelve bool) int {
	return len(s.Values(k, twelve))
}

// Generator builds ranges against a calendar.
type Generator struct {
	cal  calendar.Calendar
	span int
}

// New returns a generator using cal and the default year span.
func New(cal calendar.Calendar) *Generator {
	return &Generator{cal: cal, span: DefaultYearSpan}
}

// WithSpan returns a copy of g offering span years either side of the
// current year when a bound is missing. Non-positive spans are ignored.
func (g *Generator) WithSpan(span int) *Generator {
	out := *g
	if span > 0 {
		out.span = span
	}
	return &out
}

// Span reports the unbounded year span.
func (g *Generator) Span() int { return g.span }

// Years returns the contiguous year range. A zero min or max means unbounded
// on that side. When the bounds cross, the result is empty.
func (g *Generator) Years(current, min, max time.Time) []int {
	year := g.cal.Fields(current).Year
	lo, hi := year-g.span, year+g.span
	if !min.IsZero() {
		lo = g.cal.Fields(min).Year
	}
	if !max.IsZero() {
		hi = g.cal.Fields(max).Year
	}
	return span(lo, hi)
}

// Days returns 1..N for the month.
func (g *Generator) Days(year int, month time.Month) []int {
	return span(1, g.cal.DaysIn(year, month))
}

// Months returns 1..12.
func Months() []int { return span(1, 12) }

// Hours returns 1..12 for a 12 hour clock, 0..23 otherwise.
func Hours(twelve bool) []int {
	if twelve {
		return span(1, 12)
	}
	return span(0, 23)
}

// Minutes returns 0..59.
func Minutes() []int { return span(0, 59) }

// Build computes a complete set around current.
func (g *Generator) Build(current, min, max time.Time) Set {
	f := g.cal.Fields(current)
	return Set{
		Years:    g.Years(current, min, max),
		Months:   Months(),
		Days:     g.Days(f.Year, f.Month),
		Hours24:  Hours(false),
		Hours12:  Hours(true),
		Minutes:  Minutes(),
		DayYear:  f.Year,
		DayMonth: f.Month,
	}
}

// span returns lo..hi inclusive, or nil when lo > hi.
func span(lo, hi int) []int {
	if lo > hi {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}
