// Package calendar provides the Gregorian calendar arithmetic the picker is
// built on. It is passed around explicitly so tests and hosts can pin the
// location.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidFields is returned by Compose when a field is out of range.
var ErrInvalidFields = errors.New("calendar: invalid date fields")

// Fields holds the components of a date the picker edits. Seconds are not
// modelled.
type Fields struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

func (f Fields) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", f.Year, int(f.Month), f.Day, f.Hour, f.Minute)
}

// Calendar splits and composes dates and knows month lengths.
type Calendar interface {
	// DaysIn returns the number of days in the given month.
	DaysIn(year int, month time.Month) int
	// Fields splits t in the calendar's location.
	Fields(t time.Time) Fields
	// Compose builds an instant from f. Out-of-range fields fail instead of
	// normalizing; a wall clock skipped by a DST change moves forward by
	// the size of the gap.
	Compose(f Fields) (time.Time, error)
	// Location is the time zone dates are interpreted in.
	Location() *time.Location
}

// Gregorian is the proleptic Gregorian calendar in a fixed location.
type Gregorian struct {
	loc *time.Location
}

var _ Calendar = (*Gregorian)(nil)

// New returns a Gregorian calendar for loc; nil means time.Local.
func New(loc *time.Location) *Gregorian {
	if loc == nil {
		loc = time.Local
	}
	return &Gregorian{loc: loc}
}

// Location implements Calendar.
func (g *Gregorian) Location() *time.Location { return g.loc }

// DaysIn implements Calendar.
func (g *Gregorian) DaysIn(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// Fields implements Calendar.
func (g *Gregorian) Fields(t time.Time) Fields {
	t = t.In(g.loc)
	return Fields{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Compose implements Calendar.
func (g *Gregorian) Compose(f Fields) (time.Time, error) {
	switch {
	case f.Month < time.January || f.Month > time.December,
		f.Day < 1 || f.Day > g.DaysIn(f.Year, f.Month),
		f.Hour < 0 || f.Hour > 23,
		f.Minute < 0 || f.Minute > 59:
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidFields, f)
	}
	t := time.Date(f.Year, f.Month, f.Day, f.Hour, f.Minute, 0, 0, g.loc)
	// time.Date may resolve a skipped wall clock with either offset; always
	// land after the gap.
	if got := g.Fields(t); got != f {
		want := wall(f)
		if have := wall(got); have.Before(want) {
			t = t.Add(want.Sub(have))
		}
	}
	return t, nil
}

// wall is f as an instant in UTC, for comparing wall clocks across offsets.
func wall(f Fields) time.Time {
	return time.Date(f.Year, f.Month, f.Day, f.Hour, f.Minute, 0, 0, time.UTC)
}

// Truncate drops seconds and below, in the calendar's location. The
// instant is kept, so a repeated wall clock stays on the same side of a DST
// change.
func Truncate(cal Calendar, t time.Time) time.Time {
	t = t.In(cal.Location())
	return t.Add(-time.Duration(t.Second())*time.Second - time.Duration(t.Nanosecond()))
}
