package selection

import "time"

// Bounds limits the selectable instants. A zero Min or Max leaves that side
// open.
type Bounds struct {
	Min time.Time
	Max time.Time
}

// HasMin reports whether a lower bound is set.
func (b Bounds) HasMin() bool { return !b.Min.IsZero() }

// HasMax reports whether an upper bound is set.
func (b Bounds) HasMax() bool { return !b.Max.IsZero() }

// Normalize pins Max to Min when the bounds cross, leaving a single
// admissible instant. The second result reports whether it did so.
func (b Bounds) Normalize() (Bounds, bool) {
	if b.HasMin() && b.HasMax() && b.Min.After(b.Max) {
		b.Max = b.Min
		return b, true
	}
	return b, false
}

// Contains reports whether t lies inside the bounds.
func (b Bounds) Contains(t time.Time) bool {
	if b.HasMin() && t.Before(b.Min) {
		return false
	}
	if b.HasMax() && t.After(b.Max) {
		return false
	}
	return true
}

// HasDay reports whether any minute of the given day lies inside the bounds.
func (b Bounds) HasDay(year int, month time.Month, day int, loc *time.Location) bool {
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Minute)
	if b.HasMin() && end.Before(b.Min) {
		return false
	}
	if b.HasMax() && start.After(b.Max) {
		return false
	}
	return true
}

// Clamp returns the bound t falls outside of, or t itself.
func Clamp(t time.Time, b Bounds) time.Time {
	if b.HasMin() && t.Before(b.Min) {
		return b.Min
	}
	if b.HasMax() && t.After(b.Max) {
		return b.Max
	}
	return t
}
