// Package picker keeps the columns of a date/time picker consistent with the
// picked value. Every host event is handled in one pass: rows are resolved
// to a date, the date is clamped to the bounds, the day column follows the
// month and the rows are derived again from the result.
package picker

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/format"
	"tableflip.dev/datepick/pkg/ranges"
	"tableflip.dev/datepick/pkg/selection"
)

// Selection is the payload handed out on confirmation.
type Selection struct {
	// Components lists the fields the format carries.
	Components format.Component
	// Fields holds the picked value; fields outside Components are zero.
	Fields calendar.Fields
	// Date is the full picked instant.
	Date time.Time
	// Formatted is Date rendered with the format's display pattern.
	Formatted string
}

// ConfirmFunc receives the selection when the user confirms.
type ConfirmFunc func(Selection)

// Option configures an Engine.
type Option func(*Engine)

// WithBounds limits the selectable range. Zero values leave a side open.
func WithBounds(min, max time.Time) Option {
	return func(e *Engine) { e.bounds = selection.Bounds{Min: min, Max: max} }
}

// WithOnConfirm sets the confirmation callback.
func WithOnConfirm(fn ConfirmFunc) Option {
	return func(e *Engine) { e.onConfirm = fn }
}

// WithCalendar replaces the default local Gregorian calendar.
func WithCalendar(cal calendar.Calendar) Option {
	return func(e *Engine) { e.cal = cal }
}

// WithObserver registers an observer for emitted signals.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithYearSpan sets how many years around the current one an unbounded year
// column offers.
func WithYearSpan(span int) Option {
	return func(e *Engine) { e.span = span }
}

// Engine is the picker state. It is not safe for concurrent use; hosts
// deliver events from a single goroutine.
type Engine struct {
	cal  calendar.Calendar
	gen  *ranges.Generator
	sync *selection.Sync
	span int

	code     format.Code
	columns  []format.Kind
	bounds   selection.Bounds
	selected time.Time
	set      ranges.Set
	rows     selection.Rows

	onConfirm ConfirmFunc
	observer  Observer
}

// New builds an engine showing code, starting at initial. A zero initial
// starts at the current time.
func New(code format.Code, initial time.Time, opts ...Option) *Engine {
	e := &Engine{code: code, span: ranges.DefaultYearSpan}
	for _, opt := range opts {
		opt(e)
	}
	if e.cal == nil {
		e.cal = calendar.New(time.Local)
	}
	if !e.code.Valid() {
		log.Printf("picker: unknown format %d, using %s", int(code), format.DDMMYYYY)
		e.code = format.DDMMYYYY
	}
	if initial.IsZero() {
		initial = time.Now()
	}
	e.gen = ranges.New(e.cal).WithSpan(e.span)
	e.sync = selection.New(e.cal)
	e.bounds = e.normalize(e.bounds)
	e.selected = selection.Clamp(calendar.Truncate(e.cal, initial), e.bounds)
	e.rebuild()
	return e
}

// normalize applies the crossed-bounds policy and aligns the bounds to whole
// minutes, the finest unit a column can select.
func (e *Engine) normalize(b selection.Bounds) selection.Bounds {
	if b.HasMin() {
		min := calendar.Truncate(e.cal, b.Min)
		if min.Before(b.Min) {
			min = min.Add(time.Minute)
		}
		b.Min = min
	}
	if b.HasMax() {
		b.Max = calendar.Truncate(e.cal, b.Max)
	}
	b, coerced := b.Normalize()
	if coerced {
		log.Printf("picker: min %s is after max, pinning both to min", b.Min)
	}
	return b
}

func (e *Engine) rebuild() {
	e.columns = e.code.Columns()
	e.set = e.gen.Build(e.selected, e.bounds.Min, e.bounds.Max)
	e.rows = e.sync.ToRows(e.selected, e.code, e.set)
}

func (e *Engine) twelve() bool { return e.code.HasAmPm() }

// RowChanged handles the host moving column to row.
func (e *Engine) RowChanged(column, row int) []Signal {
	k, ok := e.Kind(column)
	if !ok || e.set.Len(k, e.twelve()) == 0 {
		return nil
	}

	shown := e.rows
	shown[k] = row

	proposed, err := e.sync.FromRows(shown, e.code, e.set, e.selected)
	if err != nil {
		log.Printf("picker: keeping %s: %v", e.selected, err)
	}
	e.selected = selection.Clamp(proposed, e.bounds)

	return e.emit(e.settle(shown))
}

// SetDate assigns t directly, clamped to the bounds.
func (e *Engine) SetDate(t time.Time) []Signal {
	if t.IsZero() {
		return nil
	}
	e.selected = selection.Clamp(calendar.Truncate(e.cal, t), e.bounds)
	if !containsInt(e.set.Years, e.cal.Fields(e.selected).Year) {
		e.rebuild()
		return e.emit([]Signal{{Kind: ReloadAll}})
	}
	return e.emit(e.settle(e.rows))
}

// FormatChanged switches the engine to code, keeping the selected value.
func (e *Engine) FormatChanged(code format.Code) []Signal {
	if !code.Valid() {
		log.Printf("picker: ignoring unknown format %d", int(code))
		return nil
	}
	e.code = code
	e.columns = code.Columns()
	e.rows = e.sync.ToRows(e.selected, e.code, e.set)
	return e.emit([]Signal{{Kind: ReloadAll}})
}

// BoundsChanged replaces the bounds and clamps the selected value into them.
func (e *Engine) BoundsChanged(min, max time.Time) []Signal {
	e.bounds = e.normalize(selection.Bounds{Min: min, Max: max})
	e.selected = selection.Clamp(e.selected, e.bounds)
	e.rebuild()
	return e.emit([]Signal{{Kind: ReloadAll}})
}

// settle regenerates the day range when the selected month moved away from
// it and re-derives the rows, reporting every column whose row differs from
// what the host shows.
func (e *Engine) settle(shown selection.Rows) []Signal {
	var signals []Signal
	reloaded := -1

	f := e.cal.Fields(e.selected)
	if f.Year != e.set.DayYear || f.Month != e.set.DayMonth {
		days := e.gen.Days(f.Year, f.Month)
		grew := len(days) != len(e.set.Days)
		e.set.Days, e.set.DayYear, e.set.DayMonth = days, f.Year, f.Month
		if col := e.columnOf(format.Day); grew && col >= 0 {
			reloaded = col
			signals = append(signals, Signal{Kind: ReloadColumn, Column: col})
		}
	}

	e.rows = e.sync.ToRows(e.selected, e.code, e.set)
	for i, k := range e.columns {
		if e.rows[k] != shown[k] || i == reloaded {
			signals = append(signals, Signal{Kind: SelectionChanged, Column: i, Row: e.rows[k]})
		}
	}
	return signals
}

func (e *Engine) emit(signals []Signal) []Signal {
	deliver(e.observer, signals)
	return signals
}

// Confirm returns the current selection and hands it to the confirmation
// callback, if any.
func (e *Engine) Confirm() Selection {
	sel := e.Selection()
	if e.onConfirm != nil {
		e.onConfirm(sel)
	}
	return sel
}

// Cancel is the dismissal counterpart of Confirm. The callback is not
// called.
func (e *Engine) Cancel() {
	log.Printf("picker: cancelled at %s", e.code.Format(e.selected))
}

// Selection builds the confirmation payload for the selected value.
func (e *Engine) Selection() Selection {
	comps := e.code.Components()
	all := e.cal.Fields(e.selected)
	var f calendar.Fields
	if comps.Has(format.ComponentYear) {
		f.Year = all.Year
	}
	if comps.Has(format.ComponentMonth) {
		f.Month = all.Month
	}
	if comps.Has(format.ComponentDay) {
		f.Day = all.Day
	}
	if comps.Has(format.ComponentHour) {
		f.Hour = all.Hour
	}
	if comps.Has(format.ComponentMinute) {
		f.Minute = all.Minute
	}
	return Selection{
		Components: comps,
		Fields:     f,
		Date:       e.selected,
		Formatted:  e.code.Format(e.selected),
	}
}

// Selected returns the picked instant.
func (e *Engine) Selected() time.Time { return e.selected }

// Format returns the active format.
func (e *Engine) Format() format.Code { return e.code }

// Bounds returns the effective bounds.
func (e *Engine) Bounds() selection.Bounds { return e.bounds }

// Calendar returns the calendar the engine computes with.
func (e *Engine) Calendar() calendar.Calendar { return e.cal }

// Columns returns the kinds of the visible columns in order.
func (e *Engine) Columns() []format.Kind {
	out := make([]format.Kind, len(e.columns))
	copy(out, e.columns)
	return out
}

// ColumnCount returns the number of visible columns.
func (e *Engine) ColumnCount() int { return len(e.columns) }

// Kind returns the kind of column.
func (e *Engine) Kind(column int) (format.Kind, bool) {
	if column < 0 || column >= len(e.columns) {
		return 0, false
	}
	return e.columns[column], true
}

// columnOf returns the index of the column showing k, or -1.
func (e *Engine) columnOf(k format.Kind) int {
	for i, c := range e.columns {
		if c == k {
			return i
		}
	}
	return -1
}

// RowCount returns the number of rows in column.
func (e *Engine) RowCount(column int) int {
	k, ok := e.Kind(column)
	if !ok {
		return 0
	}
	return e.set.Len(k, e.twelve())
}

// CurrentRow returns the selected row of column.
func (e *Engine) CurrentRow(column int) int {
	k, ok := e.Kind(column)
	if !ok {
		return 0
	}
	return e.rows[k]
}

// Title returns the label of row in column. Day, month, minute and 24 hour
// values are zero padded to two digits; years and 12 hour values are not.
func (e *Engine) Title(column, row int) string {
	k, ok := e.Kind(column)
	if !ok {
		return ""
	}
	values := e.set.Values(k, e.twelve())
	if row < 0 || row >= len(values) {
		return ""
	}
	v := values[row]
	switch k {
	case format.Year:
		return strconv.Itoa(v)
	case format.AmPm:
		return ranges.AmPmLabels[v]
	case format.Hour:
		if e.twelve() {
			return strconv.Itoa(v)
		}
	}
	return fmt.Sprintf("%02d", v)
}

// WidthHint returns the relative width for a column of kind k.
func (e *Engine) WidthHint(k format.Kind) int { return k.WidthHint() }

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
