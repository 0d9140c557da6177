// Package format describes the nine picker presets: which columns they show,
// in which order, and how a picked value is rendered.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Code selects one of the picker presets. The ordinal order is significant:
// codes below DDMMYYYYHHmm are date-only and codes from DDMMYYYYhhmmA on use
// a 12 hour clock with an AM/PM column.
type Code int

// Picker presets.
const (
	DDMMYYYY Code = iota
	MMDDYYYY
	YYYYMMDD
	DDMMYYYYHHmm
	MMDDYYYYHHmm
	YYYYMMDDHHmm
	DDMMYYYYhhmmA
	MMDDYYYYhhmmA
	YYYYMMDDhhmmA
)

// CodeCount is the number of presets.
const CodeCount = 9

type preset struct {
	name    string
	order   []Kind
	pattern string
}

var (
	dmy = []Kind{Day, Month, Year}
	mdy = []Kind{Month, Day, Year}
	ymd = []Kind{Year, Month, Day}

	clock24 = []Kind{Hour, Minute}
	clock12 = []Kind{Hour, Minute, AmPm}
)

func join(date, clock []Kind) []Kind {
	out := make([]Kind, 0, len(date)+len(clock))
	out = append(out, date...)
	return append(out, clock...)
}

var presets = [CodeCount]preset{
	DDMMYYYY:      {name: "ddMMyyyy", order: dmy, pattern: "dd/MM/yyyy"},
	MMDDYYYY:      {name: "MMddyyyy", order: mdy, pattern: "MM/dd/yyyy"},
	YYYYMMDD:      {name: "yyyyMMdd", order: ymd, pattern: "yyyy/MM/dd"},
	DDMMYYYYHHmm:  {name: "ddMMyyyyHHmm", order: join(dmy, clock24), pattern: "dd/MM/yyyy HH:mm"},
	MMDDYYYYHHmm:  {name: "MMddyyyyHHmm", order: join(mdy, clock24), pattern: "MM/dd/yyyy HH:mm"},
	YYYYMMDDHHmm:  {name: "yyyyMMddHHmm", order: join(ymd, clock24), pattern: "yyyy/MM/dd HH:mm"},
	DDMMYYYYhhmmA: {name: "ddMMyyyyhhmmA", order: join(dmy, clock12), pattern: "dd/MM/yyyy hh:mm a"},
	MMDDYYYYhhmmA: {name: "MMddyyyyhhmmA", order: join(mdy, clock12), pattern: "MM/dd/yyyy hh:mm a"},
	YYYYMMDDhhmmA: {name: "yyyyMMddhhmmA", order: join(ymd, clock12), pattern: "yyyy/MM/dd hh:mm a"},
}

// Codes returns every preset in ordinal order.
func Codes() []Code {
	out := make([]Code, CodeCount)
	for i := range out {
		out[i] = Code(i)
	}
	return out
}

// Valid reports whether c names a known preset.
func (c Code) Valid() bool {
	return c >= 0 && c < CodeCount
}

func (c Code) preset() preset {
	if !c.Valid() {
		return presets[DDMMYYYY]
	}
	return presets[c]
}

// String returns the preset name, e.g. "ddMMyyyyHHmm".
func (c Code) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return presets[c].name
}

// Columns returns the column order for the preset. The returned slice is a
// copy and may be modified by the caller.
func (c Code) Columns() []Kind {
	order := c.preset().order
	out := make([]Kind, len(order))
	copy(out, order)
	return out
}

// Pattern returns the display pattern, e.g. "dd/MM/yyyy hh:mm a".
func (c Code) Pattern() string { return c.preset().pattern }

// HasTime reports whether the preset shows hour and minute columns.
func (c Code) HasTime() bool { return c >= DDMMYYYYHHmm }

// HasAmPm reports whether the preset uses a 12 hour clock.
func (c Code) HasAmPm() bool { return c >= DDMMYYYYhhmmA }

// Components returns the calendar components a confirmed value carries.
func (c Code) Components() Component {
	if c.HasTime() {
		return ComponentDateMask | ComponentTimeMask
	}
	return ComponentDateMask
}

// Layout returns the Go reference layout equivalent of Pattern.
func (c Code) Layout() string { return Layout(c.Pattern()) }

// Format renders t with the preset's display pattern.
func (c Code) Format(t time.Time) string { return t.Format(c.Layout()) }

// Parse resolves a preset by name ("yyyyMMdd") or by ordinal ("2").
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	for i, p := range presets {
		if p.name == s {
			return Code(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Code(n).Valid() {
		return Code(n), nil
	}
	for i, p := range presets {
		if strings.EqualFold(p.name, s) {
			return Code(i), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

var layoutReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"MM", "01",
	"dd", "02",
	"HH", "15",
	"hh", "03",
	"mm", "04",
	"a", "PM",
)

// Layout converts a display pattern built from yyyy, MM, dd, HH, hh, mm and a
// tokens into a Go time layout.
func Layout(pattern string) string {
	return layoutReplacer.Replace(pattern)
}
