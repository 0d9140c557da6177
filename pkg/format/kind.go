package format

// Kind identifies the date or time field a picker column selects.
type Kind int

// Column kinds.
const (
	Day Kind = iota
	Month
	Year
	Hour
	Minute
	AmPm
)

// KindCount is the number of column kinds.
const KindCount = 6

var kindNames = [KindCount]string{"day", "month", "year", "hour", "minute", "ampm"}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a kind from its lower case name.
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// WidthHint is the relative column width a host should allocate. Years are
// widest, the AM/PM column medium, everything else narrow.
func (k Kind) WidthHint() int {
	switch k {
	case Year:
		return 100
	case AmPm:
		return 60
	default:
		return 50
	}
}

// Component is a set of calendar components.
type Component uint8

// Calendar components.
const (
	ComponentYear Component = 1 << iota
	ComponentMonth
	ComponentDay
	ComponentHour
	ComponentMinute

	ComponentDateMask = ComponentYear | ComponentMonth | ComponentDay
	ComponentTimeMask = ComponentHour | ComponentMinute
)

// Has reports whether every component in o is part of c.
func (c Component) Has(o Component) bool { return c&o == o }

// Names lists the components in c from year down to minute.
func (c Component) Names() []string {
	var out []string
	for _, e := range []struct {
		c    Component
		name string
	}{
		{ComponentYear, "year"},
		{ComponentMonth, "month"},
		{ComponentDay, "day"},
		{ComponentHour, "hour"},
		{ComponentMinute, "minute"},
	} {
		if c.Has(e.c) {
			out = append(out, e.name)
		}
	}
	return out
}
