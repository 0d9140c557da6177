// Package calendar renders a compact month grid used as a preview of the
// picked date.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/datepick/pkg/tui/theme"
)

// Month describes the grid to render.
type Month struct {
	// Year and Month select the month shown.
	Year  int
	Month time.Month
	// Days is the number of days in the month.
	Days int
	// Selected is the highlighted day, 0 for none.
	Selected int
	// Today is underlined when it falls in the month, 0 for none.
	Today int
	// Enabled reports whether a day can be picked; nil enables every day.
	Enabled func(day int) bool
}

const header = "Su Mo Tu We Th Fr Sa"

// Width is the rendered width of a grid line.
var Width = len(header)

// Render produces the titled month grid.
func Render(m Month, th theme.CalendarTheme) string {
	if m.Days <= 0 || m.Month < time.January || m.Month > time.December {
		return ""
	}
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())

	title := fmt.Sprintf("%s %d", m.Month, m.Year)
	pad := (Width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	lines := []string{
		th.Header.Render(strings.Repeat(" ", pad) + title),
		th.Header.Render(header),
	}

	rows := (offset + m.Days + 6) / 7
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day < 1 || day > m.Days {
				cells = append(cells, th.Empty.Render("  "))
				continue
			}
			cells = append(cells, renderDay(m, day, th))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderDay(m Month, day int, th theme.CalendarTheme) string {
	style := th.Day
	if m.Enabled != nil && !m.Enabled(day) {
		style = th.Disabled
	}
	if day == m.Today {
		style = style.Inherit(th.Today)
	}
	if day == m.Selected {
		style = style.Inherit(th.Selected)
	}
	return style.Render(fmt.Sprintf("%2d", day))
}
