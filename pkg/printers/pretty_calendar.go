package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/selection"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the month of then as a grid, the picked day bold and days
// outside bounds faint.
func (pp *PrettyPrint) Month(cal calendar.Calendar, then time.Time, bounds selection.Bounds) {
	f := cal.Fields(then)
	days := cal.DaysIn(f.Year, f.Month)
	loc := cal.Location()
	d := time.Date(f.Year, f.Month, 1, 12, 0, 0, 0, loc).Weekday()

	tf := color.New(color.Italic)

	m := fmt.Sprintf("%s %d", f.Month, f.Year)
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(pp.out(), "   ")
	}

	l0 := color.New()
	l1 := color.New(color.Faint)
	l2 := color.New(color.Bold, color.Underline)

	for day := 1; day <= days; day++ {
		printer := l0
		switch {
		case day == f.Day:
			printer = l2
		case !bounds.HasDay(f.Year, f.Month, day, loc):
			printer = l1
		}
		_, _ = printer.Fprintf(pp.out(), "%2d", day)
		_, _ = fmt.Fprint(pp.out(), " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}
