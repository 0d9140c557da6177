package options

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/timeutil"
)

var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-1-2 15:04",
	"2006-01-02",
	"2006-1-2",
}

const layoutShort = "1/2"

// DateOptions
type DateOptions struct {
	Date   string
	Min    string
	Max    string
	Within string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Initial value, example: --date="2020-2-28", --date="2020-02-28 13:05" or --date="2/28". Defaults to now.`)
}

func AddBoundsArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.Min, "min", "",
		`Earliest selectable value, same forms as --date.`)
	cmd.Flags().StringVar(&o.Max, "max", "",
		`Latest selectable value, same forms as --date.`)
	cmd.Flags().StringVar(&o.Within, "within", "",
		`Bounds relative to now, example: --within=2w (now until two weeks out) or --within=-3d (the last three days).`)
}

// Initial returns the --date value, or the zero time when it was not given.
func (o *DateOptions) Initial(now time.Time) (time.Time, error) {
	t, err := ParseDate(o.Date, now)
	return t, errors.Wrap(err, "--date")
}

// Bounds resolves --min, --max and --within. Explicit --min or --max win
// over the matching end of --within. Unset ends are zero.
func (o *DateOptions) Bounds(now time.Time) (min, max time.Time, err error) {
	if o.Within != "" {
		if min, max, err = timeutil.Within(now, o.Within); err != nil {
			return time.Time{}, time.Time{}, errors.Wrap(err, "--within")
		}
	}
	if o.Min != "" {
		if min, err = ParseDate(o.Min, now); err != nil {
			return time.Time{}, time.Time{}, errors.Wrap(err, "--min")
		}
	}
	if o.Max != "" {
		if max, err = ParseDate(o.Max, now); err != nil {
			return time.Time{}, time.Time{}, errors.Wrap(err, "--max")
		}
	}
	return min, max, nil
}

// ParseDate reads s in now's location. "now" and "today" are understood;
// an empty s yields the zero time.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	loc := now.Location()
	switch strings.ToLower(s) {
	case "":
		return time.Time{}, nil
	case "now":
		return now, nil
	case "today":
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	t, err := time.ParseInLocation(layoutShort, s, loc)
	if err != nil {
		return time.Time{}, errors.Errorf("unrecognised date %q", s)
	}
	// Let the year be the same.
	return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}
