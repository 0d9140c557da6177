package commands

import (
	"context"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/config"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/runner/pick"
	"tableflip.dev/datepick/pkg/store"
)

// engineArgs are the flags every picker command shares.
type engineArgs struct {
	format options.FormatOptions
	dates  options.DateOptions
}

// engine builds the picker from the flags. fallback is used as the initial
// value when --date is not given.
func (a *engineArgs) engine(c *config.Config, fallback time.Time, opts ...picker.Option) (*picker.Engine, error) {
	code, err := a.format.Code(c.Format)
	if err != nil {
		return nil, err
	}
	now := c.Now()
	initial, err := a.dates.Initial(now)
	if err != nil {
		return nil, err
	}
	if initial.IsZero() {
		initial = fallback
	}
	min, max, err := a.dates.Bounds(now)
	if err != nil {
		return nil, err
	}
	opts = append([]picker.Option{
		picker.WithCalendar(calendar.New(c.Location)),
		picker.WithYearSpan(c.YearSpan),
		picker.WithBounds(min, max),
	}, opts...)
	return picker.New(code, initial, opts...), nil
}

// remembered looks up the fallback initial value for --remember.
func remembered(ctx context.Context, c *config.Config, ho *options.HistoryOptions) (time.Time, error) {
	if !ho.Remember {
		return time.Time{}, nil
	}
	h, err := store.Load(c)
	if err != nil {
		return time.Time{}, err
	}
	return pick.Remembered(ctx, h, ho.Name), nil
}
