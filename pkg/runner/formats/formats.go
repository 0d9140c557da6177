// Package formats provides CLI helpers to display the picker format legend.
package formats

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepick/pkg/format"
	"tableflip.dev/datepick/pkg/printers"
)

// Formats prints every picker format with its columns and an example.
type Formats struct {
	// Example is rendered in each format; zero uses now.
	Example time.Time
	Out     io.Writer
	JSON    bool
}

type formatJSON struct {
	Ordinal int      `json:"ordinal"`
	Name    string   `json:"name"`
	Pattern string   `json:"pattern"`
	Columns []string `json:"columns"`
	Example string   `json:"example"`
}

// Do renders the legend.
func (f *Formats) Do(ctx context.Context) error {
	out := f.Out
	if out == nil {
		out = color.Output
	}
	example := f.Example
	if example.IsZero() {
		example = time.Now()
	}

	if f.JSON {
		list := make([]formatJSON, 0, format.CodeCount)
		for _, c := range format.Codes() {
			list = append(list, formatJSON{
				Ordinal: int(c),
				Name:    c.String(),
				Pattern: c.Pattern(),
				Columns: kindNames(c.Columns()),
				Example: c.Format(example),
			})
		}
		return (&printers.PrettyPrint{Out: out}).JSON(list)
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Format"), bold.Sprint("Columns"), bold.Sprint("Example"))
	for _, c := range format.Codes() {
		tbl.AddRow(int(c), c.String(), strings.Join(kindNames(c.Columns()), " "), c.Format(example))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}

func kindNames(kinds []format.Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
