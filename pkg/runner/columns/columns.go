// Package columns prints the columns a picker format shows and their ranges.
package columns

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/printers"
)

// Columns describes each column of Engine.
type Columns struct {
	Engine *picker.Engine
	Out    io.Writer
	JSON   bool
}

type columnJSON struct {
	Column   int    `json:"column"`
	Kind     string `json:"kind"`
	Rows     int    `json:"rows"`
	First    string `json:"first"`
	Last     string `json:"last"`
	Selected string `json:"selected"`
	Row      int    `json:"row"`
	Width    int    `json:"width"`
}

func (c *Columns) describe() []columnJSON {
	e := c.Engine
	list := make([]columnJSON, 0, e.ColumnCount())
	for col := 0; col < e.ColumnCount(); col++ {
		k, _ := e.Kind(col)
		n := e.RowCount(col)
		list = append(list, columnJSON{
			Column:   col,
			Kind:     k.String(),
			Rows:     n,
			First:    e.Title(col, 0),
			Last:     e.Title(col, n-1),
			Selected: e.Title(col, e.CurrentRow(col)),
			Row:      e.CurrentRow(col),
			Width:    e.WidthHint(k),
		})
	}
	return list
}

// Do renders the table.
func (c *Columns) Do(ctx context.Context) error {
	out := c.Out
	if out == nil {
		out = color.Output
	}
	list := c.describe()
	if c.JSON {
		return (&printers.PrettyPrint{Out: out}).JSON(list)
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Kind"), bold.Sprint("Rows"), bold.Sprint("Range"), bold.Sprint("Selected"), bold.Sprint("Width"))
	for _, col := range list {
		tbl.AddRow(col.Column, col.Kind, col.Rows, col.First+"–"+col.Last, fmt.Sprintf("%s (row %d)", col.Selected, col.Row), col.Width)
	}
	tbl.RightAlign(0)
	tbl.RightAlign(2)

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
