// Package set applies column edits to a picker without a terminal UI.
package set

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"tableflip.dev/datepick/pkg/format"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/printers"
)

// Edit moves the column showing Kind to the row titled Value.
type Edit struct {
	Kind  format.Kind
	Value string
}

// ParseEdits reads "kind=value" arguments, for example "month=2" or
// "ampm=pm".
func ParseEdits(args []string) ([]Edit, error) {
	edits := make([]Edit, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(value) == "" {
			return nil, errors.Errorf("expected kind=value, got %q", arg)
		}
		k, ok := format.ParseKind(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, errors.Errorf("unknown column %q", name)
		}
		edits = append(edits, Edit{Kind: k, Value: strings.TrimSpace(value)})
	}
	return edits, nil
}

// Set applies Edits in order, the way a user scrolling the columns would.
type Set struct {
	Engine *picker.Engine
	Edits  []Edit
	// Trace prints the signals each edit emits.
	Trace bool
	// Calendar prints the month of the result.
	Calendar bool
	JSON     bool
	Out      io.Writer
}

// Do runs the edits and prints the resulting selection.
func (s *Set) Do(ctx context.Context) error {
	pp := &printers.PrettyPrint{Out: s.Out}
	faint := color.New(color.Faint)
	out := s.Out
	if out == nil {
		out = color.Output
	}

	for _, edit := range s.Edits {
		col, row, err := s.locate(edit)
		if err != nil {
			return err
		}
		signals := s.Engine.RowChanged(col, row)
		if s.Trace && !s.JSON {
			names := make([]string, len(signals))
			for i, sig := range signals {
				names[i] = sig.String()
			}
			_, _ = faint.Fprintf(out, "%s=%s: %s\n", edit.Kind, edit.Value, strings.Join(names, " "))
		}
	}

	sel := s.Engine.Selection()
	if s.JSON {
		return pp.SelectionJSON(sel)
	}
	pp.Selection(sel)
	if s.Calendar {
		pp.NewLine()
		pp.Month(s.Engine.Calendar(), sel.Date, s.Engine.Bounds())
	}
	return nil
}

func (s *Set) locate(edit Edit) (int, int, error) {
	e := s.Engine
	col := -1
	for c := 0; c < e.ColumnCount(); c++ {
		if k, _ := e.Kind(c); k == edit.Kind {
			col = c
			break
		}
	}
	if col < 0 {
		return 0, 0, errors.Errorf("format %s has no %s column", e.Format(), edit.Kind)
	}
	n := e.RowCount(col)
	for row := 0; row < n; row++ {
		if matches(edit, e.Title(col, row)) {
			return col, row, nil
		}
	}
	return 0, 0, errors.Errorf("%s=%s is outside the column range %s–%s",
		edit.Kind, edit.Value, e.Title(col, 0), e.Title(col, n-1))
}

func matches(edit Edit, title string) bool {
	if edit.Kind == format.AmPm {
		return strings.EqualFold(edit.Value, title)
	}
	want, err := strconv.Atoi(edit.Value)
	if err != nil {
		return false
	}
	got, err := strconv.Atoi(title)
	return err == nil && got == want
}

// String renders the edit the way ParseEdits reads it.
func (e Edit) String() string {
	return fmt.Sprintf("%s=%s", e.Kind, e.Value)
}
