package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/store"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("20250315T093000.000000000_171dff69f8b99dca  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " pick")
	default:
		_, _ = c.Fprintln(pp.out(), " picks")
	}
}

// Selection prints the formatted value followed by the components it carries.
func (pp *PrettyPrint) Selection(sel picker.Selection) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	_, _ = b.Fprint(pp.out(), sel.Formatted)
	_, _ = f.Fprintf(pp.out(), "  (%s)\n", strings.Join(sel.Components.Names(), ", "))
}

// Records prints stored picks, oldest first.
func (pp *PrettyPrint) Records(records ...*store.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	for _, r := range records {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), r.ID)
			if pad := len(spacing) - len(r.ID); pad > 0 {
				_, _ = y.Fprint(pp.out(), strings.Repeat(" ", pad))
			}
		}
		_, _ = t.Fprintf(pp.out(), "%s ", r.Formatted)
		_, _ = f.Fprintf(pp.out(), "%s, picked %s\n", r.Format, r.Created.Local().Format("2006-01-02 15:04"))
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// selectionJSON is the --json shape of a confirmed selection.
type selectionJSON struct {
	Formatted  string         `json:"formatted"`
	Date       string         `json:"date"`
	Components []string       `json:"components"`
	Fields     map[string]int `json:"fields"`
}

// SelectionJSON writes sel as a single JSON object. Only the fields named in
// components are present.
func (pp *PrettyPrint) SelectionJSON(sel picker.Selection) error {
	names := sel.Components.Names()
	fields := make(map[string]int, len(names))
	for _, n := range names {
		switch n {
		case "year":
			fields[n] = sel.Fields.Year
		case "month":
			fields[n] = int(sel.Fields.Month)
		case "day":
			fields[n] = sel.Fields.Day
		case "hour":
			fields[n] = sel.Fields.Hour
		case "minute":
			fields[n] = sel.Fields.Minute
		}
	}
	return pp.JSON(selectionJSON{
		Formatted:  sel.Formatted,
		Date:       sel.Date.Format("2006-01-02T15:04:05Z07:00"),
		Components: names,
		Fields:     fields,
	})
}

// JSON writes v as one line of JSON.
func (pp *PrettyPrint) JSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
