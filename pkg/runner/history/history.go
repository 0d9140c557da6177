// Package history lists stored picks.
package history

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/store"
)

// History prints the records stored under Name, or every record grouped by
// name when Name is empty.
type History struct {
	History store.History
	Name    string
	ShowID  bool
	JSON    bool
	// Follow keeps running and prints records as they are saved.
	Follow bool
	// Summary prints one row per name instead of every record.
	Summary bool
	Out    io.Writer
}

func (h *History) out() io.Writer {
	if h.Out == nil {
		return color.Output
	}
	return h.Out
}

func (h *History) Do(ctx context.Context) error {
	if h.JSON {
		return (&printers.PrettyPrint{Out: h.out()}).JSON(h.History.List(ctx, h.Name))
	}

	if h.Summary {
		_, _ = fmt.Fprintln(h.out(), summary(ctx, h.History))
		return nil
	}

	pp := &printers.PrettyPrint{ShowID: h.ShowID, Out: h.out()}
	names := []string{h.Name}
	if h.Name == "" {
		names = h.History.Names(ctx)
	}
	if len(names) == 0 {
		pp.Records()
	}
	seen := make(map[string]int, len(names))
	for _, name := range names {
		records := h.History.List(ctx, name)
		seen[name] = len(records)
		pp.TitleWithCount(name, len(records))
		pp.Records(records...)
	}

	if !h.Follow {
		return nil
	}
	return h.follow(ctx, pp, seen)
}

func (h *History) follow(ctx context.Context, pp *printers.PrettyPrint, seen map[string]int) error {
	events, err := h.History.Watch(ctx)
	if err != nil {
		return err
	}
	for range events {
		for _, name := range h.History.Names(ctx) {
			if h.Name != "" && name != h.Name {
				continue
			}
			records := h.History.List(ctx, name)
			if len(records) <= seen[name] {
				seen[name] = len(records)
				continue
			}
			pp.Records(records[seen[name]:]...)
			seen[name] = len(records)
		}
	}
	return ctx.Err()
}

// summary renders one row per name with its count and newest value.
func summary(ctx context.Context, hist store.History) string {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Picks"), bold.Sprint("Last"))
	for _, name := range hist.Names(ctx) {
		records := hist.List(ctx, name)
		last := ""
		if n := len(records); n > 0 {
			last = records[n-1].Formatted
		}
		tbl.AddRow(name, len(records), last)
	}
	tbl.RightAlign(1)
	return strings.TrimRight(fmt.Sprint(tbl), "\n")
}
