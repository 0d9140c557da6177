// Package pick runs the interactive picker sheet.
package pick

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/store"
	"tableflip.dev/datepick/pkg/tui/components/signallog"
	"tableflip.dev/datepick/pkg/tui/sheet"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// ErrCancelled is returned when the sheet is dismissed without confirming.
var ErrCancelled = errors.New("cancelled")

// Pick shows Engine as a bottom sheet and prints the confirmed value.
type Pick struct {
	Engine *picker.Engine

	// History stores confirmed picks under Name; nil disables it.
	History store.History
	Name    string

	CancelTitle  string
	ConfirmTitle string
	ToolbarColor string

	// Signals, when set, is shown above the sheet. It should also be the
	// engine's observer.
	Signals *signallog.Model

	JSON bool
	Out  io.Writer
	// Interactive forces or skips the sheet; nil decides from stdout.
	Interactive *bool
}

// Do runs the sheet, or prints the initial value when stdout is not a
// terminal.
func (p *Pick) Do(ctx context.Context) error {
	sel, err := p.run(ctx)
	if err != nil {
		return err
	}

	if p.History != nil {
		rec := store.NewRecord(p.Name, p.Engine.Format(), sel, time.Now())
		if err := p.History.Save(rec); err != nil {
			return errors.Wrap(err, "save pick")
		}
	}

	pp := &printers.PrettyPrint{Out: p.Out}
	if p.JSON {
		return pp.SelectionJSON(sel)
	}
	pp.Selection(sel)
	return nil
}

func (p *Pick) interactive() bool {
	if p.Interactive != nil {
		return *p.Interactive
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *Pick) run(ctx context.Context) (picker.Selection, error) {
	if !p.interactive() {
		log.Printf("pick: stdout is not a terminal, using %s", p.Engine.Selection().Formatted)
		return p.Engine.Selection(), nil
	}

	dark := termenv.HasDarkBackground()
	th := theme.WithToolbar(p.ToolbarColor, dark)
	s := sheet.New(p.Engine, sheet.Options{
		CancelTitle:  p.CancelTitle,
		ConfirmTitle: p.ConfirmTitle,
		Theme:        th,
	})
	h := newHost(s, p.backdrop(), th.Sheet.Faint)
	h.signals = p.Signals

	prog := tea.NewProgram(h, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		return picker.Selection{}, errors.Wrap(err, "run picker")
	}
	if h.confirmed == nil {
		return picker.Selection{}, ErrCancelled
	}
	return *h.confirmed, nil
}

// backdrop describes the pick behind the sheet.
func (p *Pick) backdrop() []string {
	e := p.Engine
	title := lipgloss.NewStyle().Bold(true).Render("datepick")
	lines := []string{
		"",
		"  " + title,
		"",
		fmt.Sprintf("  format   %s (%s)", e.Format(), e.Format().Pattern()),
	}
	b := e.Bounds()
	if b.HasMin() {
		lines = append(lines, "  min      "+e.Format().Format(b.Min))
	}
	if b.HasMax() {
		lines = append(lines, "  max      "+e.Format().Format(b.Max))
	}
	if p.History != nil {
		name := p.Name
		if name == "" {
			name = store.DefaultName
		}
		lines = append(lines, "  saved as "+name)
	}
	return lines
}

// Remembered returns the newest stored value for name, or the zero time.
func Remembered(ctx context.Context, h store.History, name string) time.Time {
	if h == nil {
		return time.Time{}
	}
	if name == "" {
		name = store.DefaultName
	}
	rec, ok := h.Last(ctx, name)
	if !ok {
		return time.Time{}
	}
	return rec.Date
}
