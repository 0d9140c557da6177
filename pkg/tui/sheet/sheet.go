// Package sheet presents a picker engine as a bottom sheet with a
// cancel/confirm toolbar.
package sheet

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/datepick/pkg/format"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/tui/components/calendar"
	"tableflip.dev/datepick/pkg/tui/theme"
	"tableflip.dev/datepick/pkg/tui/ui"
)

// Ensure Model satisfies the Modal interface.
var _ ui.Modal = (*Model)(nil)

// ConfirmedMsg is emitted once when the user confirms.
type ConfirmedMsg struct {
	Selection picker.Selection
}

// CancelledMsg is emitted when the user dismisses the sheet.
type CancelledMsg struct{}

const (
	defaultCancelTitle  = "Cancel"
	defaultConfirmTitle = "Confirm"
	defaultVisibleRows  = 5
	pageRows            = 10
)

// Options configures the sheet.
type Options struct {
	CancelTitle  string
	ConfirmTitle string
	Theme        theme.Theme
	Keys         *KeyMap
	// VisibleRows is the odd number of rows drawn per column.
	VisibleRows int
	// Now marks today in the month preview; zero uses time.Now.
	Now time.Time
	// HidePreview drops the month preview.
	HidePreview bool
}

// Model is the Bubble Tea bottom sheet.
type Model struct {
	engine *picker.Engine
	keys   KeyMap
	help   help.Model
	theme  theme.Theme

	cancelTitle  string
	confirmTitle string
	visibleRows  int
	now          time.Time
	hidePreview  bool

	focus  int
	active bool
	width  int
	height int

	reloads int
}

// New wraps engine in a sheet.
func New(engine *picker.Engine, opts Options) *Model {
	m := &Model{
		engine:       engine,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		theme:        opts.Theme,
		cancelTitle:  opts.CancelTitle,
		confirmTitle: opts.ConfirmTitle,
		visibleRows:  opts.VisibleRows,
		now:          opts.Now,
		hidePreview:  opts.HidePreview,
		active:       true,
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	}
	if strings.TrimSpace(m.cancelTitle) == "" {
		m.cancelTitle = defaultCancelTitle
	}
	if strings.TrimSpace(m.confirmTitle) == "" {
		m.confirmTitle = defaultConfirmTitle
	}
	if m.visibleRows <= 0 {
		m.visibleRows = defaultVisibleRows
	}
	if m.visibleRows%2 == 0 {
		m.visibleRows++
	}
	return m
}

// Engine returns the hosted engine.
func (m *Model) Engine() *picker.Engine { return m.engine }

// Focus returns the focused column.
func (m *Model) Focus() int { return m.focus }

// Active implements ui.Modal.
func (m *Model) Active() bool { return m.active }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m, m.confirm()
		case key.Matches(msg, m.keys.Cancel):
			return m, m.cancel()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Left):
			m.moveFocus(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveFocus(1)
		case key.Matches(msg, m.keys.Up):
			m.moveRow(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveRow(1)
		case key.Matches(msg, m.keys.PageUp):
			m.moveRow(-pageRows)
		case key.Matches(msg, m.keys.PageDown):
			m.moveRow(pageRows)
		case key.Matches(msg, m.keys.First):
			m.selectRow(0)
		case key.Matches(msg, m.keys.Last):
			m.selectRow(m.engine.RowCount(m.focus) - 1)
		}
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	n := m.engine.ColumnCount()
	if n == 0 {
		return
	}
	m.focus = (m.focus + delta + n) % n
}

func (m *Model) moveRow(delta int) {
	m.selectRow(m.engine.CurrentRow(m.focus) + delta)
}

func (m *Model) selectRow(row int) {
	n := m.engine.RowCount(m.focus)
	if n == 0 {
		return
	}
	if row < 0 {
		row = 0
	}
	if row >= n {
		row = n - 1
	}
	if row == m.engine.CurrentRow(m.focus) {
		return
	}
	for _, s := range m.engine.RowChanged(m.focus, row) {
		if s.Kind == picker.ReloadColumn || s.Kind == picker.ReloadAll {
			m.reloads++
			log.Printf("sheet: %s", s)
		}
	}
}

// FormatChanged switches the hosted engine to code and keeps the focus on a
// valid column.
func (m *Model) FormatChanged(code format.Code) {
	if m.engine.FormatChanged(code) == nil {
		return
	}
	m.reloads++
	if m.focus >= m.engine.ColumnCount() {
		m.focus = m.engine.ColumnCount() - 1
	}
}

// confirm hands the selection to the engine's confirm callback and to the
// parent model as a ConfirmedMsg.
func (m *Model) confirm() tea.Cmd {
	m.active = false
	sel := m.engine.Confirm()
	return func() tea.Msg { return ConfirmedMsg{Selection: sel} }
}

func (m *Model) cancel() tea.Cmd {
	m.active = false
	m.engine.Cancel()
	return func() tea.Msg { return CancelledMsg{} }
}

// View implements ui.Component.
func (m *Model) View() string {
	if !m.active {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	sh := m.theme.Sheet
	inner := width - sh.Frame.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	body := m.renderColumns()
	if !m.hidePreview {
		preview := m.renderPreview()
		if lipgloss.Width(body)+calendar.Width+4 <= inner {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "    ", preview)
		}
	}

	value := sh.Faint.Render(m.engine.Selection().Formatted)
	lines := []string{
		m.renderToolbar(inner),
		"",
		body,
		"",
		value,
		m.renderHelp(),
	}
	return sh.Frame.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderToolbar(width int) string {
	sh := m.theme.Sheet
	half := width / 2
	cancel := sh.Button.Render(truncate.StringWithTail(m.cancelTitle, uint(max(half-4, 1)), "…"))
	confirm := sh.Button.Render(truncate.StringWithTail(m.confirmTitle, uint(max(half-4, 1)), "…"))
	gap := width - lipgloss.Width(cancel) - lipgloss.Width(confirm)
	if gap < 1 {
		gap = 1
	}
	return sh.Toolbar.Render(cancel + strings.Repeat(" ", gap) + confirm)
}

// cellWidth maps a column width hint to terminal cells.
func cellWidth(hint int) int {
	return (hint + 12) / 12
}

func (m *Model) renderColumns() string {
	sh := m.theme.Sheet
	half := m.visibleRows / 2
	cols := make([]string, 0, m.engine.ColumnCount())
	for c := 0; c < m.engine.ColumnCount(); c++ {
		kind, _ := m.engine.Kind(c)
		w := max(cellWidth(m.engine.WidthHint(kind)), len(kind.String())+1)
		label := sh.Column.Width(w)
		if c == m.focus {
			label = sh.Focused.Width(w)
		}
		lines := []string{label.Render(kind.String())}

		current := m.engine.CurrentRow(c)
		for off := -half; off <= half; off++ {
			row := current + off
			title := m.engine.Title(c, row)
			style := sh.Row
			if off == 0 {
				style = sh.Selected
			} else if off < -1 || off > 1 {
				style = sh.Faint
			}
			lines = append(lines, style.Width(w).Align(lipgloss.Center).Render(title))
		}
		cols = append(cols, strings.Join(lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) renderPreview() string {
	cal := m.engine.Calendar()
	f := cal.Fields(m.engine.Selected())
	now := m.now
	if now.IsZero() {
		now = time.Now()
	}
	today := 0
	if nf := cal.Fields(now); nf.Year == f.Year && nf.Month == f.Month {
		today = nf.Day
	}
	bounds := m.engine.Bounds()
	loc := cal.Location()
	return calendar.Render(calendar.Month{
		Year:     f.Year,
		Month:    f.Month,
		Days:     cal.DaysIn(f.Year, f.Month),
		Selected: f.Day,
		Today:    today,
		Enabled: func(day int) bool {
			return bounds.HasDay(f.Year, f.Month, day, loc)
		},
	}, m.theme.Calendar)
}

func (m *Model) renderHelp() string {
	return m.theme.Sheet.Help.Render(m.help.View(m.keys))
}
