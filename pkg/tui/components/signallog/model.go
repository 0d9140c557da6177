// Package signallog renders the refresh signals a picker engine emits as a
// scrolling log.
package signallog

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/tui/ui"
)

// Ensure Model satisfies the Component and Observer interfaces.
var (
	_ ui.Component    = (*Model)(nil)
	_ picker.Observer = (*Model)(nil)
)

// Entry captures a received signal.
type Entry struct {
	Timestamp time.Time
	Signal    picker.Signal
	// Column names the signalled column, empty for ReloadAll.
	Column string
}

// Model renders a streaming signal log, newest first.
type Model struct {
	viewport viewport.Model
	entries  []Entry
	label    func(column int) string
	now      func() time.Time

	maxEntries int

	width  int
	height int

	styles Styles
}

// Styles controls the log's presentation.
type Styles struct {
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Select    lipgloss.Style
	Reload    lipgloss.Style
	Timestamp lipgloss.Style
}

// DefaultStyles returns the stock styling.
func DefaultStyles() Styles {
	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	return Styles{
		Frame:     border,
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		Select:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Reload:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// New constructs a log capped at maxEntries. label names columns; nil prints
// column numbers.
func New(maxEntries int, label func(column int) string) *Model {
	if maxEntries <= 0 {
		maxEntries = 200
	}
	vp := viewport.New(
		viewport.WithWidth(1),
		viewport.WithHeight(1),
	)
	return &Model{
		viewport:   vp,
		label:      label,
		now:        time.Now,
		maxEntries: maxEntries,
		styles:     DefaultStyles(),
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component. The log is passive; entries arrive through
// the Observer methods.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	return m, nil
}

// SetSize resizes the viewport while keeping the header and border intact.
func (m *Model) SetSize(width, height int) {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	innerWidth := max(1, width-2)
	innerHeight := max(1, height-2)
	headerRows := 1
	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(max(1, innerHeight-headerRows))
	m.refreshContent()
}

// View renders the bordered viewport.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.styles.Header.Render("Signals")
	body := lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
	return m.styles.Frame.Width(m.width).Height(m.height).Render(body)
}

// Entries returns the logged entries, newest first.
func (m *Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// ReloadColumn implements picker.Observer.
func (m *Model) ReloadColumn(column int) {
	m.append(picker.Signal{Kind: picker.ReloadColumn, Column: column})
}

// ReloadAll implements picker.Observer.
func (m *Model) ReloadAll() {
	m.append(picker.Signal{Kind: picker.ReloadAll})
}

// SelectionChanged implements picker.Observer.
func (m *Model) SelectionChanged(column, row int) {
	m.append(picker.Signal{Kind: picker.SelectionChanged, Column: column, Row: row})
}

func (m *Model) append(s picker.Signal) {
	e := Entry{Timestamp: m.now(), Signal: s}
	if s.Kind != picker.ReloadAll {
		e.Column = fmt.Sprintf("column %d", s.Column)
		if m.label != nil {
			e.Column = m.label(s.Column)
		}
	}
	m.entries = append([]Entry{e}, m.entries...)
	if len(m.entries) > m.maxEntries {
		m.entries = m.entries[:m.maxEntries]
	}
	m.refreshContent()
	m.viewport.SetYOffset(0)
}

func (m *Model) refreshContent() {
	lines := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		lines = append(lines, m.renderEntry(entry))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = m.styles.Timestamp.Render("No signals yet")
	}
	m.viewport.SetContent(content)
}

func (m *Model) renderEntry(entry Entry) string {
	ts := m.styles.Timestamp.Render(entry.Timestamp.Format("15:04:05.000"))
	var msg string
	switch entry.Signal.Kind {
	case picker.ReloadAll:
		msg = m.styles.Reload.Render("reload all columns")
	case picker.ReloadColumn:
		msg = m.styles.Reload.Render("reload " + entry.Column)
	default:
		msg = m.styles.Select.Render(fmt.Sprintf("select row %d of %s", entry.Signal.Row, entry.Column))
	}
	return fmt.Sprintf("%s %s", ts, msg)
}
