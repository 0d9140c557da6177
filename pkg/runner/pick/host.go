package pick

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/tui/components/signallog"
	"tableflip.dev/datepick/pkg/tui/sheet"
	"tableflip.dev/datepick/pkg/tui/ui/overlay"
)

// host is the top level Bubble Tea model: a backdrop with the sheet along
// the bottom edge.
type host struct {
	sheet    *sheet.Model
	signals  *signallog.Model
	backdrop []string
	style    lipgloss.Style

	width  int
	height int

	confirmed *picker.Selection
	cancelled bool
}

func newHost(s *sheet.Model, backdrop []string, style lipgloss.Style) *host {
	return &host{sheet: s, backdrop: backdrop, style: style}
}

func (h *host) Init() tea.Cmd {
	return h.sheet.Init()
}

func (h *host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height
		h.sheet.SetSize(msg.Width, msg.Height)
		if h.signals != nil {
			h.signals.SetSize(msg.Width, max(4, msg.Height/3))
		}
		return h, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			h.cancelled = true
			return h, tea.Quit
		}
	case sheet.ConfirmedMsg:
		sel := msg.Selection
		h.confirmed = &sel
		return h, tea.Quit
	case sheet.CancelledMsg:
		h.cancelled = true
		return h, tea.Quit
	}
	_, cmd := h.sheet.Update(msg)
	return h, cmd
}

func (h *host) View() string {
	background := strings.Join(h.backdrop, "\n")
	if h.signals != nil {
		background = h.signals.View() + "\n" + background
	}
	return overlay.Bottom(background, h.sheet.View(), overlay.Options{
		Width:    h.width,
		Height:   h.height,
		Backdrop: h.style,
	})
}
