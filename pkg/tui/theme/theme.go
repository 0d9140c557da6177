// Package theme holds the Lip Gloss styles of the picker sheet.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultToolbar is the toolbar background colour.
const DefaultToolbar = "#8B5A2B"

// Theme centralizes the styles used by the sheet.
type Theme struct {
	Sheet    SheetTheme
	Calendar CalendarTheme
}

// SheetTheme styles the bottom sheet.
type SheetTheme struct {
	Frame    lipgloss.Style
	Toolbar  lipgloss.Style
	Button   lipgloss.Style
	Column   lipgloss.Style
	Focused  lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Faint    lipgloss.Style
	Help     lipgloss.Style
}

// CalendarTheme styles the month preview.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Day      lipgloss.Style
	Disabled lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// Default returns the theme for a dark or light terminal, built around the
// default toolbar colour.
func Default(dark bool) Theme {
	return WithToolbar(DefaultToolbar, dark)
}

// WithToolbar returns the theme built around a toolbar colour given as
// "#rrggbb". Invalid colours fall back to DefaultToolbar.
func WithToolbar(hex string, dark bool) Theme {
	base, err := colorful.Hex(hex)
	if err != nil {
		base, _ = colorful.Hex(DefaultToolbar)
	}
	// The selected row shares the toolbar hue, pushed towards the terminal
	// background so it stays readable.
	bg, _ := colorful.Hex("#ffffff")
	text := "0"
	if dark {
		bg, _ = colorful.Hex("#000000")
		text = "15"
	}
	highlight := base.BlendLab(bg, 0.35).Clamped().Hex()

	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	return Theme{
		Sheet: SheetTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true, true, false, true).
				Padding(0, 1),
			Toolbar: lipgloss.NewStyle().
				Background(lipgloss.Color(base.Hex())).
				Foreground(lipgloss.Color("15")),
			Button:   lipgloss.NewStyle().Bold(true).Padding(0, 2),
			Column:   lipgloss.NewStyle().Align(lipgloss.Center),
			Focused:  lipgloss.NewStyle().Align(lipgloss.Center).Underline(true),
			Row:      lipgloss.NewStyle().Foreground(lipgloss.Color(text)),
			Selected: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color(highlight)).Foreground(lipgloss.Color("15")),
			Faint:    faint,
			Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Empty:    faint,
			Day:      lipgloss.NewStyle().Foreground(lipgloss.Color(text)),
			Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color(highlight)).Foreground(lipgloss.Color("15")),
		},
	}
}
