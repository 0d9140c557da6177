// Package ui defines the contracts shared by the picker's Bubble Tea widgets.
package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component defines the contract for reusable Bubble Tea widgets.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Modal is a component shown above other content until it is dismissed.
type Modal interface {
	Component
	// Active reports whether the modal is still presented.
	Active() bool
}
