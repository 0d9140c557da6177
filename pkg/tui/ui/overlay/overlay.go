// Package overlay stacks modal views over background content.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
)

// Options controls how the foreground is placed.
type Options struct {
	Width  int
	Height int
	// Backdrop is applied to background lines left visible above the sheet.
	Backdrop lipgloss.Style
}

// Bottom places sheet along the bottom edge of a width×height canvas drawn
// from background. When the sheet is taller than the canvas its top rows,
// which carry the toolbar, are kept.
func Bottom(background, sheet string, opts Options) string {
	if opts.Height <= 0 || opts.Width <= 0 {
		return sheet
	}
	canvas := strings.Split(background, "\n")
	if len(canvas) > opts.Height {
		canvas = canvas[:opts.Height]
	}
	for len(canvas) < opts.Height {
		canvas = append(canvas, "")
	}

	fg := strings.Split(sheet, "\n")
	if sheet == "" {
		fg = nil
	}
	if len(fg) > opts.Height {
		fg = fg[:opts.Height]
	}
	top := opts.Height - len(fg)

	for i := range canvas {
		if i < top {
			canvas[i] = opts.Backdrop.Render(fit(canvas[i], opts.Width))
			continue
		}
		canvas[i] = fit(fg[i-top], opts.Width)
	}
	return strings.Join(canvas, "\n")
}

// fit truncates or pads line to exactly width cells.
func fit(line string, width int) string {
	w := lipgloss.Width(line)
	if w > width {
		line = truncate.String(line, uint(width))
		w = lipgloss.Width(line)
	}
	if w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}
