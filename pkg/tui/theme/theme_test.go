package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
)

func TestWithToolbarFallsBack(t *testing.T) {
	bad := WithToolbar("not-a-colour", true)
	good := Default(true)
	if bad.Sheet.Toolbar.GetBackground() != good.Sheet.Toolbar.GetBackground() {
		t.Fatalf("expected invalid toolbar colour to fall back to the default")
	}
}

func TestSelectedDiffersFromToolbar(t *testing.T) {
	th := WithToolbar("#336699", false)
	if th.Sheet.Selected.GetBackground() == th.Sheet.Toolbar.GetBackground() {
		t.Fatalf("expected selected row to be shaded away from the toolbar colour")
	}
	if th.Sheet.Toolbar.GetBackground() != lipgloss.Color("#336699") {
		t.Fatalf("unexpected toolbar background %v", th.Sheet.Toolbar.GetBackground())
	}
}
