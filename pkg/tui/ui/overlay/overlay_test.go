package overlay

import (
	"strings"
	"testing"
)

func TestBottomKeepsBackgroundAbove(t *testing.T) {
	out := Bottom("one\ntwo\nthree\nfour", "AA\nBB", Options{Width: 5, Height: 4})
	lines := strings.Split(out, "\n")
	want := []string{"one  ", "two  ", "AA   ", "BB   "}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestBottomTallSheetKeepsToolbar(t *testing.T) {
	out := Bottom("", "toolbar\nrow1\nrow2", Options{Width: 7, Height: 2})
	if out != "toolbar\nrow1   " {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestBottomTruncatesWideLines(t *testing.T) {
	out := Bottom("a very long background line", "sheet", Options{Width: 4, Height: 2})
	lines := strings.Split(out, "\n")
	if lines[0] != "a ve" || lines[1] != "shee" {
		t.Fatalf("unexpected lines %q", lines)
	}
}
