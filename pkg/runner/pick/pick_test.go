package pick

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/format"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/store"
	"tableflip.dev/datepick/pkg/tui/components/signallog"
	"tableflip.dev/datepick/pkg/tui/sheet"
	"tableflip.dev/datepick/pkg/tui/theme"
)

type basePath string

func (b basePath) BasePath() string { return string(b) }

func newEngine() *picker.Engine {
	return picker.New(format.YYYYMMDD, time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC),
		picker.WithCalendar(calendar.New(time.UTC)),
		picker.WithBounds(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), time.Time{}))
}

func TestNonInteractivePrintsAndSaves(t *testing.T) {
	color.NoColor = true
	h, err := store.Load(basePath(t.TempDir()))
	require.NoError(t, err)

	off := false
	var buf bytes.Buffer
	p := Pick{Engine: newEngine(), History: h, Name: "deadline", Out: &buf, Interactive: &off}
	require.NoError(t, p.Do(context.Background()))
	require.Equal(t, "2025/03/15  (year, month, day)\n", buf.String())

	rec, ok := h.Last(context.Background(), "deadline")
	require.True(t, ok)
	require.Equal(t, "2025/03/15", rec.Formatted)
	require.Equal(t, "yyyyMMdd", rec.Format)

	got := Remembered(context.Background(), h, "deadline")
	require.True(t, got.Equal(time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)))
	require.True(t, Remembered(context.Background(), h, "other").IsZero())
	require.True(t, Remembered(context.Background(), nil, "deadline").IsZero())
}

func TestHostQuitsOnConfirm(t *testing.T) {
	e := newEngine()
	s := sheet.New(e, sheet.Options{Theme: theme.Default(true)})
	h := newHost(s, []string{"backdrop"}, theme.Default(true).Sheet.Faint)

	_, _ = h.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := h.View()
	require.Len(t, strings.Split(view, "\n"), 30)
	require.Contains(t, view, "backdrop")

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	_, quit := h.Update(msg)
	require.NotNil(t, quit)
	require.IsType(t, tea.QuitMsg{}, quit())
	require.NotNil(t, h.confirmed)
	require.Equal(t, "2025/03/15", h.confirmed.Formatted)
}

func TestHostCancel(t *testing.T) {
	s := sheet.New(newEngine(), sheet.Options{Theme: theme.Default(false)})
	h := newHost(s, nil, theme.Default(false).Sheet.Faint)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, quit := h.Update(cmd())
	require.IsType(t, tea.QuitMsg{}, quit())
	require.True(t, h.cancelled)
	require.Nil(t, h.confirmed)
}

func TestBackdrop(t *testing.T) {
	p := Pick{Engine: newEngine()}
	text := strings.Join(p.backdrop(), "\n")
	require.Contains(t, text, "yyyyMMdd (yyyy/MM/dd)")
	require.Contains(t, text, "min      2025/01/01")
	require.NotContains(t, text, "max")
}

func TestHostShowsSignals(t *testing.T) {
	log := signallog.New(10, nil)
	e := picker.New(format.DDMMYYYY, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		picker.WithCalendar(calendar.New(time.UTC)), picker.WithObserver(log))
	h := newHost(sheet.New(e, sheet.Options{Theme: theme.Default(true)}), nil, theme.Default(true).Sheet.Faint)
	h.signals = log

	_, _ = h.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	_, _ = h.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, _ = h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	require.NotEmpty(t, log.Entries())
	require.Contains(t, h.View(), "Signals")
}
