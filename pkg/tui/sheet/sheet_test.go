package sheet

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/require"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/format"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/tui/theme"
)

func newSheet(t *testing.T, code format.Code, initial time.Time, opts Options, engineOpts ...picker.Option) *Model {
	t.Helper()
	engineOpts = append(engineOpts, picker.WithCalendar(calendar.New(time.UTC)))
	e := picker.New(code, initial, engineOpts...)
	if opts.Now.IsZero() {
		opts.Now = initial
	}
	opts.Theme = theme.Default(true)
	m := New(e, opts)
	m.SetSize(100, 20)
	return m
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func plain(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			inSeq = true
			continue
		}
		if inSeq {
			if ansi.IsTerminator(r) {
				inSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var (
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	up    = tea.KeyPressMsg{Code: tea.KeyUp}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
	left  = tea.KeyPressMsg{Code: tea.KeyLeft}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	endK  = tea.KeyPressMsg{Code: tea.KeyEnd}
	pgdn  = tea.KeyPressMsg{Code: tea.KeyPgDown}
)

func TestFocusWraps(t *testing.T) {
	m := newSheet(t, format.YYYYMMDD, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Options{})
	require.Equal(t, 0, m.Focus())
	press(m, left)
	require.Equal(t, 2, m.Focus())
	press(m, right, right)
	require.Equal(t, 1, m.Focus())
}

func TestArrowsMoveFocusedColumn(t *testing.T) {
	m := newSheet(t, format.YYYYMMDD, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Options{})
	press(m, right, down)
	require.Equal(t, time.April, m.Engine().Selected().Month())
	press(m, right, up, up)
	require.Equal(t, 13, m.Engine().Selected().Day())
}

func TestMonthChangeClampsDay(t *testing.T) {
	m := newSheet(t, format.DDMMYYYY, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), Options{})
	press(m, right, down)
	require.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), m.Engine().Selected())
	require.Equal(t, 28, m.Engine().RowCount(0))
	require.Equal(t, 1, m.reloads)
}

func TestPageAndEndStopAtLastRow(t *testing.T) {
	m := newSheet(t, format.DDMMYYYY, time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), Options{})
	press(m, pgdn)
	require.Equal(t, 20, m.Engine().Selected().Day())
	press(m, pgdn, pgdn)
	require.Equal(t, 28, m.Engine().Selected().Day())
	press(m, tea.KeyPressMsg{Code: tea.KeyHome})
	require.Equal(t, 1, m.Engine().Selected().Day())
	press(m, endK)
	require.Equal(t, 28, m.Engine().Selected().Day())
}

func TestConfirmFiresOnce(t *testing.T) {
	calls := 0
	var got picker.Selection
	m := newSheet(t, format.YYYYMMDD, time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC), Options{},
		picker.WithOnConfirm(func(sel picker.Selection) {
			calls++
			got = sel
		}))

	cmd := press(m, enter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(ConfirmedMsg)
	require.True(t, ok)
	require.Equal(t, "2025/03/15", msg.Selection.Formatted)
	require.Equal(t, "2025/03/15", got.Formatted)
	require.False(t, m.Active())

	require.Nil(t, press(m, enter))
	require.Equal(t, 1, calls)
	require.Empty(t, m.View())
}

func TestCancelSkipsCallback(t *testing.T) {
	called := false
	m := newSheet(t, format.YYYYMMDD, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Options{},
		picker.WithOnConfirm(func(picker.Selection) { called = true }))
	cmd := press(m, tea.KeyPressMsg{Text: "q", Code: 'q'})
	require.IsType(t, CancelledMsg{}, cmd())
	require.False(t, called)
	require.False(t, m.Active())
}

func TestViewShowsToolbarColumnsAndPreview(t *testing.T) {
	m := newSheet(t, format.DDMMYYYYhhmmA, time.Date(2025, time.March, 15, 13, 5, 0, 0, time.UTC), Options{
		CancelTitle:  "Back",
		ConfirmTitle: "Done",
	})
	m.SetSize(120, 20)
	view := plain(m.View())

	require.Contains(t, view, "Back")
	require.Contains(t, view, "Done")
	require.Contains(t, view, "March 2025")
	require.Contains(t, view, "15/03/2025 01:05 PM")
	for _, title := range []string{"day", "month", "year", "hour", "minute", "ampm"} {
		require.Contains(t, view, title)
	}
	require.Contains(t, view, "PM")
	require.Contains(t, view, "enter confirm")
}

func TestViewDropsPreviewWhenNarrow(t *testing.T) {
	m := newSheet(t, format.DDMMYYYY, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Options{})
	m.SetSize(30, 10)
	require.NotContains(t, plain(m.View()), "March 2025")

	m = newSheet(t, format.DDMMYYYY, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Options{HidePreview: true})
	require.NotContains(t, plain(m.View()), "March 2025")
}

func TestDefaultTitles(t *testing.T) {
	m := newSheet(t, format.DDMMYYYY, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Options{CancelTitle: "  "})
	view := plain(m.View())
	require.Contains(t, view, "Cancel")
	require.Contains(t, view, "Confirm")
}

func TestFormatChangedKeepsFocusInRange(t *testing.T) {
	m := newSheet(t, format.DDMMYYYYhhmmA, time.Date(2025, time.March, 15, 13, 5, 0, 0, time.UTC), Options{})
	press(m, left)
	require.Equal(t, 5, m.Focus())
	m.FormatChanged(format.DDMMYYYY)
	require.Equal(t, 2, m.Focus())
	require.Equal(t, 3, m.Engine().ColumnCount())
}

func TestBoundsStopMovement(t *testing.T) {
	min := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	max := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	m := newSheet(t, format.DDMMYYYY, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Options{},
		picker.WithBounds(min, max))
	require.Equal(t, 31, m.Engine().RowCount(0))
	press(m, endK)
	require.Equal(t, 20, m.Engine().Selected().Day())
	press(m, pgdn)
	require.Equal(t, 20, m.Engine().Selected().Day())
}

func TestHelpToggle(t *testing.T) {
	m := newSheet(t, format.DDMMYYYY, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Options{})
	require.NotContains(t, plain(m.View()), "forward 10")
	press(m, tea.KeyPressMsg{Text: "?", Code: '?'})
	require.Contains(t, plain(m.View()), "forward 10")
	require.True(t, m.Active())
}
