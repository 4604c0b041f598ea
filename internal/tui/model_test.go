package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/elevate/internal/banner"
	ui "github.com/alexisbeaulieu97/elevate/internal/components"
	"github.com/alexisbeaulieu97/elevate/internal/config"
	"github.com/alexisbeaulieu97/elevate/internal/touch"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(config.Default(), nil)
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 200})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func sendCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// rowOf finds the first screen row of the control at index.
func rowOf(t *testing.T, m Model, index int) int {
	t.Helper()
	for y := headerHeight; y < m.height; y++ {
		if m.scroll.ItemAt(0, y) == index {
			return y
		}
	}
	t.Fatalf("control %d is not on screen", index)
	return -1
}

func indexOf(t *testing.T, m Model, id string) int {
	t.Helper()
	for i, c := range m.controls {
		if c.id == id {
			return i
		}
	}
	t.Fatalf("no control %q", id)
	return -1
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease}
}

func tap(t *testing.T, m Model, x, y int) (Model, tea.Cmd) {
	t.Helper()
	m = send(t, m, press(x, y))
	return sendCmd(t, m, release(x, y))
}

func TestNewModelRegistersControls(t *testing.T) {
	m := newTestModel(t)

	require.Len(t, m.Tallies(), len(m.controls))
	assert.Equal(t, 200-headerHeight-footerHeight, m.scroll.Height())
	assert.Len(t, m.scroll.Items(), len(m.controls)+1, "controls plus the activity panel")

	for _, c := range m.controls {
		if c.disabled() {
			assert.Nil(t, c.adapter, c.id)
			continue
		}
		require.NotNil(t, c.adapter, c.id)
		assert.False(t, c.reg.DelaysTouches, c.id)
		assert.Equal(t, c.exclusive(), c.reg.Exclusive, c.id)
		assert.Equal(t, 20.0, c.adapter.Threshold())
	}
}

func TestInitShowsWelcomeBanner(t *testing.T) {
	m := newTestModel(t)
	msg := m.Init()()
	show, ok := msg.(banner.ShowMsg)
	require.True(t, ok)
	assert.NotEmpty(t, show.Item.Message)
}

func TestTapShowsBanner(t *testing.T) {
	m := newTestModel(t)
	primary := indexOf(t, m, "button-primary")
	row := rowOf(t, m, primary)

	m = send(t, m, press(1, row))
	assert.True(t, m.controls[primary].button.Pressed(), "feedback appears on press")

	m, cmd := sendCmd(t, m, release(2, row))
	assert.False(t, m.controls[primary].button.Pressed())
	require.NotNil(t, cmd)

	show, ok := cmd().(banner.ShowMsg)
	require.True(t, ok)
	assert.Equal(t, "Primary button tapped", show.Item.Message)
	assert.Equal(t, ui.NotificationTonePrimary, show.Item.Tone)

	assert.Equal(t, 1, m.Tallies()[primary].Fired)
	events := m.Events()
	require.Len(t, events, 1)
	assert.Equal(t, touch.OutcomeFired, events[0].Outcome)
	assert.Equal(t, 8.0, events[0].Distance)

	m = send(t, m, show)
	assert.True(t, m.banner.Presented())
}

func TestDragScrollsInsteadOfTapping(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})
	secondary := indexOf(t, m, "button-secondary")
	row := rowOf(t, m, secondary)

	m = send(t, m, press(1, row))
	m, cmd := sendCmd(t, m, motion(1, row-1))
	assert.Nil(t, cmd)
	assert.False(t, m.controls[secondary].button.Pressed(), "the scroll took the touch")
	assert.Equal(t, 1, m.scroll.YOffset())

	m, cmd = sendCmd(t, m, release(1, row-1))
	assert.Nil(t, cmd)

	tally := m.Tallies()[secondary]
	assert.Zero(t, tally.Fired)
	assert.Equal(t, 1, tally.Cancelled)
}

func TestSidewaysSlideIsSuppressed(t *testing.T) {
	m := newTestModel(t)
	primary := indexOf(t, m, "button-primary")
	row := rowOf(t, m, primary)

	m = send(t, m, press(1, row))
	m = send(t, m, motion(5, row))
	m, cmd := sendCmd(t, m, release(5, row))

	assert.Nil(t, cmd, "32 units is past the threshold")
	assert.Equal(t, 1, m.Tallies()[primary].Suppressed)
}

func TestChipTogglesOnTap(t *testing.T) {
	m := newTestModel(t)
	chip := indexOf(t, m, "chip-Filters")
	row := rowOf(t, m, chip)

	m, cmd := tap(t, m, 1, row)
	require.NotNil(t, cmd)
	assert.Equal(t, "Filters on", cmd().(banner.ShowMsg).Item.Message)
	assert.True(t, m.controls[chip].chip.Selected())

	_, cmd = tap(t, m, 1, row)
	assert.Equal(t, "Filters off", cmd().(banner.ShowMsg).Item.Message)
}

func TestExclusiveCardKeepsDrag(t *testing.T) {
	m := newTestModel(t)
	card := indexOf(t, m, "card-Signature")
	row := rowOf(t, m, card) + 2

	m = send(t, m, press(1, row))
	m = send(t, m, motion(1, row-2))
	assert.True(t, m.controls[card].card.Pressed(), "exclusive controls are never cancelled by scrolling")
	assert.Equal(t, 0, m.scroll.YOffset())

	m = send(t, m, release(1, row-2))
	tally := m.Tallies()[card]
	assert.Equal(t, 1, tally.Suppressed)
	assert.Zero(t, tally.Cancelled)
}

func TestDisabledControlIgnoresTaps(t *testing.T) {
	m := newTestModel(t)
	disabled := indexOf(t, m, "button-disabled")

	m, cmd := tap(t, m, 1, rowOf(t, m, disabled))
	assert.Nil(t, cmd)
	assert.Zero(t, m.Tallies()[disabled].Total())
	assert.Empty(t, m.Events())
}

func TestBlurCancelsTouch(t *testing.T) {
	m := newTestModel(t)
	primary := indexOf(t, m, "button-primary")
	row := rowOf(t, m, primary)

	m = send(t, m, press(1, row))
	m = send(t, m, tea.BlurMsg{})
	m, cmd := sendCmd(t, m, release(1, row))

	assert.Nil(t, cmd)
	assert.False(t, m.controls[primary].button.Pressed())
	assert.Equal(t, 1, m.Tallies()[primary].Cancelled)
	assert.Zero(t, m.Tallies()[primary].Fired)
}

func TestKeys(t *testing.T) {
	m := newTestModel(t)

	_, cmd := sendCmd(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, banner.DismissMsg{}, cmd())

	_, cmd = sendCmd(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsHeaderListAndFooter(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "ELEVATE")
	assert.Contains(t, view, "threshold 20 units")
	assert.Contains(t, view, "Primary")
	assert.Contains(t, view, "Activity")
	assert.Contains(t, view, "no touches yet")

	m, _ = tap(t, m, 1, rowOf(t, m, indexOf(t, m, "button-success")))
	view = m.View()
	assert.Contains(t, view, "Success fired")
	assert.Contains(t, view, "Success  ✓ 1")
}

func TestOverlay(t *testing.T) {
	assert.Equal(t, "a\nb", overlay("a\nb", ""))
	assert.Equal(t, " X\nb\nc", overlay("a\nb\nc", "X"))
	assert.Equal(t, " X", overlay("a", "X\nY"), "the banner is clipped to the body")
}

func TestZeroBannerDurationIsSticky(t *testing.T) {
	cfg := config.Default()
	cfg.Banner.Duration = 0
	opts := bannerOptions(cfg, nil)
	assert.Negative(t, int64(opts.Duration))
	assert.Equal(t, cfg.Banner.SwipeDistance, opts.SwipeDistance)
}

func TestPressOnBannerCancelsLostListTouch(t *testing.T) {
	cfg := config.Default()
	cfg.Banner.ReduceMotion = true
	m := send(t, NewModel(cfg, nil), tea.WindowSizeMsg{Width: 100, Height: 200})
	primary := indexOf(t, m, "button-primary")

	// The release of this press never arrives.
	m = send(t, m, press(1, rowOf(t, m, primary)))
	require.True(t, m.controls[primary].button.Pressed())

	m = send(t, m, banner.ShowMsg{Item: banner.Item{Message: "Saved"}})
	require.Positive(t, m.banner.Height())

	m = send(t, m, press(2, headerHeight))
	assert.False(t, m.controls[primary].button.Pressed())
	assert.Equal(t, 1, m.Tallies()[primary].Cancelled)
	active, _ := m.scroll.Tracking()
	assert.False(t, active)

	m, cmd := sendCmd(t, m, release(2, headerHeight))
	require.NotNil(t, cmd, "the tap dismisses the banner")
	assert.False(t, m.banner.Presented())
	assert.Zero(t, m.Tallies()[primary].Fired)
}
