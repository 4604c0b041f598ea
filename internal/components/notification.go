package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// NotificationOptions defines the configuration options for a notification
type NotificationOptions struct {
	Tone NotificationTone
	// Icon overrides the tone's default glyph.
	Icon string
	// Progress is the remaining share of the auto-dismiss timer, 0..1.
	// Negative hides the timer bar.
	Progress float64
}

// Notification renders the body of a notification banner.
type Notification struct {
	message string
	options NotificationOptions
}

// NewNotification creates a notification with the given message and options
func NewNotification(message string, opts NotificationOptions) *Notification {
	return &Notification{message: message, options: opts}
}

// WithTone sets the notification tone
func (n *Notification) WithTone(tone NotificationTone) *Notification {
	n.options.Tone = tone
	return n
}

// WithProgress sets the timer bar fill.
func (n *Notification) WithProgress(progress float64) *Notification {
	n.options.Progress = progress
	return n
}

// Icon returns the glyph the notification will show.
func (n *Notification) Icon() string {
	if n.options.Icon != "" {
		return n.options.Icon
	}
	return n.options.Tone.Icon()
}

// View renders the notification at the given outer width.
func (n *Notification) View(width int) string {
	theme := GetTheme()
	accent := n.options.Tone.Slot()(theme.Palette)

	frame := lipgloss.NewStyle().
		Border(theme.Borders.For(BorderVariantNormal), false, false, false, true).
		BorderForeground(accent.Base).
		Background(theme.Palette.Surface.Muted).
		Padding(0, PaddingValue(SpacingS))

	inner := width - frame.GetHorizontalFrameSize()
	if inner < 8 {
		inner = 8
	}

	icon := lipgloss.NewStyle().Foreground(accent.Base).Bold(true).Render(n.Icon())
	closer := theme.Typography.Caption.Render("×")
	msgWidth := inner - lipgloss.Width(icon) - lipgloss.Width(closer) - 2
	if msgWidth < 1 {
		msgWidth = 1
	}
	message := theme.Typography.Body.Width(msgWidth).Render(n.message)

	row := lipgloss.JoinHorizontal(lipgloss.Top, icon, " ", message, " ", closer)
	lines := []string{row}
	if n.options.Progress >= 0 {
		lines = append(lines, timerBar(theme.Mode, inner, n.options.Progress, accent))
	}

	return frame.Render(strings.Join(lines, "\n"))
}

// timerBar draws the remaining auto-dismiss time as a thin solid bar.
func timerBar(mode ThemeMode, width int, remaining float64, accent ColourSet) string {
	bar := progress.New(progress.WithoutPercentage())
	bar.Width = width
	bar.Full, bar.Empty = '━', '─'
	bar.FullColor = pick(mode, accent.Base)
	bar.EmptyColor = pick(mode, accent.Muted)
	return bar.ViewAs(remaining)
}

// pick resolves an adaptive colour to a plain one. Auto mode follows the
// terminal background.
func pick(mode ThemeMode, c lipgloss.AdaptiveColor) string {
	switch mode {
	case ThemeModeLight:
		return c.Light
	case ThemeModeDark:
		return c.Dark
	}
	if lipgloss.HasDarkBackground() {
		return c.Dark
	}
	return c.Light
}
