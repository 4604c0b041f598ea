package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Chip is a compact, pill-shaped toggle.
type Chip struct {
	label    string
	tone     ChipTone
	selected bool
	pressed  bool
}

func NewChip(label string, tone ChipTone) *Chip {
	return &Chip{label: label, tone: tone}
}

func (c *Chip) Label() string { return c.label }

func (c *Chip) Selected() bool { return c.selected }

// Toggle flips the selection and returns the new state.
func (c *Chip) Toggle() bool {
	c.selected = !c.selected
	return c.selected
}

func (c *Chip) SetPressed(pressed bool) { c.pressed = pressed }

func (c *Chip) View() string {
	theme := GetTheme()
	colors := ButtonToneColors(theme.Primitives, c.tone.ButtonTone())

	bg, fg := theme.Palette.Surface.Base, lipgloss.TerminalColor(colors.Background)
	style := lipgloss.NewStyle().
		Border(theme.Borders.For(BorderVariantRounded)).
		BorderForeground(colors.Background).
		Padding(0, PaddingValue(SpacingXS))

	label := c.label
	if c.selected {
		label = "✓ " + label
		style = style.Background(colors.Background).Foreground(colors.Text)
	} else {
		style = style.Background(bg).Foreground(fg)
	}
	if c.pressed {
		style = style.Background(colors.BackgroundActive).Foreground(colors.Text)
	}
	return style.Render(label)
}
