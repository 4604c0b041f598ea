package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardData represents the content of a card.
type CardData struct {
	// Title is the heading displayed in the card
	Title string
	// Description is the body text, wrapped to the card width
	Description string
	// Icon is an optional glyph displayed before the title
	Icon string
	// Footer is an optional muted line under the body
	Footer string
}

// Card is a bordered content block. It can show pressed feedback when the
// whole card is tappable.
type Card struct {
	data    CardData
	accent  PaletteSlot
	width   int
	pressed bool
}

// NewCard creates a card with a neutral accent.
func NewCard(data CardData) *Card {
	return &Card{data: data, accent: PaletteNeutral}
}

func (c *Card) Data() CardData { return c.data }

// WithAccent sets the palette slot used for the border and icon.
func (c *Card) WithAccent(slot PaletteSlot) *Card {
	if slot != nil {
		c.accent = slot
	}
	return c
}

// WithWidth sets the outer card width in cells.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

func (c *Card) SetPressed(pressed bool) { c.pressed = pressed }

func (c *Card) Pressed() bool { return c.pressed }

// View renders the card.
func (c *Card) View() string {
	theme := GetTheme()
	accent := c.accent(theme.Palette)

	frame := StyleWith(theme, lipgloss.NewStyle(),
		Border(BorderVariantRounded),
		PaddingX(SpacingS),
	).BorderForeground(accent.Base)
	if c.pressed {
		frame = frame.Border(theme.Borders.For(BorderVariantThick)).
			BorderForeground(accent.Contrast).
			Background(theme.Palette.Surface.Muted)
	}
	if c.width > 0 {
		frame = frame.Width(c.width - frame.GetHorizontalBorderSize())
	}

	var content []string
	if c.data.Title != "" {
		content = append(content, c.renderHeader(theme, accent))
	}
	if c.data.Description != "" {
		content = append(content, theme.Typography.Body.Render(c.data.Description))
	}
	if c.data.Footer != "" {
		content = append(content, "", theme.Typography.Caption.Render(c.data.Footer))
	}

	return frame.Render(strings.Join(content, "\n"))
}

func (c *Card) renderHeader(theme Theme, accent ColourSet) string {
	var header strings.Builder
	if c.data.Icon != "" {
		header.WriteString(lipgloss.NewStyle().Foreground(accent.Base).Render(c.data.Icon + " "))
	}
	header.WriteString(theme.Typography.Heading.Render(c.data.Title))
	return header.String()
}
