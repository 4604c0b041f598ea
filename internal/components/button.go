package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Tone     ButtonTone
	Size     ButtonSize
	Shape    ButtonShape
	Disabled bool
	Selected bool
	// Width stretches the button to a fixed cell width when > 0.
	Width int
}

// Button is a tone-coloured, pressable label. Pressed is driven from
// outside, typically by a touch adapter's pressed feedback.
type Button struct {
	label   string
	options ButtonOptions
	pressed bool
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// SimpleButton creates a medium primary button.
func SimpleButton(label string) *Button {
	return NewButton(label, ButtonOptions{Tone: ButtonTonePrimary, Size: ButtonSizeMedium})
}

func (b *Button) Label() string { return b.label }

func (b *Button) Options() ButtonOptions { return b.options }

func (b *Button) Pressed() bool { return b.pressed }

// WithTone sets the button tone
func (b *Button) WithTone(tone ButtonTone) *Button {
	b.options.Tone = tone
	return b
}

// WithSize sets the button size
func (b *Button) WithSize(size ButtonSize) *Button {
	b.options.Size = size
	return b
}

// WithShape sets the button shape
func (b *Button) WithShape(shape ButtonShape) *Button {
	b.options.Shape = shape
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithWidth fixes the rendered width in cells.
func (b *Button) WithWidth(width int) *Button {
	b.options.Width = width
	return b
}

// SetPressed updates the pressed state. Disabled buttons never show it.
func (b *Button) SetPressed(pressed bool) {
	b.pressed = pressed && !b.options.Disabled
}

// Height reports how many rows View produces.
func (b *Button) Height() int {
	return lipgloss.Height(b.View())
}

// View renders the button
func (b *Button) View() string {
	return b.buildStyle(GetTheme()).Render(b.label)
}

func (b *Button) buildStyle(theme Theme) lipgloss.Style {
	colors := ButtonToneColors(theme.Primitives, b.options.Tone)

	bg, fg := colors.Background, colors.Text
	switch {
	case b.options.Disabled:
		bg, fg = colors.BackgroundDisabled, colors.TextDisabled
	case b.pressed:
		bg = colors.BackgroundActive
	}

	style := StyleWith(theme, lipgloss.NewStyle(),
		Typography(TypographyLabel),
		buttonSizePadding(b.options.Size),
	).Background(bg).Foreground(fg).Align(lipgloss.Center)

	if colors.Border != "" || b.options.Shape == ButtonShapePill {
		border := colors.Border
		if border == "" {
			border = bg
		}
		style = style.Border(theme.Borders.For(b.options.Shape.Border())).BorderForeground(border)
	}
	if b.options.Selected {
		style = style.Underline(true)
	}
	if b.options.Width > 0 {
		style = style.Width(b.options.Width - style.GetHorizontalBorderSize())
	}
	return style
}

func buttonSizePadding(size ButtonSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		switch size {
		case ButtonSizeSmall:
			return StyleWith(theme, base, PaddingX(SpacingXS))
		case ButtonSizeLarge:
			return StyleWith(theme, base, PaddingX(SpacingL), PaddingY(SpacingXS))
		default:
			return StyleWith(theme, base, PaddingX(SpacingM))
		}
	}
}
