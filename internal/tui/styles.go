package tui

import (
	"github.com/charmbracelet/lipgloss"

	ui "github.com/alexisbeaulieu97/elevate/internal/components"
)

// styles are resolved from the active theme on each render, so a theme
// chosen at startup applies.
type styles struct {
	title      lipgloss.Style
	hint       lipgloss.Style
	section    lipgloss.Style
	divider    lipgloss.Style
	fired      lipgloss.Style
	suppressed lipgloss.Style
	cancelled  lipgloss.Style
}

func newStyles(theme ui.Theme) styles {
	plain := lipgloss.NewStyle()
	return styles{
		title:      ui.StyleWith(theme, plain.Bold(true), ui.Foreground(ui.PalettePrimary)),
		hint:       theme.Typography.For(ui.TypographyCaption),
		section:    ui.StyleWith(theme, plain.Bold(true), ui.Foreground(ui.PaletteNeutral)),
		divider:    ui.StyleWith(theme, plain, ui.Foreground(ui.PaletteSubtle)),
		fired:      ui.StyleWith(theme, plain, ui.Foreground(ui.PaletteSuccess)),
		suppressed: ui.StyleWith(theme, plain, ui.Foreground(ui.PaletteWarning)),
		cancelled:  ui.StyleWith(theme, plain, ui.Foreground(ui.PaletteNeutral)),
	}
}
