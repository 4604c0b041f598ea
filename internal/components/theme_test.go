package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "#0b5cdf", theme.Palette.Primary.Base.Light)
	assert.Equal(t, "#ffffff", theme.Palette.Surface.Base.Light)
	assert.Equal(t, "#111217", theme.Palette.Surface.Base.Dark)

	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, lipgloss.ThickBorder(), theme.Borders.For(BorderVariantThick))
	assert.Equal(t, lipgloss.Border{}, theme.Borders.For(BorderVariantNone))

	assert.Equal(t, 2, theme.Spacing.Padding[SpacingM])
	assert.Equal(t, 1, theme.Spacing.Margin[SpacingS])

	assert.True(t, theme.Typography.Heading.GetBold(), "heading typography should be bold")
	assert.True(t, theme.Typography.Caption.GetFaint(), "caption typography should be faint")
}

func TestThemeForModePinsAdaptiveColours(t *testing.T) {
	dark := ThemeForMode(ThemeModeDark)
	light := ThemeForMode(ThemeModeLight)
	auto := ThemeForMode(ThemeModeAuto)

	def := DefaultTheme().Palette.Surface.Base
	assert.Equal(t, def.Dark, dark.Palette.Surface.Base.Light)
	assert.Equal(t, def.Dark, dark.Palette.Surface.Base.Dark)
	assert.Equal(t, def.Light, light.Palette.Surface.Base.Dark)
	assert.Equal(t, def, auto.Palette.Surface.Base)
	assert.Equal(t, ThemeModeDark, dark.Mode)
}

func TestParseThemeMode(t *testing.T) {
	cases := map[string]ThemeMode{"": ThemeModeAuto, "auto": ThemeModeAuto, "Light": ThemeModeLight, " dark ": ThemeModeDark}
	for in, want := range cases {
		got, err := ParseThemeMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.NotEmpty(t, got.String())
	}

	_, err := ParseThemeMode("sepia")
	require.Error(t, err)
}

func TestSetGetTheme(t *testing.T) {
	original := GetTheme()
	t.Cleanup(func() { SetTheme(original) })

	custom := DefaultTheme()
	custom.Palette.Primary.Base = lipgloss.AdaptiveColor{Light: "#0000ff", Dark: "#1e3a8a"}
	custom.Spacing = SpacingConfig{}
	SetTheme(custom)

	active := GetTheme()
	assert.Equal(t, "#0000ff", active.Palette.Primary.Base.Light)
	assert.Equal(t, defaultSpacingTable(), active.Spacing.Padding, "zero spacing tables are normalised")
}

func TestPaletteColor(t *testing.T) {
	color, ok := PaletteColor(PaletteBlue, Shade500)
	assert.True(t, ok)
	assert.Equal(t, lipgloss.Color("#0072ff"), color)

	color, ok = PaletteColor(PaletteOrange, Shade1000)
	assert.True(t, ok)
	assert.Equal(t, lipgloss.Color("#240b00"), color)

	_, ok = PaletteColor(PaletteBlue, PaletteShade(99))
	assert.False(t, ok, "out-of-range shades should report missing")
}

func TestSpacingHelpers(t *testing.T) {
	assert.Equal(t, 2, PaddingValue(SpacingM))
	assert.Equal(t, 4, MarginValue(SpacingXL))
	assert.Equal(t, 2, PaddingValue(SpacingSize(42)), "unknown sizes fall back to medium")
}

func TestStyleApplier(t *testing.T) {
	style := Style(
		lipgloss.NewStyle(),
		Background(PalettePrimary),
		PaddingX(SpacingM),
		Border(BorderVariantRounded),
	)

	assert.NotEmpty(t, style.GetBackground(), "expected background to be set")
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingRight())
}

func TestTypographyStyle(t *testing.T) {
	emphasis := TypographyStyle(TypographyEmphasis)
	assert.True(t, emphasis.GetBold())
	assert.True(t, emphasis.GetItalic())
}

func TestPaletteNames(t *testing.T) {
	names := make([]string, 0, len(PaletteFamilies))
	for _, f := range PaletteFamilies {
		names = append(names, f.String())
	}
	assert.Equal(t, []string{"blue", "gray", "green", "orange", "red"}, names)
	assert.Equal(t, "family(9)", PaletteFamily(9).String())

	assert.Equal(t, "50", Shade50.String())
	assert.Equal(t, "950", Shade950.String())
	assert.Equal(t, "1000", Shade1000.String())
	assert.Equal(t, "shade(-1)", PaletteShade(-1).String())
}
