package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// PaletteFamily names a primitive colour ramp.
type PaletteFamily int

const (
	PaletteBlue PaletteFamily = iota
	PaletteGray
	PaletteGreen
	PaletteOrange
	PaletteRed
)

// PaletteFamilies lists every ramp in declaration order.
var PaletteFamilies = []PaletteFamily{PaletteBlue, PaletteGray, PaletteGreen, PaletteOrange, PaletteRed}

func (f PaletteFamily) String() string {
	switch f {
	case PaletteBlue:
		return "blue"
	case PaletteGray:
		return "gray"
	case PaletteGreen:
		return "green"
	case PaletteOrange:
		return "orange"
	case PaletteRed:
		return "red"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// PaletteShade indexes a step of a primitive ramp, lightest first.
type PaletteShade int

const (
	Shade50 PaletteShade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
	Shade950
	Shade1000
)

const paletteShadeCount = int(Shade1000) + 1

var shadeNames = [paletteShadeCount]string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950", "1000"}

func (s PaletteShade) String() string {
	if s < 0 || int(s) >= paletteShadeCount {
		return fmt.Sprintf("shade(%d)", int(s))
	}
	return shadeNames[s]
}

// Fixed primitives outside the ramps.
const (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#ffffff")
)

type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// Primitives holds the ELEVATE primitive ramps.
type Primitives struct {
	Blue   PaletteShades
	Gray   PaletteShades
	Green  PaletteShades
	Orange PaletteShades
	Red    PaletteShades
}

func (p Primitives) Shades(family PaletteFamily) PaletteShades {
	switch family {
	case PaletteBlue:
		return p.Blue
	case PaletteGray:
		return p.Gray
	case PaletteGreen:
		return p.Green
	case PaletteOrange:
		return p.Orange
	case PaletteRed:
		return p.Red
	default:
		return p.Gray
	}
}

// DefaultPrimitives returns the primitive colour ramps.
func DefaultPrimitives() Primitives {
	return Primitives{
		Blue: NewPaletteShades(
			"#eaf4ff", "#b9dbff", "#90c6ff", "#5facff", "#2a90ff", "#0072ff",
			"#0b5cdf", "#1b50a6", "#234275", "#23334b", "#1d2129", "#121213",
		),
		Gray: NewPaletteShades(
			"#f3f4f7", "#d5d9e1", "#bec3cd", "#a3aab4", "#8891a0", "#707a8f",
			"#5d6679", "#4d5366", "#3d4253", "#2f3240", "#1f212b", "#111217",
		),
		Green: NewPaletteShades(
			"#e6f8ec", "#aae6bc", "#75d692", "#39c062", "#31a554", "#128c46",
			"#05763d", "#056036", "#0b4d2f", "#103a26", "#13251d", "#101311",
		),
		Orange: NewPaletteShades(
			"#fff3d3", "#ffd379", "#ffb336", "#f88f00", "#d87800", "#bb6300",
			"#a44d00", "#8e3a00", "#772a00", "#5f1c00", "#401300", "#240b00",
		),
		Red: NewPaletteShades(
			"#fff0f0", "#ffcccc", "#ffacac", "#ff8484", "#fe5353", "#f50101",
			"#ce0101", "#ab0101", "#8b0101", "#6c0101", "#430e0e", "#161111",
		),
	}
}

// SpacingSize enumerates the spacing scale. Values are terminal cells.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingXXS
	SpacingXS
	SpacingS
	SpacingM
	SpacingL
	SpacingXL
)

const spacingSizeCount = int(SpacingXL) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// defaultSpacingTable maps the 2/4/8/16/24/32pt scale onto cells.
func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingNone: 0,
		SpacingXXS:  0,
		SpacingXS:   1,
		SpacingS:    1,
		SpacingM:    2,
		SpacingL:    3,
		SpacingXL:   4,
	}
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingM)
	}
	return table[index]
}

// BorderVariant selects a border from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

func (b BorderSet) For(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return b.Normal
	case BorderVariantRounded:
		return b.Rounded
	case BorderVariantThick:
		return b.Thick
	default:
		return b.None
	}
}

// TypographyVariant represents a typography token.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyHeading
	TypographyLabel
	TypographyCaption
	TypographyCode
	TypographyEmphasis
)

// TypographyScale contains the semantic typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Heading  lipgloss.Style
	Label    lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

func (ts TypographyScale) For(variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyHeading:
		return ts.Heading
	case TypographyLabel:
		return ts.Label
	case TypographyCaption:
		return ts.Caption
	case TypographyCode:
		return ts.Code
	case TypographyEmphasis:
		return ts.Emphasis
	default:
		return ts.Body
	}
}

// ColourSet represents a semantic colour set with base, on-base, muted, and contrast colours.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic alias slots used by components.
type Palette struct {
	Primary    ColourSet
	Success    ColourSet
	Warning    ColourSet
	Danger     ColourSet
	Neutral    ColourSet
	Emphasized ColourSet
	Subtle     ColourSet
	Surface    ColourSet
}

// ThemeMode selects how adaptive colours resolve.
type ThemeMode int

const (
	ThemeModeAuto ThemeMode = iota
	ThemeModeLight
	ThemeModeDark
)

func (m ThemeMode) String() string {
	switch m {
	case ThemeModeLight:
		return "light"
	case ThemeModeDark:
		return "dark"
	default:
		return "auto"
	}
}

// ParseThemeMode accepts "auto", "light" or "dark".
func ParseThemeMode(s string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ThemeModeAuto, nil
	case "light":
		return ThemeModeLight, nil
	case "dark":
		return ThemeModeDark, nil
	default:
		return ThemeModeAuto, fmt.Errorf("unknown theme mode %q", s)
	}
}

// Theme bundles every token table components read from.
type Theme struct {
	Mode       ThemeMode
	Primitives Primitives
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: normalizeTheme(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = normalizeTheme(theme)
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func normalizeTheme(theme Theme) Theme {
	if spacingTableIsZero(theme.Spacing.Padding) {
		theme.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(theme.Spacing.Margin) {
		theme.Spacing.Margin = defaultSpacingTable()
	}
	return theme
}

// DefaultTheme returns the adaptive ELEVATE theme.
func DefaultTheme() Theme {
	p := DefaultPrimitives()
	ac := func(light, dark lipgloss.Color) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: string(light), Dark: string(dark)}
	}
	blue, gray, green, orange, red := p.Blue.Color, p.Gray.Color, p.Green.Color, p.Orange.Color, p.Red.Color

	palette := Palette{
		Primary: ColourSet{
			Base:     ac(blue(Shade600), blue(Shade600)),
			OnBase:   ac(ColorWhite, ColorWhite),
			Muted:    ac(blue(Shade200), blue(Shade800)),
			Contrast: ac(blue(Shade900), blue(Shade100)),
		},
		Success: ColourSet{
			Base:     ac(green(Shade600), green(Shade500)),
			OnBase:   ac(ColorWhite, ColorWhite),
			Muted:    ac(green(Shade100), green(Shade900)),
			Contrast: ac(green(Shade900), green(Shade100)),
		},
		Warning: ColourSet{
			Base:     ac(orange(Shade300), orange(Shade300)),
			OnBase:   ac(orange(Shade900), orange(Shade900)),
			Muted:    ac(orange(Shade50), orange(Shade900)),
			Contrast: ac(orange(Shade900), orange(Shade100)),
		},
		Danger: ColourSet{
			Base:     ac(red(Shade600), red(Shade500)),
			OnBase:   ac(ColorWhite, ColorWhite),
			Muted:    ac(red(Shade100), red(Shade900)),
			Contrast: ac(red(Shade900), red(Shade100)),
		},
		Neutral: ColourSet{
			Base:     ac(gray(Shade500), gray(Shade400)),
			OnBase:   ac(ColorWhite, gray(Shade1000)),
			Muted:    ac(gray(Shade100), gray(Shade800)),
			Contrast: ac(gray(Shade900), gray(Shade100)),
		},
		Emphasized: ColourSet{
			Base:     ac(gray(Shade100), gray(Shade800)),
			OnBase:   ac(gray(Shade900), gray(Shade50)),
			Muted:    ac(gray(Shade200), gray(Shade700)),
			Contrast: ac(gray(Shade500), gray(Shade400)),
		},
		Subtle: ColourSet{
			Base:     ac(blue(Shade50), blue(Shade950)),
			OnBase:   ac(blue(Shade600), blue(Shade300)),
			Muted:    ac(blue(Shade100), blue(Shade900)),
			Contrast: ac(blue(Shade300), blue(Shade500)),
		},
		Surface: ColourSet{
			Base:     ac(ColorWhite, gray(Shade1000)),
			OnBase:   ac(gray(Shade900), gray(Shade50)),
			Muted:    ac(gray(Shade50), gray(Shade950)),
			Contrast: ac(blue(Shade600), blue(Shade400)),
		},
	}

	theme := Theme{
		Mode:       ThemeModeAuto,
		Primitives: p,
		Palette:    palette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Spacing: SpacingConfig{
			Padding: defaultSpacingTable(),
			Margin:  defaultSpacingTable(),
		},
		Typography: defaultTypography(palette),
	}
	return normalizeTheme(theme)
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Heading:  body.Bold(true).Foreground(p.Primary.Contrast),
		Label:    body.Bold(true),
		Caption:  body.Faint(true),
		Code:     body.Foreground(p.Subtle.OnBase).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: body.Bold(true).Italic(true),
	}
}

// ThemeForMode pins every adaptive colour of the default theme to one side.
// Auto leaves the terminal background detection to lipgloss.
func ThemeForMode(mode ThemeMode) Theme {
	theme := DefaultTheme()
	theme.Mode = mode
	if mode == ThemeModeAuto {
		return theme
	}

	pin := func(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
		if mode == ThemeModeDark {
			return lipgloss.AdaptiveColor{Light: c.Dark, Dark: c.Dark}
		}
		return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Light}
	}
	pinSet := func(cs ColourSet) ColourSet {
		return ColourSet{Base: pin(cs.Base), OnBase: pin(cs.OnBase), Muted: pin(cs.Muted), Contrast: pin(cs.Contrast)}
	}

	p := &theme.Palette
	for _, cs := range []*ColourSet{&p.Primary, &p.Success, &p.Warning, &p.Danger, &p.Neutral, &p.Emphasized, &p.Subtle, &p.Surface} {
		*cs = pinSet(*cs)
	}
	theme.Typography = defaultTypography(theme.Palette)
	return theme
}

var defaultThemeManager = NewThemeManager(DefaultTheme())

// SetTheme sets the global theme
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

func PaletteColor(family PaletteFamily, shade PaletteShade) (lipgloss.Color, bool) {
	color := GetTheme().Primitives.Shades(family).Color(shade)
	if color == "" {
		return "", false
	}
	return color, true
}

func PaddingValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Padding, size)
}

func MarginValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Margin, size)
}

// TypographyStyle returns the specified typography style from the current theme.
func TypographyStyle(variant TypographyVariant) lipgloss.Style {
	return GetTheme().Typography.For(variant)
}

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers against the global theme.
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	return StyleWith(GetTheme(), base, appliers...)
}

// StyleWith applies modifiers against an explicit theme.
func StyleWith(theme Theme, base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary    PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSuccess    PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning    PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger     PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral    PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteEmphasized PaletteSlot = func(p Palette) ColourSet { return p.Emphasized }
	PaletteSubtle     PaletteSlot = func(p Palette) ColourSet { return p.Subtle }
	PaletteSurface    PaletteSlot = func(p Palette) ColourSet { return p.Surface }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.Borders.For(variant))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func MarginBottom(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.MarginBottom(spacingLookup(theme.Spacing.Margin, size))
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.Typography.For(variant))
	}
}
