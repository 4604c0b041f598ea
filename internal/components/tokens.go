package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ButtonTone is the visual variant of a button.
type ButtonTone int

const (
	ButtonTonePrimary ButtonTone = iota
	ButtonToneSecondary
	ButtonToneSuccess
	ButtonToneWarning
	ButtonToneDanger
	ButtonToneEmphasized
	ButtonToneSubtle
	ButtonToneNeutral
)

// ButtonTones lists every tone in declaration order.
var ButtonTones = []ButtonTone{
	ButtonTonePrimary,
	ButtonToneSecondary,
	ButtonToneSuccess,
	ButtonToneWarning,
	ButtonToneDanger,
	ButtonToneEmphasized,
	ButtonToneSubtle,
	ButtonToneNeutral,
}

func (t ButtonTone) String() string {
	switch t {
	case ButtonTonePrimary:
		return "primary"
	case ButtonToneSecondary:
		return "secondary"
	case ButtonToneSuccess:
		return "success"
	case ButtonToneWarning:
		return "warning"
	case ButtonToneDanger:
		return "danger"
	case ButtonToneEmphasized:
		return "emphasized"
	case ButtonToneSubtle:
		return "subtle"
	case ButtonToneNeutral:
		return "neutral"
	default:
		return fmt.Sprintf("tone(%d)", int(t))
	}
}

// ButtonSize is the size variant of a button.
type ButtonSize int

const (
	ButtonSizeSmall ButtonSize = iota
	ButtonSizeMedium
	ButtonSizeLarge
)

// ButtonShape is the corner treatment of a button.
type ButtonShape int

const (
	ButtonShapeDefault ButtonShape = iota
	ButtonShapePill
)

// Border maps the shape onto a terminal border.
func (s ButtonShape) Border() BorderVariant {
	switch s {
	case ButtonShapePill:
		return BorderVariantRounded
	default:
		return BorderVariantNormal
	}
}

// ToneColors is the per-state colour table of a tone.
type ToneColors struct {
	Background         lipgloss.Color
	BackgroundHover    lipgloss.Color
	BackgroundActive   lipgloss.Color
	BackgroundDisabled lipgloss.Color
	Text               lipgloss.Color
	TextDisabled       lipgloss.Color
	// Border is empty when the tone has no visible border.
	Border lipgloss.Color
}

// secondaryPlaceholder is what the token export ships for every secondary slot.
const secondaryPlaceholder = lipgloss.Color("#808080")

// ButtonToneColors returns the colour table of tone from primitives p.
func ButtonToneColors(p Primitives, tone ButtonTone) ToneColors {
	blue, gray, green, orange, red := p.Blue.Color, p.Gray.Color, p.Green.Color, p.Orange.Color, p.Red.Color

	switch tone {
	case ButtonTonePrimary:
		return ToneColors{
			Background:         blue(Shade600),
			BackgroundHover:    blue(Shade700),
			BackgroundActive:   blue(Shade900),
			BackgroundDisabled: blue(Shade200),
			Text:               ColorWhite,
			TextDisabled:       blue(Shade50),
		}
	case ButtonToneSecondary:
		return ToneColors{
			Background:         secondaryPlaceholder,
			BackgroundHover:    secondaryPlaceholder,
			BackgroundActive:   secondaryPlaceholder,
			BackgroundDisabled: secondaryPlaceholder,
			Text:               secondaryPlaceholder,
			TextDisabled:       secondaryPlaceholder,
			Border:             secondaryPlaceholder,
		}
	case ButtonToneSuccess:
		return ToneColors{
			Background:         green(Shade600),
			BackgroundHover:    green(Shade700),
			BackgroundActive:   green(Shade900),
			BackgroundDisabled: green(Shade100),
			Text:               ColorWhite,
			TextDisabled:       green(Shade50),
		}
	case ButtonToneWarning:
		return ToneColors{
			Background:         orange(Shade300),
			BackgroundHover:    orange(Shade400),
			BackgroundActive:   orange(Shade600),
			BackgroundDisabled: orange(Shade50),
			Text:               orange(Shade900),
			TextDisabled:       orange(Shade200),
		}
	case ButtonToneDanger:
		return ToneColors{
			Background:         red(Shade600),
			BackgroundHover:    red(Shade700),
			BackgroundActive:   red(Shade900),
			BackgroundDisabled: red(Shade200),
			Text:               ColorWhite,
			TextDisabled:       red(Shade50),
		}
	case ButtonToneEmphasized:
		return ToneColors{
			Background:         gray(Shade100),
			BackgroundHover:    gray(Shade200),
			BackgroundActive:   gray(Shade400),
			BackgroundDisabled: gray(Shade100),
			Text:               gray(Shade900),
			TextDisabled:       gray(Shade300),
			Border:             gray(Shade500),
		}
	case ButtonToneSubtle:
		return ToneColors{
			Background:         blue(Shade50),
			BackgroundHover:    blue(Shade100),
			BackgroundActive:   blue(Shade300),
			BackgroundDisabled: blue(Shade100),
			Text:               blue(Shade600),
			TextDisabled:       blue(Shade50),
		}
	case ButtonToneNeutral:
		return ToneColors{
			Background:         ColorWhite,
			BackgroundHover:    gray(Shade50),
			BackgroundActive:   gray(Shade200),
			BackgroundDisabled: gray(Shade50),
			Text:               gray(Shade900),
			TextDisabled:       gray(Shade300),
			Border:             gray(Shade300),
		}
	default:
		return ButtonToneColors(p, ButtonTonePrimary)
	}
}

// ChipTone is the visual variant of a chip.
type ChipTone int

const (
	ChipTonePrimary ChipTone = iota
	ChipToneSecondary
	ChipToneSuccess
	ChipToneWarning
	ChipToneDanger
	ChipToneNeutral
	ChipToneEmphasized
)

// ButtonTone maps a chip tone onto the shared colour tables; chips have no
// secondary table of their own and borrow neutral.
func (t ChipTone) ButtonTone() ButtonTone {
	switch t {
	case ChipTonePrimary:
		return ButtonTonePrimary
	case ChipToneSecondary, ChipToneNeutral:
		return ButtonToneNeutral
	case ChipToneSuccess:
		return ButtonToneSuccess
	case ChipToneWarning:
		return ButtonToneWarning
	case ChipToneDanger:
		return ButtonToneDanger
	case ChipToneEmphasized:
		return ButtonToneEmphasized
	default:
		return ButtonToneNeutral
	}
}

// NotificationTone is the colour scheme of a notification.
type NotificationTone int

const (
	NotificationTonePrimary NotificationTone = iota
	NotificationToneSuccess
	NotificationToneWarning
	NotificationToneDanger
	NotificationToneNeutral
)

func (t NotificationTone) String() string {
	switch t {
	case NotificationTonePrimary:
		return "primary"
	case NotificationToneSuccess:
		return "success"
	case NotificationToneWarning:
		return "warning"
	case NotificationToneDanger:
		return "danger"
	case NotificationToneNeutral:
		return "neutral"
	default:
		return fmt.Sprintf("tone(%d)", int(t))
	}
}

// Icon is the default glyph shown for the tone.
func (t NotificationTone) Icon() string {
	switch t {
	case NotificationToneSuccess:
		return "✔"
	case NotificationToneWarning:
		return "⚠"
	case NotificationToneDanger:
		return "⛔"
	case NotificationToneNeutral:
		return "⚙"
	default:
		return "ℹ"
	}
}

// Slot returns the palette slot used for the tone's accent.
func (t NotificationTone) Slot() PaletteSlot {
	switch t {
	case NotificationToneSuccess:
		return PaletteSuccess
	case NotificationToneWarning:
		return PaletteWarning
	case NotificationToneDanger:
		return PaletteDanger
	case NotificationToneNeutral:
		return PaletteNeutral
	default:
		return PalettePrimary
	}
}

// NotificationToneFor picks the notification tone that best matches a button tone.
func NotificationToneFor(tone ButtonTone) NotificationTone {
	switch tone {
	case ButtonToneSuccess:
		return NotificationToneSuccess
	case ButtonToneWarning:
		return NotificationToneWarning
	case ButtonToneDanger:
		return NotificationToneDanger
	case ButtonToneSecondary, ButtonToneEmphasized, ButtonToneNeutral:
		return NotificationToneNeutral
	default:
		return NotificationTonePrimary
	}
}
