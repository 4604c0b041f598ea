package tui

import (
	"fmt"

	"github.com/alexisbeaulieu97/elevate/internal/banner"
	ui "github.com/alexisbeaulieu97/elevate/internal/components"
	"github.com/alexisbeaulieu97/elevate/internal/touch"
)

type controlKind int

const (
	kindButton controlKind = iota
	kindChip
	kindCard
)

// control is one tappable element of the demo.
type control struct {
	id    string
	label string
	kind  controlKind
	tone  ui.ButtonTone

	button *ui.Button
	chip   *ui.Chip
	card   *ui.Card

	// adapter is nil for controls that take no input.
	adapter *touch.Adapter
	reg     touch.Registration
}

func (c *control) setPressed(pressed bool) {
	switch c.kind {
	case kindButton:
		c.button.SetPressed(pressed)
	case kindChip:
		c.chip.SetPressed(pressed)
	case kindCard:
		c.card.SetPressed(pressed)
	}
}

func (c *control) render(width int) string {
	switch c.kind {
	case kindChip:
		return c.chip.View()
	case kindCard:
		return c.card.WithWidth(min(width, 48)).View()
	default:
		return c.button.View()
	}
}

// tapped performs the control's action and describes it as a banner.
func (c *control) tapped() banner.Item {
	switch c.kind {
	case kindChip:
		state := "off"
		if c.chip.Toggle() {
			state = "on"
		}
		return banner.Item{
			Message: fmt.Sprintf("%s %s", c.label, state),
			Tone:    ui.NotificationToneNeutral,
		}
	case kindCard:
		return banner.Item{
			Message: fmt.Sprintf("%s opened", c.label),
			Tone:    ui.NotificationToneFor(c.tone),
		}
	default:
		return banner.Item{
			Message: fmt.Sprintf("%s button tapped", c.label),
			Tone:    ui.NotificationToneFor(c.tone),
		}
	}
}

func buttonControl(label string, tone ui.ButtonTone, opts ui.ButtonOptions) *control {
	opts.Tone = tone
	return &control{
		id:     "button-" + tone.String(),
		label:  label,
		kind:   kindButton,
		tone:   tone,
		button: ui.NewButton(label, opts),
	}
}

func chipControl(label string, tone ui.ChipTone) *control {
	return &control{
		id:    "chip-" + label,
		label: label,
		kind:  kindChip,
		tone:  tone.ButtonTone(),
		chip:  ui.NewChip(label, tone),
	}
}

func cardControl(data ui.CardData, tone ui.ButtonTone, accent ui.PaletteSlot) *control {
	return &control{
		id:    "card-" + data.Title,
		label: data.Title,
		kind:  kindCard,
		tone:  tone,
		card:  ui.NewCard(data).WithAccent(accent),
	}
}

// catalog lists the demo's controls in display order.
func catalog() []*control {
	controls := []*control{
		buttonControl("Primary", ui.ButtonTonePrimary, ui.ButtonOptions{}),
		buttonControl("Secondary", ui.ButtonToneSecondary, ui.ButtonOptions{}),
		buttonControl("Success", ui.ButtonToneSuccess, ui.ButtonOptions{Shape: ui.ButtonShapePill}),
		buttonControl("Warning", ui.ButtonToneWarning, ui.ButtonOptions{Size: ui.ButtonSizeLarge}),
		buttonControl("Danger", ui.ButtonToneDanger, ui.ButtonOptions{}),
		buttonControl("Emphasized", ui.ButtonToneEmphasized, ui.ButtonOptions{Shape: ui.ButtonShapePill}),
		buttonControl("Subtle", ui.ButtonToneSubtle, ui.ButtonOptions{Size: ui.ButtonSizeSmall}),
		buttonControl("Neutral", ui.ButtonToneNeutral, ui.ButtonOptions{}),
		chipControl("Filters", ui.ChipTonePrimary),
		chipControl("Starred", ui.ChipToneEmphasized),
		cardControl(ui.CardData{
			Title:       "Deploy",
			Description: "Ship the current build to staging.",
			Icon:        "◆",
			Footer:      "tap to open",
		}, ui.ButtonToneSuccess, ui.PaletteSuccess),
		cardControl(ui.CardData{
			Title:       "Rollback",
			Description: "Restore the previous release.",
			Icon:        "↺",
			Footer:      "tap to open",
		}, ui.ButtonToneWarning, ui.PaletteWarning),
		cardControl(ui.CardData{
			Title:       "Signature",
			Description: "Holds on to its touch; dragging here never scrolls.",
			Icon:        "✎",
			Footer:      "exclusive",
		}, ui.ButtonTonePrimary, ui.PalettePrimary),
	}

	disabled := buttonControl("Disabled", ui.ButtonToneDanger, ui.ButtonOptions{Disabled: true})
	disabled.id = "button-disabled"
	controls = append(controls, disabled)
	return controls
}

// disabled controls render but are never registered for touches.
func (c *control) disabled() bool {
	return c.kind == kindButton && c.button.Options().Disabled
}

func (c *control) exclusive() bool {
	return c.kind == kindCard && c.label == "Signature"
}
