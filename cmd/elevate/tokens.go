package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/elevate/internal/components"
)

type tokensOptions struct {
	plain bool
}

func newTokensCmd(flags *rootFlags) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the design tokens behind the controls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newAppContext(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			log := app.Logger.Component("cli")
			doc := tokensMarkdown(components.GetTheme())

			width, isTTY := terminalWidth(cmd.OutOrStdout())
			log.WithFields(map[string]any{"tty": isTTY, "width": width}).Debug("rendering tokens")
			if opts.plain || !isTTY {
				_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
				return err
			}

			out, err := renderMarkdown(doc, app.Config.Theme.Mode, width)
			if err != nil {
				log.Error(err, "markdown rendering failed, printing plain text")
				out = doc
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print raw markdown even on a terminal")

	return cmd
}

func renderMarkdown(doc, mode string, width int) (string, error) {
	style := glamour.WithAutoStyle()
	switch mode {
	case "dark", "light":
		style = glamour.WithStandardStyle(mode)
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	return r.Render(doc)
}

// tokensMarkdown lays the theme out as markdown tables.
func tokensMarkdown(theme components.Theme) string {
	var b strings.Builder

	b.WriteString("# Elevate tokens\n\n")
	fmt.Fprintf(&b, "Theme mode: `%s`\n\n", theme.Mode)

	b.WriteString("## Primitives\n\n| shade |")
	for _, f := range components.PaletteFamilies {
		fmt.Fprintf(&b, " %s |", f)
	}
	b.WriteString("\n|---|")
	b.WriteString(strings.Repeat("---|", len(components.PaletteFamilies)))
	b.WriteString("\n")
	for s := components.Shade50; s <= components.Shade1000; s++ {
		fmt.Fprintf(&b, "| %s |", s)
		for _, f := range components.PaletteFamilies {
			fmt.Fprintf(&b, " `%s` |", theme.Primitives.Shades(f).Color(s))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n## Button tones\n\n")
	b.WriteString("| tone | background | pressed | disabled | text | border |\n|---|---|---|---|---|---|\n")
	for _, tone := range components.ButtonTones {
		c := components.ButtonToneColors(theme.Primitives, tone)
		border := string(c.Border)
		if border == "" {
			border = "none"
		}
		fmt.Fprintf(&b, "| %s | `%s` | `%s` | `%s` | `%s` | %s |\n",
			tone, c.Background, c.BackgroundActive, c.BackgroundDisabled, c.Text, border)
	}

	b.WriteString("\n## Spacing\n\n| size | padding | margin |\n|---|---|---|\n")
	sizes := []struct {
		name string
		size components.SpacingSize
	}{
		{"none", components.SpacingNone},
		{"xxs", components.SpacingXXS},
		{"xs", components.SpacingXS},
		{"s", components.SpacingS},
		{"m", components.SpacingM},
		{"l", components.SpacingL},
		{"xl", components.SpacingXL},
	}
	for _, s := range sizes {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", s.name, components.PaddingValue(s.size), components.MarginValue(s.size))
	}

	b.WriteString("\n## Notifications\n\n| tone | icon |\n|---|---|\n")
	tones := []components.NotificationTone{
		components.NotificationTonePrimary,
		components.NotificationToneSuccess,
		components.NotificationToneWarning,
		components.NotificationToneDanger,
		components.NotificationToneNeutral,
	}
	for _, t := range tones {
		fmt.Fprintf(&b, "| %s | %s |\n", t, t.Icon())
	}

	return b.String()
}
