package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/elevate/internal/tui"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Open the interactive tap and scroll demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, flags)
		},
	}
}

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	// The alternate screen owns the terminal, so logs only go to a file.
	app, err := newAppContext(flags, nil)
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.Logger.Component("cli")
	log.Info("starting demo")

	model := tui.NewModel(app.Config, app.Logger)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}
