package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/elevate/internal/config"
	"github.com/alexisbeaulieu97/elevate/pkg/diff"
)

type configOptions struct {
	diff  bool
	check bool
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	opts := &configOptions{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: "Print the configuration after defaults, the config file and flags are applied.\n" +
			"Use --diff to see only what differs from the defaults.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newAppContext(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			if opts.check {
				fmt.Fprintln(out, "✓ configuration is valid")
				return nil
			}

			effective, err := config.Marshal(app.Config)
			if err != nil {
				return err
			}
			if !opts.diff {
				_, err = out.Write(effective)
				return err
			}

			defaults, err := config.Marshal(config.Default())
			if err != nil {
				return err
			}
			d := diff.Unified(defaults, effective, "defaults", "effective")
			if d == "" {
				fmt.Fprintln(out, "configuration matches the defaults")
				return nil
			}
			_, err = fmt.Fprint(out, d)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show differences from the defaults")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Only validate the configuration")

	return cmd
}
