package main

import (
	"github.com/spf13/cobra"

	"type-closure/internal/console"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := a.runner()
			if err != nil {
				return err
			}

			return console.NewMenu(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg, runner).Run()
		},
	}
}
