package main

import (
	"github.com/spf13/cobra"

	"github.com/pennyflow/penny/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, closeStore, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			return tui.Run(st)
		},
	}
}
