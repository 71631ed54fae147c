package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pennyflow/penny/internal/cli"
)

func clearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase all data and restore the default categories",
		Long: `Erase every expense and category and reinstall the built-in category set.
This cannot be undone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if !force {
				ok, err := cli.Confirm(ctx, os.Stdin, os.Stdout,
					"Erase ALL expenses and categories? This cannot be undone.")
				if err != nil {
					return err
				}
				fmt.Println()
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Aborted."))
					return nil
				}
			}

			if err := st.ClearAll(ctx); err != nil {
				return fmt.Errorf("failed to clear data: %w", err)
			}

			fmt.Println(cli.FormatSuccess("all data erased, default categories restored"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
