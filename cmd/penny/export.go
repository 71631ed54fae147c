package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pennyflow/penny/internal/cli"
	"github.com/pennyflow/penny/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the expense history as CSV or XLSX",
		Long: `Write the full expense history to a portable format.

Examples:
  penny export > expenses.csv
  penny export --format xlsx --output expenses.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "csv" && format != "xlsx" {
				return fmt.Errorf("invalid format %q (want csv or xlsx)", format)
			}
			if format == "xlsx" && output == "" {
				return fmt.Errorf("xlsx export requires --output")
			}

			st, closeStore, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			expenses := st.Expenses()
			categories := st.Categories()
			if format == "xlsx" {
				err = export.WriteXLSX(w, expenses, categories)
			} else {
				err = export.WriteCSV(w, expenses, categories)
			}
			if err != nil {
				return err
			}

			if output != "" {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("exported %d expense(s) to %s",
					len(expenses), output)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "F", "csv", "output format: csv or xlsx")
	return cmd
}
