package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pennyflow/penny/internal/cli"
	"github.com/pennyflow/penny/internal/model"
	"github.com/pennyflow/penny/internal/report"
)

func listCmd() *cobra.Command {
	var (
		categoryArg string
		sortArg     string
		searchArg   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses grouped by day",
		Long: `Show the expense history, newest day first, optionally filtered.

Examples:
  penny list
  penny list --category food --sort amount
  penny list --search coffee`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sortBy := model.SortBy(sortArg)
			if !sortBy.Valid() {
				return fmt.Errorf("invalid sort %q (want latest or amount)", sortArg)
			}

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			categories := st.Categories()
			categoryID := ""
			if categoryArg != "" {
				category, err := resolveCategory(categories, categoryArg)
				if err != nil {
					return err
				}
				categoryID = category.ID
			}

			visible := report.Visible(st.Expenses(), model.Filters{
				CategoryID: categoryID,
				SortBy:     sortBy,
				Search:     searchArg,
			})
			if len(visible) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses found."))
				return nil
			}

			names := make(map[string]string, len(categories))
			for _, cat := range categories {
				names[cat.ID] = cat.Name
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, group := range report.GroupByDate(visible) {
				fmt.Fprintf(w, "%s\t\t\n", cli.HeaderStyle.Render(group.Date))
				for _, exp := range group.Expenses {
					note := exp.Note
					if note == "" {
						note = cli.SubtleStyle.Render("(no note)")
					}
					fmt.Fprintf(w, "  %s\t%s\t%s\n",
						cli.FormatAmount(exp.Amount),
						names[exp.CategoryID],
						note)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryArg, "category", "c", "", "restrict to one category (ID or name)")
	cmd.Flags().StringVarP(&sortArg, "sort", "s", "latest", "ordering: latest or amount")
	cmd.Flags().StringVarP(&searchArg, "search", "q", "", "substring match against notes")
	return cmd
}
