package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennyflow/penny/internal/cli"
	"github.com/pennyflow/penny/internal/report"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show period totals and the monthly category breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, closeStore, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			now := time.Now()
			expenses := st.Expenses()
			totals := report.Totals(expenses, now)

			fmt.Println(cli.FormatTitle("Spending"))
			fmt.Printf("  Today  %s\n", cli.FormatAmount(totals.Today))
			fmt.Printf("  Week   %s\n", cli.FormatAmount(totals.Week))
			fmt.Printf("  Month  %s\n", cli.FormatAmount(totals.Month))

			breakdown := report.Breakdown(expenses, st.Categories(), now)
			fmt.Println()
			fmt.Println(cli.HeaderStyle.Render("This month by category"))
			if len(breakdown.Items) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  No expenses this month."))
				return nil
			}

			for _, item := range breakdown.Items {
				fmt.Printf("  %-14s %s %s %s\n",
					item.Name,
					cli.Bar(item.Pct, 20),
					cli.FormatAmount(item.Amount),
					cli.SubtleStyle.Render(fmt.Sprintf("(%.0f%%)", item.Pct)))
			}
			fmt.Printf("  %-14s %s\n", "Total", cli.FormatAmount(breakdown.MonthTotal))
			return nil
		},
	}
}
