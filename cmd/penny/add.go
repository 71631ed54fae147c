package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennyflow/penny/internal/cli"
	"github.com/pennyflow/penny/internal/model"
)

func addCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "add <amount> <category>",
		Short: "Record an expense",
		Long: `Record a new expense against a category.

Examples:
  penny add 12.50 food --note "Lunch"
  penny add 89.99 shopping`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Validate before touching the store
			amount, err := model.ParseAmount(args[0])
			if err != nil {
				return err
			}

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			category, err := resolveCategory(st.Categories(), args[1])
			if err != nil {
				return err
			}

			expense, err := st.AddExpense(ctx, model.ExpenseDraft{
				Amount:     amount,
				CategoryID: category.ID,
				Note:       note,
			})
			if err != nil {
				return fmt.Errorf("failed to add expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("recorded %s in %s",
				cli.FormatAmount(expense.Amount), category.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "free-text note for the expense")
	return cmd
}
