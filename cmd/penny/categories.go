package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pennyflow/penny/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add, and delete the categories expenses are recorded against.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, closeStore, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			categories := st.Categories()
			if len(categories) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No categories. Use 'penny categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Icon"),
				cli.HeaderStyle.Render("Expenses"))
			for _, cat := range categories {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
					cat.ID, cat.Name, cat.IconName, st.CountExpenses(cat.ID))
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var iconName string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			category, err := st.AddCategory(ctx, args[0], iconName)
			if err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("created category %s (id %s)",
				category.Name, category.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&iconName, "icon", "i", "", "icon identifier (defaults to a generic tag)")
	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <category>",
		Short: "Delete a category and every expense in it",
		Long: `Delete a category. All expenses recorded against it are removed as well,
so no expense is ever left pointing at a category that no longer exists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			category, err := resolveCategory(st.Categories(), args[0])
			if err != nil {
				return err
			}

			count := st.CountExpenses(category.ID)
			if !force {
				prompt := fmt.Sprintf("Delete %q and its %d expense(s)?", category.Name, count)
				ok, err := cli.Confirm(ctx, os.Stdin, os.Stdout, prompt)
				if err != nil {
					return err
				}
				fmt.Println()
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Aborted."))
					return nil
				}
			}

			if err := st.DeleteCategory(ctx, category.ID); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("deleted %s and %d expense(s)",
				category.Name, count)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
