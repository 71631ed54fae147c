package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pennyflow/penny/internal/cli"
	"github.com/pennyflow/penny/internal/model"
	"github.com/pennyflow/penny/internal/ofx"
)

func importCmd() *cobra.Command {
	var (
		categoryArg string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "import <files...>",
		Short: "Import expenses from OFX/QFX bank statements",
		Long: `Import debit transactions from OFX or QFX files exported from your bank.
Every imported transaction becomes an expense in the chosen category; credits
(deposits, refunds) are skipped.

Examples:
  penny import --category other ~/Downloads/statement.qfx
  penny import -c food ~/Downloads/chase_*.qfx --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var files []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					if _, err := os.Stat(pattern); err == nil {
						files = append(files, pattern)
					} else {
						slog.Warn("no files match pattern", "pattern", pattern)
					}
				} else {
					files = append(files, matches...)
				}
			}
			if len(files) == 0 {
				return fmt.Errorf("no files found to import")
			}

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			category, err := resolveCategory(st.Categories(), categoryArg)
			if err != nil {
				return err
			}

			parser := ofx.NewParser()
			var drafts []model.ExpenseDraft
			for _, path := range files {
				f, err := os.Open(path)
				if err != nil {
					slog.Error("failed to open file", "file", path, "error", err)
					continue
				}
				parsed, err := parser.ParseFile(f)
				f.Close()
				if err != nil {
					slog.Error("failed to parse statement", "file", path, "error", err)
					continue
				}
				drafts = append(drafts, parsed...)
			}

			if len(drafts) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing to import."))
				return nil
			}

			if dryRun {
				for _, draft := range drafts {
					fmt.Printf("  %s  %s  %s\n",
						draft.Date.Format("2006-01-02"),
						cli.FormatAmount(draft.Amount),
						draft.Note)
				}
				fmt.Println(cli.FormatWarning(fmt.Sprintf(
					"dry run: %d expense(s) not saved", len(drafts))))
				return nil
			}

			bar := progressbar.Default(int64(len(drafts)), "importing")
			imported := 0
			for _, draft := range drafts {
				draft.CategoryID = category.ID
				if _, err := st.AddExpense(ctx, draft); err != nil {
					slog.Warn("skipped transaction", "note", draft.Note, "error", err)
				} else {
					imported++
				}
				_ = bar.Add(1)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("imported %d expense(s) into %s",
				imported, category.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryArg, "category", "c", "other", "category for imported expenses")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without saving")
	return cmd
}
