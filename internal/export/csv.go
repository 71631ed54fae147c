// Package export writes expense snapshots to portable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/pennyflow/penny/internal/model"
)

// CSVHeader is the column layout of exported files.
var CSVHeader = []string{"date", "amount", "category", "note"}

// WriteCSV writes the expenses to w with category IDs resolved to display
// names. Expenses whose category is unknown keep the raw ID so no row is
// silently dropped.
func WriteCSV(w io.Writer, expenses []model.Expense, categories []model.Category) error {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, exp := range expenses {
		name, ok := names[exp.CategoryID]
		if !ok {
			name = exp.CategoryID
		}
		record := []string{
			exp.Date.Format(time.RFC3339),
			fmt.Sprintf("%.2f", exp.Amount),
			name,
			exp.Note,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
