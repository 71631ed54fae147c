package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pennyflow/penny/internal/model"
)

const sheetName = "Expenses"

// WriteXLSX writes the expenses to w as a styled spreadsheet with a total
// row, category names resolved like WriteCSV.
func WriteXLSX(w io.Writer, expenses []model.Expense, categories []model.Category) error {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range CSVHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	var total float64
	for i, exp := range expenses {
		name, ok := names[exp.CategoryID]
		if !ok {
			name = exp.CategoryID
		}
		row := i + 2
		values := []any{
			exp.Date.Format(time.RFC3339),
			exp.Amount,
			name,
			exp.Note,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
		total += exp.Amount
	}

	totalRow := len(expenses) + 2
	if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return fmt.Errorf("failed to write total label: %w", err)
	}
	if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalRow), total); err != nil {
		return fmt.Errorf("failed to write total: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 24); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetColWidth(sheetName, "D", "D", 36); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
