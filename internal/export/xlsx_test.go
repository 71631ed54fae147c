package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pennyflow/penny/internal/model"
)

func TestWriteXLSX(t *testing.T) {
	categories := []model.Category{{ID: "food", Name: "Food"}}
	date := time.Date(2025, 6, 10, 12, 30, 0, 0, time.UTC)
	expenses := []model.Expense{
		{ID: "a", Amount: 12.5, CategoryID: "food", Note: "Lunch", Date: date},
		{ID: "b", Amount: 7.5, CategoryID: "food", Date: date},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, expenses, categories))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, "2025-06-10T12:30:00Z", rows[1][0])
	assert.Equal(t, "Food", rows[1][2])
	assert.Equal(t, "Lunch", rows[1][3])

	// Total row sums the amounts.
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "20", rows[3][1])
}
