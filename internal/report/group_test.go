package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/penny/internal/model"
)

func TestGroupByDate(t *testing.T) {
	monday := time.Date(2025, 6, 9, 9, 0, 0, 0, time.Local)
	tuesday := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)

	xs := []model.Expense{
		expense("a", "food", "", 1, tuesday),
		expense("b", "food", "", 2, monday),
		expense("c", "food", "", 3, tuesday.Add(5*time.Hour)),
		expense("d", "bills", "", 4, monday.Add(1*time.Hour)),
	}

	groups := GroupByDate(xs)
	require.Len(t, groups, 2)

	t.Run("groups ordered most recent day first", func(t *testing.T) {
		assert.Equal(t, "2025-06-10", groups[0].Date)
		assert.Equal(t, "2025-06-09", groups[1].Date)
	})

	t.Run("member order follows the input", func(t *testing.T) {
		assert.Equal(t, "a", groups[0].Expenses[0].ID)
		assert.Equal(t, "c", groups[0].Expenses[1].ID)
		assert.Equal(t, "b", groups[1].Expenses[0].ID)
		assert.Equal(t, "d", groups[1].Expenses[1].ID)
	})

	t.Run("flattening yields a permutation of the input", func(t *testing.T) {
		var flat []string
		for _, g := range groups {
			for _, exp := range g.Expenses {
				flat = append(flat, exp.ID)
			}
		}
		assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, flat)
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		assert.Empty(t, GroupByDate(nil))
	})
}
