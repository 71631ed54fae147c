// Package report contains the pure functions that turn the raw expense
// collection into the views the UI needs: filtering, sorting, day grouping,
// period totals, and the monthly category breakdown. Nothing here touches
// the store or mutates its inputs.
package report

import (
	"sort"
	"strings"

	"github.com/pennyflow/penny/internal/model"
)

// ApplyCategory restricts expenses to the given category. An empty
// categoryID returns the input unchanged.
func ApplyCategory(expenses []model.Expense, categoryID string) []model.Expense {
	if categoryID == "" {
		return expenses
	}
	var out []model.Expense
	for _, exp := range expenses {
		if exp.CategoryID == categoryID {
			out = append(out, exp)
		}
	}
	return out
}

// ApplySearch keeps expenses whose note contains the trimmed query,
// case-insensitively. A query that trims to empty returns the input
// unchanged.
func ApplySearch(expenses []model.Expense, query string) []model.Expense {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return expenses
	}
	var out []model.Expense
	for _, exp := range expenses {
		if strings.Contains(strings.ToLower(exp.Note), q) {
			out = append(out, exp)
		}
	}
	return out
}

// SortExpenses returns a new slice ordered by the given sort mode: largest
// amount first, or most recent first. The sort is stable so ties keep their
// relative order between renders.
func SortExpenses(expenses []model.Expense, sortBy model.SortBy) []model.Expense {
	out := make([]model.Expense, len(expenses))
	copy(out, expenses)

	if sortBy == model.SortByAmount {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount > out[j].Amount
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Visible applies the full pipeline in its fixed order: category filter,
// then search, then sort.
func Visible(expenses []model.Expense, filters model.Filters) []model.Expense {
	out := ApplyCategory(expenses, filters.CategoryID)
	out = ApplySearch(out, filters.Search)
	return SortExpenses(out, filters.SortBy)
}
