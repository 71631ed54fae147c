package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/penny/internal/common"
	"github.com/pennyflow/penny/internal/model"
	"github.com/pennyflow/penny/internal/report"
	"github.com/pennyflow/penny/internal/service"
	"github.com/pennyflow/penny/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	st := New(kv)
	require.NoError(t, st.Init(context.Background()))
	return st, kv
}

func persistedExpenses(t *testing.T, kv *storage.MemoryKV) []model.Expense {
	t.Helper()
	raw, ok, err := kv.Get(context.Background(), service.ExpensesKey)
	require.NoError(t, err)
	if !ok {
		return nil
	}
	var out []model.Expense
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func persistedCategories(t *testing.T, kv *storage.MemoryKV) []model.Category {
	t.Helper()
	raw, ok, err := kv.Get(context.Background(), service.CategoriesKey)
	require.NoError(t, err)
	if !ok {
		return nil
	}
	var out []model.Category
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestInit(t *testing.T) {
	ctx := context.Background()

	t.Run("installs defaults on first run and persists them", func(t *testing.T) {
		st, kv := newTestStore(t)

		assert.Empty(t, st.Expenses())
		assert.Equal(t, model.DefaultCategories(), st.Categories())
		assert.Equal(t, model.DefaultFilters(), st.Filters())
		assert.Equal(t, model.DefaultCategories(), persistedCategories(t, kv))
	})

	t.Run("loads persisted collections", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		categories := []model.Category{{ID: "pets", Name: "Pets", IconName: "paw-outline"}}
		expenses := []model.Expense{{
			ID: "e1", Amount: 9.99, CategoryID: "pets", Note: "treats",
			Date: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		}}
		seed(t, kv, expenses, categories)

		st := New(kv)
		require.NoError(t, st.Init(ctx))

		assert.Equal(t, expenses, st.Expenses())
		assert.Equal(t, categories, st.Categories())
	})

	t.Run("repairs categories missing an icon and writes back", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		seed(t, kv, nil, []model.Category{
			{ID: "pets", Name: "Pets"},
			{ID: "gifts", Name: "Gifts", IconName: "gift-outline"},
		})

		st := New(kv)
		require.NoError(t, st.Init(ctx))

		got := st.Categories()
		assert.Equal(t, model.DefaultIconName, got[0].IconName)
		assert.Equal(t, "gift-outline", got[1].IconName)
		// Write-through repair: the fix is durable immediately.
		assert.Equal(t, got, persistedCategories(t, kv))
	})

	t.Run("propagates read failures", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		require.NoError(t, kv.Set(ctx, service.ExpensesKey, "{not json"))

		st := New(kv)
		assert.Error(t, st.Init(ctx))
	})
}

func seed(t *testing.T, kv *storage.MemoryKV, expenses []model.Expense, categories []model.Category) {
	t.Helper()
	ctx := context.Background()
	if expenses != nil {
		raw, err := json.Marshal(expenses)
		require.NoError(t, err)
		require.NoError(t, kv.Set(ctx, service.ExpensesKey, string(raw)))
	}
	if categories != nil {
		raw, err := json.Marshal(categories)
		require.NoError(t, err)
		require.NoError(t, kv.Set(ctx, service.CategoriesKey, string(raw)))
	}
}

func TestAddExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("prepends the new expense and persists", func(t *testing.T) {
		st, kv := newTestStore(t)

		first, err := st.AddExpense(ctx, model.ExpenseDraft{Amount: 5, CategoryID: "food", Note: "coffee"})
		require.NoError(t, err)
		second, err := st.AddExpense(ctx, model.ExpenseDraft{Amount: 12.50, CategoryID: "food", Note: "lunch"})
		require.NoError(t, err)

		expenses := st.Expenses()
		require.Len(t, expenses, 2)
		assert.Equal(t, second.ID, expenses[0].ID)
		assert.Equal(t, 12.50, expenses[0].Amount)
		assert.Equal(t, "food", expenses[0].CategoryID)
		assert.Equal(t, "lunch", expenses[0].Note)
		assert.Equal(t, first.ID, expenses[1].ID)
		assert.NotEqual(t, first.ID, second.ID)

		assert.Equal(t, expenses, persistedExpenses(t, kv))
	})

	t.Run("defaults the date to now", func(t *testing.T) {
		st, _ := newTestStore(t)
		before := time.Now()

		expense, err := st.AddExpense(ctx, model.ExpenseDraft{Amount: 1, CategoryID: "food"})
		require.NoError(t, err)
		assert.False(t, expense.Date.Before(before))
	})

	t.Run("rejects invalid drafts without mutating state", func(t *testing.T) {
		st, kv := newTestStore(t)

		_, err := st.AddExpense(ctx, model.ExpenseDraft{Amount: 0, CategoryID: "food"})
		assert.ErrorIs(t, err, common.ErrInvalidAmount)
		_, err = st.AddExpense(ctx, model.ExpenseDraft{Amount: 10})
		assert.ErrorIs(t, err, common.ErrCategoryRequired)

		assert.Empty(t, st.Expenses())
		assert.Empty(t, persistedExpenses(t, kv))
	})

	t.Run("keeps memory unchanged when the write fails", func(t *testing.T) {
		st, kv := newTestStore(t)
		kv.FailWrites = errors.New("disk full")

		_, err := st.AddExpense(ctx, model.ExpenseDraft{Amount: 5, CategoryID: "food"})
		require.Error(t, err)

		var perr *common.PersistenceError
		assert.ErrorAs(t, err, &perr)
		assert.Empty(t, st.Expenses())
	})
}

func TestAddCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a slugged category with default icon", func(t *testing.T) {
		st, kv := newTestStore(t)

		category, err := st.AddCategory(ctx, "  Eating Out  ", "")
		require.NoError(t, err)
		assert.Equal(t, "eating-out", category.ID)
		assert.Equal(t, "Eating Out", category.Name)
		assert.Equal(t, model.DefaultIconName, category.IconName)

		categories := st.Categories()
		assert.Equal(t, *category, categories[len(categories)-1])
		assert.Equal(t, categories, persistedCategories(t, kv))
	})

	t.Run("same name twice yields two categories with distinct ids", func(t *testing.T) {
		st, _ := newTestStore(t)
		st.now = func() time.Time { return time.UnixMilli(1700000000000) }

		first, err := st.AddCategory(ctx, "Coffee", "cafe-outline")
		require.NoError(t, err)
		second, err := st.AddCategory(ctx, "Coffee", "cafe-outline")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		ids := make(map[string]bool)
		for _, cat := range st.Categories() {
			assert.False(t, ids[cat.ID], "duplicate id %s", cat.ID)
			ids[cat.ID] = true
		}
		assert.True(t, ids[first.ID])
		assert.True(t, ids[second.ID])
	})

	t.Run("rejects blank names", func(t *testing.T) {
		st, _ := newTestStore(t)
		_, err := st.AddCategory(ctx, "   ", "")
		assert.ErrorIs(t, err, common.ErrNameRequired)
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades to every referencing expense", func(t *testing.T) {
		st, kv := newTestStore(t)

		_, err := st.AddExpense(ctx, model.ExpenseDraft{Amount: 10, CategoryID: "food"})
		require.NoError(t, err)
		_, err = st.AddExpense(ctx, model.ExpenseDraft{Amount: 20, CategoryID: "food"})
		require.NoError(t, err)
		keep, err := st.AddExpense(ctx, model.ExpenseDraft{Amount: 30, CategoryID: "bills"})
		require.NoError(t, err)

		require.NoError(t, st.DeleteCategory(ctx, "food"))

		expenses := st.Expenses()
		require.Len(t, expenses, 1)
		assert.Equal(t, keep.ID, expenses[0].ID)

		existing := make(map[string]bool)
		for _, cat := range st.Categories() {
			assert.NotEqual(t, "food", cat.ID)
			existing[cat.ID] = true
		}
		for _, exp := range expenses {
			assert.True(t, existing[exp.CategoryID], "expense %s references a missing category", exp.ID)
		}

		assert.Equal(t, expenses, persistedExpenses(t, kv))
		assert.Len(t, persistedCategories(t, kv), len(model.DefaultCategories())-1)
	})

	t.Run("deleting an unknown id leaves expenses alone", func(t *testing.T) {
		st, _ := newTestStore(t)
		_, err := st.AddExpense(ctx, model.ExpenseDraft{Amount: 10, CategoryID: "food"})
		require.NoError(t, err)

		require.NoError(t, st.DeleteCategory(ctx, "nope"))
		assert.Len(t, st.Expenses(), 1)
		assert.Len(t, st.Categories(), len(model.DefaultCategories()))
	})
}

func TestSetFilters(t *testing.T) {
	st, _ := newTestStore(t)

	categoryID := "food"
	st.SetFilters(model.FilterPatch{CategoryID: &categoryID})
	assert.Equal(t, "food", st.Filters().CategoryID)
	// Untouched fields survive the merge.
	assert.Equal(t, model.SortByLatest, st.Filters().SortBy)

	sortBy := model.SortByAmount
	search := "coffee"
	st.SetFilters(model.FilterPatch{SortBy: &sortBy, Search: &search})
	got := st.Filters()
	assert.Equal(t, "food", got.CategoryID)
	assert.Equal(t, model.SortByAmount, got.SortBy)
	assert.Equal(t, "coffee", got.Search)
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	st, kv := newTestStore(t)

	_, err := st.AddExpense(ctx, model.ExpenseDraft{Amount: 10, CategoryID: "food"})
	require.NoError(t, err)
	_, err = st.AddCategory(ctx, "Pets", "paw-outline")
	require.NoError(t, err)
	search := "coffee"
	st.SetFilters(model.FilterPatch{Search: &search})

	require.NoError(t, st.ClearAll(ctx))

	assert.Empty(t, st.Expenses())
	assert.Equal(t, model.DefaultCategories(), st.Categories())
	assert.Equal(t, model.DefaultFilters(), st.Filters())
	assert.Equal(t, model.DefaultCategories(), persistedCategories(t, kv))
	assert.Empty(t, persistedExpenses(t, kv))

	// Idempotent: a second clear yields the same end state.
	require.NoError(t, st.ClearAll(ctx))
	assert.Empty(t, st.Expenses())
	assert.Equal(t, model.DefaultCategories(), st.Categories())
	assert.Equal(t, model.DefaultFilters(), st.Filters())
}

func TestConcurrentAddExpense(t *testing.T) {
	// Overlapping read-modify-write cycles must not lose writes.
	ctx := context.Background()
	st, kv := newTestStore(t)

	const writers = 10
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			_, err := st.AddExpense(ctx, model.ExpenseDraft{
				Amount:     float64(n + 1),
				CategoryID: "food",
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, st.Expenses(), writers)
	assert.Len(t, persistedExpenses(t, kv), writers)
}

func TestEndToEndScenario(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	food, err := st.AddCategory(ctx, "Takeout", "restaurant-outline")
	require.NoError(t, err)

	_, err = st.AddExpense(ctx, model.ExpenseDraft{
		Amount:     12.50,
		CategoryID: food.ID,
		Note:       "Lunch",
		Date:       time.Now(),
	})
	require.NoError(t, err)

	now := time.Now()
	totals := report.Totals(st.Expenses(), now)
	assert.InDelta(t, 12.50, totals.Today, 1e-9)

	breakdown := report.Breakdown(st.Expenses(), st.Categories(), now)
	require.Len(t, breakdown.Items, 1)
	assert.Equal(t, food.ID, breakdown.Items[0].CategoryID)
	assert.InDelta(t, 100, breakdown.Items[0].Pct, 1e-9)
}
