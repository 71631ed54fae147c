// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/pennyflow/penny/internal/model"
)

// Storage keys for the two persisted collections. An absent key is
// equivalent to an empty collection.
const (
	ExpensesKey   = "pf.expenses.v1"
	CategoriesKey = "pf.categories.v1"
)

// KVStore is the persistence contract: an asynchronous string-keyed store.
// Values are JSON-encoded collections.
type KVStore interface {
	// Get returns the value for key; the second result is false when the key
	// is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set durably writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// RemoveMany deletes the given keys. Missing keys are not an error.
	RemoveMany(ctx context.Context, keys []string) error
	Close() error
}

// Store is the presentation-facing contract for the application state.
type Store interface {
	Init(ctx context.Context) error

	Expenses() []model.Expense
	Categories() []model.Category
	Filters() model.Filters

	AddExpense(ctx context.Context, draft model.ExpenseDraft) (*model.Expense, error)
	AddCategory(ctx context.Context, name, iconName string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	SetFilters(patch model.FilterPatch)
	ClearAll(ctx context.Context) error
}
