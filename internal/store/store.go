// Package store holds the authoritative in-memory application state and
// keeps it in sync with the persistence layer. Every mutation goes through
// the Store and is persisted before it is visible to readers.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pennyflow/penny/internal/common"
	"github.com/pennyflow/penny/internal/model"
	"github.com/pennyflow/penny/internal/service"
)

// Store is the single source of truth for expenses, categories, and the
// active filters. All mutations are serialized through one mutex, so two
// overlapping read-modify-write cycles cannot overwrite each other's
// persisted state.
type Store struct {
	mu          sync.RWMutex
	kv          service.KVStore
	expenses    []model.Expense
	categories  []model.Category
	filters     model.Filters
	initialized bool

	// now is swapped out in tests that exercise slug disambiguation.
	now func() time.Time
}

// New creates a Store over the given persistence adapter. The Store is empty
// until Init loads the persisted collections.
func New(kv service.KVStore) *Store {
	return &Store{
		kv:      kv,
		filters: model.DefaultFilters(),
		now:     time.Now,
	}
}

// Init loads both collections from the adapter. When no categories were ever
// persisted it installs the built-in default set; categories persisted
// without an icon are repaired in place and written back.
func (s *Store) Init(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var (
		expenses   []model.Expense
		categories []model.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.loadCollection(gctx, service.ExpensesKey, &expenses)
	})
	g.Go(func() error {
		return s.loadCollection(gctx, service.CategoriesKey, &categories)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if len(categories) == 0 {
		categories = model.DefaultCategories()
		if err := s.persistCategories(ctx, categories); err != nil {
			return err
		}
		slog.Info("installed default categories", "count", len(categories))
	} else {
		migrated := 0
		for i := range categories {
			if categories[i].IconName == "" {
				categories[i].IconName = model.DefaultIconName
				migrated++
			}
		}
		if migrated > 0 {
			if err := s.persistCategories(ctx, categories); err != nil {
				return err
			}
			slog.Info("repaired categories missing icons", "count", migrated)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = expenses
	s.categories = categories
	s.initialized = true

	slog.Debug("store initialized",
		"expenses", len(expenses),
		"categories", len(categories))
	return nil
}

// Expenses returns a copy of the expense collection, newest-inserted first.
func (s *Store) Expenses() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Categories returns a copy of the category collection in insertion order.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Filters returns the active filter state.
func (s *Store) Filters() model.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// AddExpense assigns an ID to the draft, prepends it to the collection, and
// persists. The draft is re-validated here even when the caller already
// checked it at the input boundary.
func (s *Store) AddExpense(ctx context.Context, draft model.ExpenseDraft) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := model.ValidateDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return nil, common.ErrNotInitialized
	}

	date := draft.Date
	if date.IsZero() {
		date = s.now()
	}

	expense := model.Expense{
		ID:         model.NewExpenseID(),
		Amount:     draft.Amount,
		CategoryID: draft.CategoryID,
		Note:       draft.Note,
		Date:       date,
	}

	next := make([]model.Expense, 0, len(s.expenses)+1)
	next = append(next, expense)
	next = append(next, s.expenses...)

	if err := s.persistExpenses(ctx, next); err != nil {
		return nil, err
	}
	s.expenses = next

	slog.Debug("added expense",
		"id", expense.ID,
		"category", expense.CategoryID,
		"amount", expense.Amount)
	return &expense, nil
}

// AddCategory creates a category from a display name, deriving a unique slug
// ID and defaulting the icon. The created record is returned so callers can
// select it immediately.
func (s *Store) AddCategory(ctx context.Context, name, iconName string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrNameRequired
	}
	if iconName == "" {
		iconName = model.DefaultIconName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return nil, common.ErrNotInitialized
	}

	id := model.UniqueSlug(name, func(id string) bool {
		for _, cat := range s.categories {
			if cat.ID == id {
				return true
			}
		}
		return false
	}, s.now())

	category := model.Category{ID: id, Name: name, IconName: iconName}
	next := append(append([]model.Category{}, s.categories...), category)

	if err := s.persistCategories(ctx, next); err != nil {
		return nil, err
	}
	s.categories = next

	slog.Debug("added category", "id", category.ID, "name", category.Name)
	return &category, nil
}

// DeleteCategory removes the category and cascades to every expense that
// references it, as a single logical operation. Both collections are
// persisted before the in-memory state commits, so readers never observe an
// expense pointing at a deleted category.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return common.ErrCategoryRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return common.ErrNotInitialized
	}

	nextCategories := make([]model.Category, 0, len(s.categories))
	for _, cat := range s.categories {
		if cat.ID != id {
			nextCategories = append(nextCategories, cat)
		}
	}
	nextExpenses := make([]model.Expense, 0, len(s.expenses))
	for _, exp := range s.expenses {
		if exp.CategoryID != id {
			nextExpenses = append(nextExpenses, exp)
		}
	}

	if err := s.persistCategories(ctx, nextCategories); err != nil {
		return err
	}
	if err := s.persistExpenses(ctx, nextExpenses); err != nil {
		return err
	}

	removed := len(s.expenses) - len(nextExpenses)
	s.categories = nextCategories
	s.expenses = nextExpenses

	slog.Info("deleted category", "id", id, "cascaded_expenses", removed)
	return nil
}

// SetFilters shallow-merges the patch into the active filters. Filters are
// transient view state and are never persisted.
func (s *Store) SetFilters(patch model.FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.Merge(patch)
}

// ClearAll erases all persisted data, reinstalls the default categories, and
// resets the filters. Calling it twice yields the same end state.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return common.ErrNotInitialized
	}

	keys := []string{service.ExpensesKey, service.CategoriesKey}
	if err := s.kv.RemoveMany(ctx, keys); err != nil {
		return common.NewPersistenceError("remove", strings.Join(keys, ","), err)
	}

	defaults := model.DefaultCategories()
	if err := s.persistCategories(ctx, defaults); err != nil {
		return err
	}

	s.expenses = nil
	s.categories = defaults
	s.filters = model.DefaultFilters()

	slog.Info("cleared all data")
	return nil
}

// CountExpenses returns how many expenses reference the given category.
func (s *Store) CountExpenses(categoryID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, exp := range s.expenses {
		if exp.CategoryID == categoryID {
			count++
		}
	}
	return count
}

func (s *Store) loadCollection(ctx context.Context, key string, out any) error {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return common.NewPersistenceError("read", key, err)
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) persistExpenses(ctx context.Context, expenses []model.Expense) error {
	return s.persistCollection(ctx, service.ExpensesKey, expenses)
}

func (s *Store) persistCategories(ctx context.Context, categories []model.Category) error {
	return s.persistCollection(ctx, service.CategoriesKey, categories)
}

func (s *Store) persistCollection(ctx context.Context, key string, collection any) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		return common.NewPersistenceError("write", key, err)
	}
	return nil
}

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return nil
}
