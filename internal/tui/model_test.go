package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/penny/internal/model"
	"github.com/pennyflow/penny/internal/storage"
	"github.com/pennyflow/penny/internal/store"
)

func newTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	st := store.New(storage.NewMemoryKV())
	require.NoError(t, st.Init(context.Background()))

	m := NewModel(st)
	refreshed := refreshCmd(st)().(dataRefreshedMsg)
	updated, _ := m.Update(refreshed)
	return updated.(Model), st
}

func keyMsg(key string) tea.KeyMsg {
	if key == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	if key == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestRefreshCarriesStoreSnapshot(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, model.DefaultCategories(), m.categories)
	assert.Empty(t, m.expenses)
	assert.Equal(t, model.DefaultFilters(), m.filters)
}

func TestSortToggle(t *testing.T) {
	m, st := newTestModel(t)

	updated, cmd := m.Update(keyMsg("s"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, model.SortByAmount, st.Filters().SortBy)

	// Apply the refresh and toggle back.
	refreshed, _ := m.Update(cmd())
	m = refreshed.(Model)
	updated, _ = m.Update(keyMsg("s"))
	_ = updated
	assert.Equal(t, model.SortByLatest, st.Filters().SortBy)
}

func TestCategoryCycle(t *testing.T) {
	m, st := newTestModel(t)

	updated, _ := m.Update(keyMsg("tab"))
	m = updated.(Model)
	assert.Equal(t, "food", st.Filters().CategoryID)

	updated, _ = m.Update(keyMsg("tab"))
	m = updated.(Model)
	assert.Equal(t, "transport", st.Filters().CategoryID)

	updated, _ = m.Update(keyMsg("esc"))
	_ = updated
	assert.Equal(t, model.DefaultFilters(), st.Filters())
}

func TestAddFormFlow(t *testing.T) {
	m, st := newTestModel(t)

	updated, _ := m.Update(keyMsg("a"))
	m = updated.(Model)
	assert.Equal(t, StateAdd, m.state)

	m.amountInput.SetValue("12.50")
	model2, cmd := m.submitExpense()
	m = model2.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	added, ok := msg.(expenseAddedMsg)
	require.True(t, ok, "expected expenseAddedMsg, got %T", msg)
	assert.InDelta(t, 12.50, added.expense.Amount, 1e-9)
	assert.Equal(t, "food", added.expense.CategoryID)
	assert.Len(t, st.Expenses(), 1)
}

func TestAddFormRejectsBadAmount(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(keyMsg("a"))
	m = updated.(Model)
	m.amountInput.SetValue("zero")

	model2, cmd := m.submitExpense()
	m = model2.(Model)
	assert.Nil(t, cmd)
	assert.Error(t, m.lastError)
}

func TestViewRendersWithoutData(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "penny")
	assert.Contains(t, view, "Today")
}
