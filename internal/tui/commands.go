package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pennyflow/penny/internal/model"
	"github.com/pennyflow/penny/internal/service"
)

var errNoCategory = errors.New("create a category first")

// dataRefreshedMsg carries a fresh snapshot of the store state.
type dataRefreshedMsg struct {
	expenses   []model.Expense
	categories []model.Category
	filters    model.Filters
}

// expenseAddedMsg reports a successful AddExpense.
type expenseAddedMsg struct {
	expense *model.Expense
}

// errMsg carries an operation failure into the update loop.
type errMsg struct {
	err error
}

func refreshCmd(store service.Store) tea.Cmd {
	return func() tea.Msg {
		return dataRefreshedMsg{
			expenses:   store.Expenses(),
			categories: store.Categories(),
			filters:    store.Filters(),
		}
	}
}

func addExpenseCmd(store service.Store, draft model.ExpenseDraft) tea.Cmd {
	return func() tea.Msg {
		expense, err := store.AddExpense(context.Background(), draft)
		if err != nil {
			return errMsg{err: err}
		}
		return expenseAddedMsg{expense: expense}
	}
}
