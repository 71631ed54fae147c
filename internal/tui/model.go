// Package tui implements the interactive terminal UI: the grouped expense
// list with filter controls, the add-expense form, and the summary panel.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pennyflow/penny/internal/model"
	"github.com/pennyflow/penny/internal/service"
)

// State represents the current state of the TUI.
type State int

const (
	// StateList shows the filtered expense list and summary.
	StateList State = iota
	// StateSearch is list mode with the search input focused.
	StateSearch
	// StateAdd shows the add-expense form.
	StateAdd
)

// Model holds the main TUI state.
type Model struct {
	store      service.Store
	state      State
	keymap     KeyMap
	lastError  error
	status     string
	expenses   []model.Expense
	categories []model.Category
	filters    model.Filters

	searchInput textinput.Model
	amountInput textinput.Model
	noteInput   textinput.Model

	// index into categories+1; 0 means "all" in list mode
	filterIndex int
	// index into categories for the add form
	addCatIndex int
	// which add-form field is focused: 0 amount, 1 note, 2 category
	addFocus int

	width    int
	height   int
	quitting bool
}

// NewModel creates the TUI model over an initialized store.
func NewModel(store service.Store) Model {
	search := textinput.New()
	search.Placeholder = "search notes"
	search.CharLimit = 64
	search.Width = 24

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 16
	amount.Width = 12

	note := textinput.New()
	note.Placeholder = "note (optional)"
	note.CharLimit = 120
	note.Width = 32

	return Model{
		store:       store,
		state:       StateList,
		keymap:      DefaultKeyMap(),
		searchInput: search,
		amountInput: amount,
		noteInput:   note,
	}
}

// Init loads the current store state.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, refreshCmd(m.store))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dataRefreshedMsg:
		m.expenses = msg.expenses
		m.categories = msg.categories
		m.filters = msg.filters
		return m, nil

	case expenseAddedMsg:
		m.status = "added " + formatMoney(msg.expense.Amount)
		m.state = StateList
		return m, refreshCmd(m.store)

	case errMsg:
		m.lastError = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case StateSearch:
		return m.handleSearchKey(msg)
	case StateAdd:
		return m.handleAddKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.lastError = nil

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "a":
		m.state = StateAdd
		m.addFocus = 0
		m.addCatIndex = 0
		m.amountInput.Reset()
		m.noteInput.Reset()
		m.amountInput.Focus()
		return m, textinput.Blink

	case "/":
		m.state = StateSearch
		m.searchInput.SetValue(m.filters.Search)
		m.searchInput.Focus()
		return m, textinput.Blink

	case "s":
		next := model.SortByLatest
		if m.filters.SortBy == model.SortByLatest {
			next = model.SortByAmount
		}
		m.store.SetFilters(model.FilterPatch{SortBy: &next})
		return m, refreshCmd(m.store)

	case "tab":
		m.filterIndex = (m.filterIndex + 1) % (len(m.categories) + 1)
		id := ""
		if m.filterIndex > 0 {
			id = m.categories[m.filterIndex-1].ID
		}
		m.store.SetFilters(model.FilterPatch{CategoryID: &id})
		return m, refreshCmd(m.store)

	case "esc":
		m.filterIndex = 0
		empty := ""
		latest := model.SortByLatest
		m.store.SetFilters(model.FilterPatch{
			CategoryID: &empty,
			SortBy:     &latest,
			Search:     &empty,
		})
		return m, refreshCmd(m.store)
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		query := m.searchInput.Value()
		if msg.String() == "esc" {
			query = ""
			m.searchInput.Reset()
		}
		m.searchInput.Blur()
		m.state = StateList
		m.store.SetFilters(model.FilterPatch{Search: &query})
		return m, refreshCmd(m.store)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	query := m.searchInput.Value()
	m.store.SetFilters(model.FilterPatch{Search: &query})
	return m, tea.Batch(cmd, refreshCmd(m.store))
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateList
		m.amountInput.Blur()
		m.noteInput.Blur()
		return m, nil

	case "tab", "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = 2 // backwards over three fields
		}
		m.addFocus = (m.addFocus + delta) % 3
		m.amountInput.Blur()
		m.noteInput.Blur()
		switch m.addFocus {
		case 0:
			m.amountInput.Focus()
		case 1:
			m.noteInput.Focus()
		}
		return m, textinput.Blink

	case "left", "right":
		if m.addFocus == 2 && len(m.categories) > 0 {
			if msg.String() == "right" {
				m.addCatIndex = (m.addCatIndex + 1) % len(m.categories)
			} else {
				m.addCatIndex = (m.addCatIndex + len(m.categories) - 1) % len(m.categories)
			}
			return m, nil
		}

	case "enter":
		return m.submitExpense()
	}

	var cmd tea.Cmd
	switch m.addFocus {
	case 0:
		m.amountInput, cmd = m.amountInput.Update(msg)
	case 1:
		m.noteInput, cmd = m.noteInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitExpense() (tea.Model, tea.Cmd) {
	amount, err := model.ParseAmount(m.amountInput.Value())
	if err != nil {
		m.lastError = err
		return m, nil
	}
	if len(m.categories) == 0 || m.addCatIndex >= len(m.categories) {
		m.lastError = errNoCategory
		return m, nil
	}

	draft := model.ExpenseDraft{
		Amount:     amount,
		CategoryID: m.categories[m.addCatIndex].ID,
		Note:       strings.TrimSpace(m.noteInput.Value()),
		Date:       time.Now(),
	}
	m.lastError = nil
	return m, addExpenseCmd(m.store, draft)
}
