package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pennyflow/penny/internal/model"
	"github.com/pennyflow/penny/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#38BDF8"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 2)

	dayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#94A3B8"))

	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E2E8F0"))
	amountStyle = lipgloss.NewStyle().Bold(true)
	catStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0F172A")).
			Background(lipgloss.Color("#38BDF8")).
			Padding(0, 1)
	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Padding(0, 1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#475569"))
)

func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state == StateAdd {
		return m.viewAdd()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("penny") + "\n\n")
	b.WriteString(m.viewTotals() + "\n")
	b.WriteString(m.viewFilterBar() + "\n\n")
	b.WriteString(m.viewExpenses())

	if m.lastError != nil {
		b.WriteString("\n" + errStyle.Render(m.lastError.Error()))
	} else if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	b.WriteString("\n" + helpStyle.Render(m.keymap.HelpLine()))
	return b.String()
}

func (m Model) viewTotals() string {
	totals := report.Totals(m.expenses, time.Now())
	cards := []string{
		cardStyle.Render("Today\n" + amountStyle.Render(formatMoney(totals.Today))),
		cardStyle.Render("Week\n" + amountStyle.Render(formatMoney(totals.Week))),
		cardStyle.Render("Month\n" + amountStyle.Render(formatMoney(totals.Month))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) viewFilterBar() string {
	tabs := make([]string, 0, len(m.categories)+1)

	style := inactiveStyle
	if m.filters.CategoryID == "" {
		style = activeStyle
	}
	tabs = append(tabs, style.Render("All"))

	for _, cat := range m.categories {
		style = inactiveStyle
		if m.filters.CategoryID == cat.ID {
			style = activeStyle
		}
		tabs = append(tabs, style.Render(cat.Name))
	}

	sortLabel := "latest"
	if m.filters.SortBy == model.SortByAmount {
		sortLabel = "amount"
	}
	tabs = append(tabs, helpStyle.Render(" sort:"+sortLabel))

	if m.state == StateSearch {
		tabs = append(tabs, " "+m.searchInput.View())
	} else if m.filters.Search != "" {
		tabs = append(tabs, helpStyle.Render(" search:"+m.filters.Search))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

func (m Model) viewExpenses() string {
	visible := report.Visible(m.expenses, m.filters)
	if len(visible) == 0 {
		return helpStyle.Render("No expenses yet. Press 'a' to add one.")
	}

	names := make(map[string]string, len(m.categories))
	for _, cat := range m.categories {
		names[cat.ID] = cat.Name
	}

	var b strings.Builder
	for _, group := range report.GroupByDate(visible) {
		b.WriteString(dayStyle.Render(group.Date) + "\n")
		for _, exp := range group.Expenses {
			note := exp.Note
			if note == "" {
				note = "—"
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				amountStyle.Render(fmt.Sprintf("%10s", formatMoney(exp.Amount))),
				catStyle.Render(fmt.Sprintf("%-12s", names[exp.CategoryID])),
				noteStyle.Render(note)))
		}
	}
	return b.String()
}

func (m Model) viewAdd() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add expense") + "\n\n")

	b.WriteString(fieldLabel("Amount", m.addFocus == 0) + " " + m.amountInput.View() + "\n")
	b.WriteString(fieldLabel("Note", m.addFocus == 1) + "   " + m.noteInput.View() + "\n")

	category := "(none)"
	if len(m.categories) > 0 {
		category = m.categories[m.addCatIndex].Name
	}
	marker := "  "
	if m.addFocus == 2 {
		marker = "◂ "
	}
	b.WriteString(fieldLabel("Category", m.addFocus == 2) +
		fmt.Sprintf(" %s%s ▸\n", marker, category))

	if m.lastError != nil {
		b.WriteString("\n" + errStyle.Render(m.lastError.Error()))
	}
	b.WriteString("\n" + helpStyle.Render("enter save · tab next field · ←/→ category · esc cancel"))
	return b.String()
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return activeStyle.Render(label)
	}
	return inactiveStyle.Render(label)
}
