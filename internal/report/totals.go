package report

import (
	"sort"
	"time"

	"github.com/pennyflow/penny/internal/model"
)

// PeriodTotals are three independent sums over the full expense collection.
// They are computed against a caller-supplied "now" so they stay correct
// across midnight and month boundaries while the app is open.
type PeriodTotals struct {
	Today float64
	Week  float64
	Month float64
}

// Totals sums expenses falling on the current day, in the current week
// (starting Monday), and in the current calendar month.
func Totals(expenses []model.Expense, now time.Time) PeriodTotals {
	var t PeriodTotals
	for _, exp := range expenses {
		if sameDay(exp.Date, now) {
			t.Today += exp.Amount
		}
		if sameWeek(exp.Date, now) {
			t.Week += exp.Amount
		}
		if sameMonth(exp.Date, now) {
			t.Month += exp.Amount
		}
	}
	return t
}

// CategoryShare is one category's slice of the current month's spending.
type CategoryShare struct {
	CategoryID string
	Name       string
	IconName   string
	Amount     float64
	Pct        float64
}

// MonthBreakdown is the per-category split of the current month's total.
type MonthBreakdown struct {
	Items      []CategoryShare
	MonthTotal float64
}

// Breakdown computes each category's current-month sum and its share of the
// monthly total, sorted largest first. Categories with no spending this
// month are omitted; when the month total is zero every share is zero.
func Breakdown(expenses []model.Expense, categories []model.Category, now time.Time) MonthBreakdown {
	sums := make(map[string]float64)
	var monthTotal float64
	for _, exp := range expenses {
		if sameMonth(exp.Date, now) {
			sums[exp.CategoryID] += exp.Amount
			monthTotal += exp.Amount
		}
	}

	var items []CategoryShare
	for _, cat := range categories {
		amount := sums[cat.ID]
		if amount == 0 {
			continue
		}
		pct := 0.0
		if monthTotal > 0 {
			pct = amount / monthTotal * 100
		}
		items = append(items, CategoryShare{
			CategoryID: cat.ID,
			Name:       cat.Name,
			IconName:   cat.IconName,
			Amount:     amount,
			Pct:        pct,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount > items[j].Amount
	})
	return MonthBreakdown{Items: items, MonthTotal: monthTotal}
}

func sameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// sameWeek treats Monday as the first day of the week.
func sameWeek(a, b time.Time) bool {
	return startOfWeek(a).Equal(startOfWeek(b))
}

func startOfWeek(t time.Time) time.Time {
	t = t.Local()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	year, month, day := t.AddDate(0, 0, -(weekday - 1)).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func sameMonth(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month()
}
