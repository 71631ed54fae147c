package report

import (
	"sort"

	"github.com/pennyflow/penny/internal/model"
)

// DayKeyFormat is the calendar-day key used for grouping, in local time.
const DayKeyFormat = "2006-01-02"

// DayGroup is one calendar day's worth of expenses, members in the order
// they were encountered.
type DayGroup struct {
	Date     string
	Expenses []model.Expense
}

// GroupByDate partitions expenses by local calendar day. Groups are returned
// most recent day first; member order within a group follows the input.
func GroupByDate(expenses []model.Expense) []DayGroup {
	byDay := make(map[string]int)
	var groups []DayGroup

	for _, exp := range expenses {
		key := exp.Date.Local().Format(DayKeyFormat)
		idx, ok := byDay[key]
		if !ok {
			idx = len(groups)
			byDay[key] = idx
			groups = append(groups, DayGroup{Date: key})
		}
		groups[idx].Expenses = append(groups[idx].Expenses, exp)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	return groups
}
