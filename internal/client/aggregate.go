package client

import (
	"time"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

// Summary holds the derived aggregates for an expense list. Nothing in
// here is stored anywhere: a Summary is always recomputed from the raw
// list, so two calls over the same list are guaranteed to agree.
type Summary struct {
	// Total is the sum over every record.
	Total float64
	// Weekly sums records dated within the trailing 7 days.
	Weekly float64
	// Monthly sums records dated within the trailing month.
	Monthly float64
	// ByCategory sums per category; the values always add up to Total.
	ByCategory map[domain.ExpenseCategory]float64
	// NetProfit is the fixed monthly-earnings figure minus Monthly.
	NetProfit float64
}

// Summarize computes the derived aggregates over expenses as of now.
// The trailing windows follow the calendar (AddDate), matching how the
// dashboard's month boundary behaves, not a fixed number of hours.
func Summarize(expenses []domain.Expense, now time.Time) Summary {
	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, -1, 0)

	s := Summary{ByCategory: make(map[domain.ExpenseCategory]float64)}
	for _, e := range expenses {
		s.Total += e.Amount
		s.ByCategory[e.Category] += e.Amount
		if !e.Date.Before(weekStart) {
			s.Weekly += e.Amount
		}
		if !e.Date.Before(monthStart) {
			s.Monthly += e.Amount
		}
	}
	s.NetProfit = domain.MonthlyEarnings - s.Monthly
	return s
}
