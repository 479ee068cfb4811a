package dto

import "fintracker/internal/summary"

// SummaryResponse is the full dashboard snapshot: every figure is recomputed
// from the raw entity lists on each request, nothing is persisted.
type SummaryResponse struct {
	Totals             summary.Totals         `json:"totals"`
	ExpensesByCategory map[string]float64     `json:"expenses_by_category"`
	IncomeByCategory   map[string]float64     `json:"income_by_category"`
	MonthlyTrend       []summary.MonthBucket  `json:"monthly_trend"`
	Budgets            []BudgetResponse       `json:"budgets"`
	Goals              []GoalResponse         `json:"goals"`
	Subscriptions      []SubscriptionResponse `json:"subscriptions"`
	Insights           []summary.Insight      `json:"insights"`
}
