package summary

import (
	"fmt"

	"fintracker/internal/models"
)

type InsightType string

const (
	InsightWarning InsightType = "warning"
	InsightSuccess InsightType = "success"
)

type Insight struct {
	Type    InsightType `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// Insights derives rule-based guidance from the transaction list: an alert
// for the heaviest spending category and a note on the current savings rate.
// Returns an empty slice when there is nothing to say.
func Insights(txns []models.Transaction) []Insight {
	insights := []Insight{}
	if len(txns) == 0 {
		return insights
	}

	expenseTotals := CategoryTotals(txns, models.TypeExpense)
	var maxCategory string
	var maxAmount float64
	for cat, amount := range expenseTotals {
		if amount > maxAmount || (amount == maxAmount && maxCategory != "" && cat < maxCategory) {
			maxAmount = amount
			maxCategory = cat
		}
	}

	if maxCategory != "" {
		insights = append(insights, Insight{
			Type:    InsightWarning,
			Title:   "Spending Alert",
			Message: fmt.Sprintf("Your highest spending is on %s (%.0f). Consider setting a budget.", maxCategory, maxAmount),
		})
	}

	totals := CalcTotals(txns)
	if totals.Income > 0 {
		rate := totals.Balance / totals.Income * 100
		if rate < 0 {
			rate = 0
		}
		insights = append(insights, Insight{
			Type:    InsightSuccess,
			Title:   "Smart Projection",
			Message: fmt.Sprintf("You are keeping %.0f%% of your income this period.", rate),
		})
	}

	return insights
}
