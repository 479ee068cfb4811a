// Package summary is the aggregation engine: pure, side-effect-free
// transformations from raw entity lists to display-ready figures. Inputs are
// never mutated and every function is safe to call with empty slices.
//
// Callers are expected to pass validated data; amounts are rejected at the
// request boundary, so by the time they reach this package they are plain
// non-negative float64 values.
package summary

import (
	"time"

	"fintracker/internal/models"
)

// TrendMonths is the number of most recent monthly buckets kept for the
// activity trend chart.
const TrendMonths = 6

type Totals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// CalcTotals sums income and expense amounts over the full transaction list.
// An empty list yields all-zero totals.
func CalcTotals(txns []models.Transaction) Totals {
	var t Totals
	for _, tx := range txns {
		switch tx.Type {
		case models.TypeIncome:
			t.Income += tx.Amount
		case models.TypeExpense:
			t.Expenses += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expenses
	return t
}

// CategoryTotals returns per-category sums for transactions of the given
// type. Map iteration order is unspecified; display ordering is the caller's
// concern.
func CategoryTotals(txns []models.Transaction, typ models.TransactionType) map[string]float64 {
	totals := make(map[string]float64)
	for _, tx := range txns {
		if tx.Type != typ {
			continue
		}
		totals[tx.Category] += tx.Amount
	}
	return totals
}

type MonthBucket struct {
	Month   string  `json:"month"` // YYYY-MM
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MonthlyTotals buckets transactions by calendar month, ascending by month
// key, truncated to the most recent TrendMonths entries. A month present in
// the data always carries both sides, with 0 for the side that had no
// transactions.
func MonthlyTotals(txns []models.Transaction) []MonthBucket {
	byMonth := make(map[string]*MonthBucket)
	for _, tx := range txns {
		key := tx.Date.Format("2006-01")
		bucket, ok := byMonth[key]
		if !ok {
			bucket = &MonthBucket{Month: key}
			byMonth[key] = bucket
		}
		if tx.Type == models.TypeIncome {
			bucket.Income += tx.Amount
		} else {
			bucket.Expense += tx.Amount
		}
	}

	buckets := make([]MonthBucket, 0, len(byMonth))
	for _, b := range byMonth {
		buckets = append(buckets, *b)
	}
	sortBuckets(buckets)

	if len(buckets) > TrendMonths {
		buckets = buckets[len(buckets)-TrendMonths:]
	}
	return buckets
}

// sortBuckets orders buckets ascending by month key. YYYY-MM keys compare
// correctly as strings.
func sortBuckets(buckets []MonthBucket) {
	for i := 1; i < len(buckets); i++ {
		for j := i; j > 0 && buckets[j].Month < buckets[j-1].Month; j-- {
			buckets[j], buckets[j-1] = buckets[j-1], buckets[j]
		}
	}
}

type BudgetState string

const (
	BudgetOver    BudgetState = "over"
	BudgetWarning BudgetState = "warning"
	BudgetGood    BudgetState = "good"
)

type BudgetStatus struct {
	Spent      float64     `json:"spent"`
	Remaining  float64     `json:"remaining"`
	Percentage float64     `json:"percentage"`
	Status     BudgetState `json:"status"`
}

// CalcBudgetStatus evaluates one budget against the expense totals in
// spentByCategory (as returned by CategoryTotals with TypeExpense). The
// percentage is clamped to [0, 100]. A zero limit never divides: any spending
// against it reads as fully consumed, otherwise the budget is untouched.
func CalcBudgetStatus(b models.Budget, spentByCategory map[string]float64) BudgetStatus {
	spent := spentByCategory[b.Category]

	var percentage float64
	if b.Limit > 0 {
		percentage = spent / b.Limit * 100
		if percentage > 100 {
			percentage = 100
		}
	} else if spent > 0 {
		percentage = 100
	}

	remaining := b.Limit - spent
	if remaining < 0 {
		remaining = 0
	}

	status := BudgetGood
	switch {
	case percentage >= 100:
		status = BudgetOver
	case percentage >= 80:
		status = BudgetWarning
	}

	return BudgetStatus{
		Spent:      spent,
		Remaining:  remaining,
		Percentage: percentage,
		Status:     status,
	}
}

type GoalProgress struct {
	Percentage float64 `json:"percentage"`
	DaysLeft   int     `json:"days_left"`
	Overdue    bool    `json:"overdue"`
	Completed  bool    `json:"completed"`
}

// CalcGoalProgress reports progress toward a savings goal as of today.
// Percentage is clamped to [0, 100] and a non-positive target reads as 0.
// DaysLeft is the whole-day distance to the deadline, negative once past.
func CalcGoalProgress(g models.Goal, today time.Time) GoalProgress {
	var percentage float64
	if g.Target > 0 {
		percentage = g.Current / g.Target * 100
		if percentage > 100 {
			percentage = 100
		}
	}

	daysLeft := daysBetween(today, g.Deadline)

	return GoalProgress{
		Percentage: percentage,
		DaysLeft:   daysLeft,
		Overdue:    daysLeft < 0,
		Completed:  g.Current >= g.Target,
	}
}

// ApplyContribution adds amount to a goal's current value, clamped so the
// result never exceeds target.
func ApplyContribution(current, target, amount float64) float64 {
	next := current + amount
	if next > target {
		return target
	}
	return next
}

// DueInDays returns the number of days until the next occurrence of a
// subscription's due day of month. A due day equal to today's returns 0; a
// due day already past this month wraps into next month using the actual
// length of the current month.
func DueInDays(dueDay int, today time.Time) int {
	day := today.Day()
	if dueDay >= day {
		return dueDay - day
	}
	return daysInMonth(today) - day + dueDay
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// daysBetween returns whole calendar days from a to b, ignoring the time of
// day on either side.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
