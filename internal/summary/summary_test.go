package summary

import (
	"math"
	"testing"
	"time"

	"fintracker/internal/models"
)

func tx(typ models.TransactionType, category string, amount float64, date string) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{Type: typ, Category: category, Amount: amount, Date: d}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalcTotals(t *testing.T) {
	txns := []models.Transaction{
		tx(models.TypeIncome, "Salary", 100, "2024-01-05"),
		tx(models.TypeExpense, "Food", 40, "2024-01-10"),
	}

	got := CalcTotals(txns)
	if !almostEqual(got.Income, 100) || !almostEqual(got.Expenses, 40) || !almostEqual(got.Balance, 60) {
		t.Errorf("CalcTotals() = %+v, want income=100 expenses=40 balance=60", got)
	}
}

func TestCalcTotals_Empty(t *testing.T) {
	got := CalcTotals(nil)
	if got.Income != 0 || got.Expenses != 0 || got.Balance != 0 {
		t.Errorf("CalcTotals(nil) = %+v, want all zeros", got)
	}
}

func TestCalcTotals_BalanceIdentity(t *testing.T) {
	txns := []models.Transaction{
		tx(models.TypeIncome, "Salary", 1200.50, "2024-02-01"),
		tx(models.TypeIncome, "Investment", 45.25, "2024-02-10"),
		tx(models.TypeExpense, "Food", 150.75, "2024-02-12"),
		tx(models.TypeExpense, "Health", 50, "2024-02-20"),
		tx(models.TypeExpense, "Entertainment", 15, "2024-03-01"),
	}

	got := CalcTotals(txns)
	if !almostEqual(got.Balance, got.Income-got.Expenses) {
		t.Errorf("balance %v != income %v - expenses %v", got.Balance, got.Income, got.Expenses)
	}
}

func TestCategoryTotals(t *testing.T) {
	txns := []models.Transaction{
		tx(models.TypeIncome, "Salary", 100, "2024-01-05"),
		tx(models.TypeExpense, "Food", 40, "2024-01-10"),
		tx(models.TypeExpense, "Food", 10, "2024-01-12"),
		tx(models.TypeExpense, "Transport", 5, "2024-01-13"),
	}

	got := CategoryTotals(txns, models.TypeExpense)
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2", len(got))
	}
	if !almostEqual(got["Food"], 50) {
		t.Errorf("Food = %v, want 50", got["Food"])
	}
	if !almostEqual(got["Transport"], 5) {
		t.Errorf("Transport = %v, want 5", got["Transport"])
	}
}

func TestCategoryTotals_SumMatchesTotals(t *testing.T) {
	txns := []models.Transaction{
		tx(models.TypeIncome, "Salary", 1200, "2024-01-01"),
		tx(models.TypeExpense, "Food", 150, "2024-01-02"),
		tx(models.TypeExpense, "Transport", 60, "2024-01-03"),
		tx(models.TypeExpense, "Food", 90, "2024-01-04"),
		tx(models.TypeExpense, "Health", 50, "2024-01-05"),
	}

	var sum float64
	for _, v := range CategoryTotals(txns, models.TypeExpense) {
		sum += v
	}
	if totals := CalcTotals(txns); !almostEqual(sum, totals.Expenses) {
		t.Errorf("category sum %v != total expenses %v", sum, totals.Expenses)
	}
}

func TestMonthlyTotals(t *testing.T) {
	txns := []models.Transaction{
		tx(models.TypeExpense, "Food", 30, "2024-02-10"),
		tx(models.TypeIncome, "Salary", 100, "2024-01-05"),
		tx(models.TypeExpense, "Food", 20, "2024-01-20"),
		tx(models.TypeIncome, "Salary", 100, "2024-02-05"),
		tx(models.TypeIncome, "Salary", 100, "2024-03-05"),
	}

	got := MonthlyTotals(txns)
	if len(got) != 3 {
		t.Fatalf("got %d buckets, want 3", len(got))
	}
	want := []MonthBucket{
		{Month: "2024-01", Income: 100, Expense: 20},
		{Month: "2024-02", Income: 100, Expense: 30},
		{Month: "2024-03", Income: 100, Expense: 0},
	}
	for i, w := range want {
		if got[i].Month != w.Month || !almostEqual(got[i].Income, w.Income) || !almostEqual(got[i].Expense, w.Expense) {
			t.Errorf("bucket %d = %+v, want %+v", i, got[i], w)
		}
	}
}

func TestMonthlyTotals_TruncatesToSixMostRecent(t *testing.T) {
	var txns []models.Transaction
	months := []string{"2023-08", "2023-09", "2023-10", "2023-11", "2023-12", "2024-01", "2024-02", "2024-03"}
	for _, m := range months {
		txns = append(txns, tx(models.TypeExpense, "Food", 10, m+"-15"))
	}

	got := MonthlyTotals(txns)
	if len(got) != TrendMonths {
		t.Fatalf("got %d buckets, want %d", len(got), TrendMonths)
	}
	if got[0].Month != "2023-10" {
		t.Errorf("oldest kept bucket = %s, want 2023-10", got[0].Month)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Month <= got[i-1].Month {
			t.Errorf("buckets not strictly ascending: %s after %s", got[i].Month, got[i-1].Month)
		}
	}
}

func TestCalcBudgetStatus(t *testing.T) {
	tests := []struct {
		name       string
		limit      float64
		spent      map[string]float64
		wantSpent  float64
		wantRemain float64
		wantPct    float64
		wantStatus BudgetState
	}{
		{
			name:       "warning at 80 percent",
			limit:      50,
			spent:      map[string]float64{"Food": 40},
			wantSpent:  40,
			wantRemain: 10,
			wantPct:    80,
			wantStatus: BudgetWarning,
		},
		{
			name:       "good below threshold",
			limit:      100,
			spent:      map[string]float64{"Food": 30},
			wantSpent:  30,
			wantRemain: 70,
			wantPct:    30,
			wantStatus: BudgetGood,
		},
		{
			name:       "over limit clamps percentage",
			limit:      50,
			spent:      map[string]float64{"Food": 120},
			wantSpent:  120,
			wantRemain: 0,
			wantPct:    100,
			wantStatus: BudgetOver,
		},
		{
			name:       "no transactions for category",
			limit:      50,
			spent:      map[string]float64{},
			wantSpent:  0,
			wantRemain: 50,
			wantPct:    0,
			wantStatus: BudgetGood,
		},
		{
			name:       "zero limit with spending",
			limit:      0,
			spent:      map[string]float64{"Food": 10},
			wantSpent:  10,
			wantRemain: 0,
			wantPct:    100,
			wantStatus: BudgetOver,
		},
		{
			name:       "zero limit without spending",
			limit:      0,
			spent:      map[string]float64{},
			wantSpent:  0,
			wantRemain: 0,
			wantPct:    0,
			wantStatus: BudgetGood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := models.Budget{Category: "Food", Limit: tt.limit}
			got := CalcBudgetStatus(b, tt.spent)
			if !almostEqual(got.Spent, tt.wantSpent) {
				t.Errorf("Spent = %v, want %v", got.Spent, tt.wantSpent)
			}
			if !almostEqual(got.Remaining, tt.wantRemain) {
				t.Errorf("Remaining = %v, want %v", got.Remaining, tt.wantRemain)
			}
			if !almostEqual(got.Percentage, tt.wantPct) {
				t.Errorf("Percentage = %v, want %v", got.Percentage, tt.wantPct)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", got.Status, tt.wantStatus)
			}
			if got.Percentage < 0 || got.Percentage > 100 {
				t.Errorf("Percentage %v outside [0, 100]", got.Percentage)
			}
		})
	}
}

func TestCalcGoalProgress(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		goal          models.Goal
		wantPct       float64
		wantDaysLeft  int
		wantOverdue   bool
		wantCompleted bool
	}{
		{
			name:         "halfway there",
			goal:         models.Goal{Target: 1000, Current: 500, Deadline: time.Date(2024, 6, 25, 0, 0, 0, 0, time.UTC)},
			wantPct:      50,
			wantDaysLeft: 10,
		},
		{
			name:          "completed and clamped",
			goal:          models.Goal{Target: 1000, Current: 1200, Deadline: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
			wantPct:       100,
			wantDaysLeft:  16,
			wantCompleted: true,
		},
		{
			name:         "overdue",
			goal:         models.Goal{Target: 1000, Current: 300, Deadline: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
			wantPct:      30,
			wantDaysLeft: -5,
			wantOverdue:  true,
		},
		{
			name:          "zero target reads as zero percent",
			goal:          models.Goal{Target: 0, Current: 50, Deadline: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
			wantPct:       0,
			wantDaysLeft:  16,
			wantCompleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcGoalProgress(tt.goal, today)
			if !almostEqual(got.Percentage, tt.wantPct) {
				t.Errorf("Percentage = %v, want %v", got.Percentage, tt.wantPct)
			}
			if got.DaysLeft != tt.wantDaysLeft {
				t.Errorf("DaysLeft = %v, want %v", got.DaysLeft, tt.wantDaysLeft)
			}
			if got.Overdue != tt.wantOverdue {
				t.Errorf("Overdue = %v, want %v", got.Overdue, tt.wantOverdue)
			}
			if got.Completed != tt.wantCompleted {
				t.Errorf("Completed = %v, want %v", got.Completed, tt.wantCompleted)
			}
			if got.Percentage < 0 || got.Percentage > 100 {
				t.Errorf("Percentage %v outside [0, 100]", got.Percentage)
			}
		})
	}
}

func TestApplyContribution(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		amount          float64
		want            float64
	}{
		{"plain add", 100, 1000, 50, 150},
		{"exact fill", 950, 1000, 50, 1000},
		{"clamps to target", 950, 1000, 100, 1000},
		{"already at target", 1000, 1000, 25, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyContribution(tt.current, tt.target, tt.amount); !almostEqual(got, tt.want) {
				t.Errorf("ApplyContribution(%v, %v, %v) = %v, want %v", tt.current, tt.target, tt.amount, got, tt.want)
			}
		})
	}
}

func TestDueInDays(t *testing.T) {
	tests := []struct {
		name   string
		dueDay int
		today  time.Time
		want   int
	}{
		{"due today", 15, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), 0},
		{"later this month", 20, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), 5},
		{"wraps into next month", 5, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), 20},
		{"wrap uses 31-day month", 2, time.Date(2024, 7, 30, 0, 0, 0, 0, time.UTC), 3},
		{"wrap across leap february", 1, time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), 2},
		{"wrap across plain february", 1, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DueInDays(tt.dueDay, tt.today); got != tt.want {
				t.Errorf("DueInDays(%d, %s) = %d, want %d", tt.dueDay, tt.today.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestInsights(t *testing.T) {
	txns := []models.Transaction{
		tx(models.TypeIncome, "Salary", 1000, "2024-01-01"),
		tx(models.TypeExpense, "Food", 300, "2024-01-05"),
		tx(models.TypeExpense, "Transport", 100, "2024-01-06"),
	}

	got := Insights(txns)
	if len(got) != 2 {
		t.Fatalf("got %d insights, want 2", len(got))
	}
	if got[0].Type != InsightWarning {
		t.Errorf("first insight type = %v, want warning", got[0].Type)
	}
	if got[1].Type != InsightSuccess {
		t.Errorf("second insight type = %v, want success", got[1].Type)
	}
}

func TestInsights_Empty(t *testing.T) {
	if got := Insights(nil); len(got) != 0 {
		t.Errorf("Insights(nil) = %v, want empty", got)
	}
}

func TestPureFunctionsDoNotMutateInput(t *testing.T) {
	txns := []models.Transaction{
		tx(models.TypeIncome, "Salary", 100, "2024-01-05"),
		tx(models.TypeExpense, "Food", 40, "2024-01-10"),
	}
	original := make([]models.Transaction, len(txns))
	copy(original, txns)

	CalcTotals(txns)
	CategoryTotals(txns, models.TypeExpense)
	MonthlyTotals(txns)
	Insights(txns)

	for i := range txns {
		if txns[i] != original[i] {
			t.Fatalf("input transaction %d mutated: %+v", i, txns[i])
		}
	}
}
