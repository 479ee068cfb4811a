package dto

import "testing"

func TestTransactionRequest_Validate(t *testing.T) {
	valid := TransactionRequest{Type: "expense", Category: "Food", Amount: 40, Date: "2024-01-10"}

	tests := []struct {
		name    string
		mutate  func(r *TransactionRequest)
		wantErr error
	}{
		{"valid", func(r *TransactionRequest) {}, nil},
		{"valid income", func(r *TransactionRequest) { r.Type = "income" }, nil},
		{"bad type", func(r *TransactionRequest) { r.Type = "transfer" }, ErrInvalidType},
		{"negative amount", func(r *TransactionRequest) { r.Amount = -5 }, ErrInvalidAmount},
		{"blank category", func(r *TransactionRequest) { r.Category = "  " }, ErrEmptyCategory},
		{"bad date", func(r *TransactionRequest) { r.Date = "10/01/2024" }, ErrInvalidDate},
		{"empty date", func(r *TransactionRequest) { r.Date = "" }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			if err := r.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBudgetRequest_Validate(t *testing.T) {
	if err := (&BudgetRequest{Category: "Food", Limit: 50}).Validate(); err != nil {
		t.Errorf("valid budget rejected: %v", err)
	}
	if err := (&BudgetRequest{Category: "Food", Limit: 0}).Validate(); err != nil {
		t.Errorf("zero limit should be accepted: %v", err)
	}
	if err := (&BudgetRequest{Category: "", Limit: 50}).Validate(); err != ErrEmptyCategory {
		t.Errorf("Validate() = %v, want ErrEmptyCategory", err)
	}
	if err := (&BudgetRequest{Category: "Food", Limit: -1}).Validate(); err != ErrInvalidAmount {
		t.Errorf("Validate() = %v, want ErrInvalidAmount", err)
	}
}

func TestGoalRequest_Validate(t *testing.T) {
	valid := GoalRequest{Name: "Vacation", Target: 1000, Current: 0, Deadline: "2025-06-01", Icon: "plane"}

	tests := []struct {
		name    string
		mutate  func(r *GoalRequest)
		wantErr error
	}{
		{"valid", func(r *GoalRequest) {}, nil},
		{"blank name", func(r *GoalRequest) { r.Name = "" }, ErrEmptyName},
		{"zero target", func(r *GoalRequest) { r.Target = 0 }, ErrInvalidTarget},
		{"negative current", func(r *GoalRequest) { r.Current = -1 }, ErrInvalidCurrent},
		{"bad deadline", func(r *GoalRequest) { r.Deadline = "soon" }, ErrInvalidDeadline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			if err := r.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubscriptionRequest_Validate(t *testing.T) {
	valid := SubscriptionRequest{Name: "Netflix", Amount: 15, DueDay: 12}

	tests := []struct {
		name    string
		mutate  func(r *SubscriptionRequest)
		wantErr error
	}{
		{"valid", func(r *SubscriptionRequest) {}, nil},
		{"due day lower bound", func(r *SubscriptionRequest) { r.DueDay = 1 }, nil},
		{"due day upper bound", func(r *SubscriptionRequest) { r.DueDay = 31 }, nil},
		{"blank name", func(r *SubscriptionRequest) { r.Name = " " }, ErrEmptyName},
		{"due day zero", func(r *SubscriptionRequest) { r.DueDay = 0 }, ErrInvalidDueDay},
		{"due day too high", func(r *SubscriptionRequest) { r.DueDay = 32 }, ErrInvalidDueDay},
		{"negative amount", func(r *SubscriptionRequest) { r.Amount = -2 }, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			if err := r.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddFundsRequest_Validate(t *testing.T) {
	if err := (&AddFundsRequest{Amount: 100}).Validate(); err != nil {
		t.Errorf("valid amount rejected: %v", err)
	}
	if err := (&AddFundsRequest{Amount: 0}).Validate(); err != ErrInvalidAmount {
		t.Errorf("Validate() = %v, want ErrInvalidAmount", err)
	}
	if err := (&AddFundsRequest{Amount: -10}).Validate(); err != ErrInvalidAmount {
		t.Errorf("Validate() = %v, want ErrInvalidAmount", err)
	}
}
