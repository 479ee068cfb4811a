package dto

import (
	"errors"
	"strings"
	"time"
)

// Validation errors shared by the entity request types. Malformed values are
// rejected here, at the request boundary: nothing invalid ever reaches the
// aggregation layer.
var (
	ErrInvalidType     = errors.New("type must be income or expense")
	ErrInvalidAmount   = errors.New("amount must be a non-negative number")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrEmptyCategory   = errors.New("category is required")
	ErrEmptyName       = errors.New("name is required")
	ErrInvalidDueDay   = errors.New("due_day must be between 1 and 31")
	ErrInvalidTarget   = errors.New("target must be a positive number")
	ErrInvalidCurrent  = errors.New("current must be a non-negative number")
	ErrInvalidDeadline = errors.New("deadline must be in YYYY-MM-DD format")
)

const dateLayout = "2006-01-02"

type TransactionRequest struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *TransactionRequest) Validate() error {
	if r.Type != "income" && r.Type != "expense" {
		return ErrInvalidType
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if r.Amount < 0 {
		return ErrInvalidAmount
	}
	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ParsedDate returns the request date as a time.Time. Call Validate first.
func (r *TransactionRequest) ParsedDate() time.Time {
	d, _ := time.Parse(dateLayout, r.Date)
	return d
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
