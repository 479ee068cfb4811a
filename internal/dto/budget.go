package dto

import "strings"

type BudgetRequest struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

func (r *BudgetRequest) Validate() error {
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if r.Limit < 0 {
		return ErrInvalidAmount
	}
	return nil
}

type BudgetResponse struct {
	ID         string  `json:"id"`
	Category   string  `json:"category"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}
