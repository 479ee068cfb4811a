package dto

import "strings"

type SubscriptionRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	DueDay int     `json:"due_day"`
	URL    *string `json:"url,omitempty"`
}

func (r *SubscriptionRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if r.Amount < 0 {
		return ErrInvalidAmount
	}
	if r.DueDay < 1 || r.DueDay > 31 {
		return ErrInvalidDueDay
	}
	return nil
}

type SubscriptionResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	DueDay int     `json:"due_day"`
	URL    *string `json:"url,omitempty"`
	DueIn  int     `json:"due_in"`
}
