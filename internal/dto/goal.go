package dto

import (
	"strings"
	"time"
)

type GoalRequest struct {
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Deadline string  `json:"deadline"`
	Icon     string  `json:"icon"`
}

func (r *GoalRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if r.Target <= 0 {
		return ErrInvalidTarget
	}
	if r.Current < 0 {
		return ErrInvalidCurrent
	}
	if _, err := time.Parse(dateLayout, r.Deadline); err != nil {
		return ErrInvalidDeadline
	}
	return nil
}

// ParsedDeadline returns the deadline as a time.Time. Call Validate first.
func (r *GoalRequest) ParsedDeadline() time.Time {
	d, _ := time.Parse(dateLayout, r.Deadline)
	return d
}

type AddFundsRequest struct {
	Amount float64 `json:"amount"`
}

func (r *AddFundsRequest) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

type GoalResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Target     float64 `json:"target"`
	Current    float64 `json:"current"`
	Deadline   string  `json:"deadline"`
	Icon       string  `json:"icon"`
	Percentage float64 `json:"percentage"`
	DaysLeft   int     `json:"days_left"`
	Overdue    bool    `json:"overdue"`
	Completed  bool    `json:"completed"`
}
