package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a recurring monthly charge tracked by its due day of
// month (1-31).
type Subscription struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Amount    float64   `db:"amount"`
	DueDay    int       `db:"due_day"`
	URL       *string   `db:"url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
