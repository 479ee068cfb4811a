package models

import (
	"time"

	"github.com/google/uuid"
)

// Budget is a per-category monthly spending ceiling. There is no referential
// integrity between a budget's category and transaction categories: a budget
// may reference a category with no transactions and vice versa.
type Budget struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Category  string    `db:"category"`
	Limit     float64   `db:"monthly_limit"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
