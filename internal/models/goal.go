package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a savings target with a deadline and running current amount.
// Current is clamped to never exceed Target when funds are added.
type Goal struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Target    float64   `db:"target"`
	Current   float64   `db:"current"`
	Deadline  time.Time `db:"deadline"`
	Icon      string    `db:"icon"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
