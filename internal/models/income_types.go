package models

import (
	"time"
)

// IncomeEvent is the model for the 'income_events' table.
// Amount is signed: refunds and fees come through as negative events.
type IncomeEvent struct {
	ID          int64     `json:"id" db:"id"`
	EventDate   time.Time `json:"event_date" db:"event_date"`
	Source      string    `json:"source" db:"source"` // Free text, correlates with program/category
	Description string    `json:"description" db:"description"`
	Amount      float64   `json:"amount" db:"amount"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
