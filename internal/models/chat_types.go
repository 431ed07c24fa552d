package models

import (
	"time"
)

// ChatExchange is the model for the 'ai_chat_history' table.
// One row per successful assistant generation.
type ChatExchange struct {
	ID         int64     `json:"id" db:"id"`
	Prompt     string    `json:"prompt" db:"prompt"`
	Response   string    `json:"response" db:"response"`
	DurationMs int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
