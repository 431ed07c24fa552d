package models

import (
	"time"
)

// MonetizationLink is the model for the 'monetization_links' table.
// Program, platform and content type are validated open strings: new
// affiliate programs and platforms appear regularly.
type MonetizationLink struct {
	ID          int64     `json:"id" db:"id"`
	Program     string    `json:"program" db:"program"`   // e.g. Amazon Associates, ClickBank
	Platform    string    `json:"platform" db:"platform"` // e.g. TikTok, YouTube, Blog
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"` // URL-safe identifier generated from name
	URL         string    `json:"url" db:"url"`
	ContentType string    `json:"content_type" db:"content_type"` // e.g. Video, Post, Review
	Clicks      int64     `json:"clicks" db:"clicks"`
	Conversions int64     `json:"conversions" db:"conversions"`
	Earnings    float64   `json:"earnings" db:"earnings"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
