package models

import (
	"time"
)

// Vine product statuses. This domain is closed: a product is either still
// awaiting its review or the review is done.
const (
	VineStatusPending   = "pending"
	VineStatusCompleted = "completed"
)

// VineProduct is the model for the 'vine_products' table.
// Nullable columns use pointers for clean JSON serialization.
type VineProduct struct {
	ID             int64      `json:"id" db:"id"`
	ASIN           string     `json:"asin" db:"asin"` // Unique business key
	Name           string     `json:"name" db:"name"`
	ETV            float64    `json:"etv" db:"etv"` // Estimated Taxable Value
	Rating         *int       `json:"rating,omitempty" db:"rating"`
	ReviewDeadline *time.Time `json:"review_deadline,omitempty" db:"review_deadline"`
	Status         string     `json:"status" db:"status"`
	TaxLiability   float64    `json:"tax_liability" db:"tax_liability"` // Derived at creation, never recomputed
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}
