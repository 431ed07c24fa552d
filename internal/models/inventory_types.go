package models

import (
	"time"
)

// Common inventory statuses. The domain is open-ended (new statuses may
// appear), so these are conventions rather than a closed enum.
const (
	InventoryStatusDraft  = "draft"
	InventoryStatusListed = "listed"
	InventoryStatusSold   = "sold"
)

// InventoryItem is the model for the 'inventory_items' table.
//
// sale_price, listing_price and min_acceptable_price are derived server-side
// from original_price, cost_basis and discount_percent at creation time.
// profit_margin and net_profit have no formula yet; they stay NULL until set
// externally.
type InventoryItem struct {
	ID                   int64     `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name"`
	Category             string    `json:"category" db:"category"`
	Subcategory          string    `json:"subcategory" db:"subcategory"`
	Source               string    `json:"source" db:"source"` // Free text, defaults to "manual"
	Barcode              string    `json:"barcode" db:"barcode"`
	Brand                string    `json:"brand" db:"brand"`
	OriginalPrice        float64   `json:"original_price" db:"original_price"`
	CostBasis            float64   `json:"cost_basis" db:"cost_basis"`
	DiscountPercent      float64   `json:"discount_percent" db:"discount_percent"`
	SalePrice            float64   `json:"sale_price" db:"sale_price"`
	ListingPrice         float64   `json:"listing_price" db:"listing_price"`
	MinAcceptablePrice   float64   `json:"min_acceptable_price" db:"min_acceptable_price"`
	Status               string    `json:"status" db:"status"`
	RecommendedPlatforms []string  `json:"recommended_platforms"`            // Stored as a JSON string in the DB
	ListedPlatforms      []string  `json:"listed_platforms"`                 // Stored as a JSON string in the DB
	ProfitMargin         *float64  `json:"profit_margin" db:"profit_margin"` // Percentage, NULL until sold
	NetProfit            *float64  `json:"net_profit" db:"net_profit"`       // NULL until sold
	AcquiredDate         time.Time `json:"acquired_date" db:"acquired_date"`
	PrimaryPhoto         string    `json:"primary_photo" db:"primary_photo"`
	Notes                string    `json:"notes" db:"notes"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}
