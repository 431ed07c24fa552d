package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vinevault/vinevault-golang/internal/finance"
	"github.com/vinevault/vinevault-golang/internal/models"
)

// CreateInventoryItemInput defines the JSON input for creating an inventory
// item. Only raw inputs are accepted: sale_price, listing_price and
// min_acceptable_price are derived server-side from these.
type CreateInventoryItemInput struct {
	Name                 string   `json:"name" binding:"required"`
	Category             string   `json:"category"`
	Subcategory          string   `json:"subcategory"`
	Source               string   `json:"source"`
	Barcode              string   `json:"barcode"`
	Brand                string   `json:"brand"`
	OriginalPrice        float64  `json:"original_price"`
	CostBasis            float64  `json:"cost_basis"`
	DiscountPercent      *float64 `json:"discount_percent"`
	RecommendedPlatforms []string `json:"recommended_platforms"`
	ListedPlatforms      []string `json:"listed_platforms"`
	Status               string   `json:"status"`
	AcquiredDate         string   `json:"acquired_date"`
	PrimaryPhoto         string   `json:"primary_photo"`
	Notes                string   `json:"notes"`
}

// platformsJSON marshals a platform set for storage. The column holds a JSON
// array string; nil becomes "[]" so reads never see NULL.
func platformsJSON(platforms []string) string {
	if platforms == nil {
		platforms = []string{}
	}
	b, _ := json.Marshal(platforms)
	return string(b)
}

// platformsFromJSON is the inverse of platformsJSON, tolerant of NULL columns.
func platformsFromJSON(raw sql.NullString) []string {
	platforms := []string{}
	if raw.Valid && raw.String != "" {
		_ = json.Unmarshal([]byte(raw.String), &platforms)
	}
	return platforms
}

// GetInventoryItems is the handler for GET /api/inventory.
// Most recent first, capped at 100 rows.
func (h *Handlers) GetInventoryItems(c *gin.Context) {
	query := `
		SELECT id, name, category, subcategory, source, barcode, brand,
		       original_price, cost_basis, discount_percent,
		       sale_price, listing_price, min_acceptable_price,
		       status, recommended_platforms, listed_platforms,
		       profit_margin, net_profit, acquired_date, primary_photo, notes,
		       created_at, updated_at
		FROM inventory_items
		ORDER BY created_at DESC
		LIMIT 100`

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	items := []*models.InventoryItem{}
	for rows.Next() {
		var (
			item         models.InventoryItem
			recommended  sql.NullString
			listed       sql.NullString
			profitMargin sql.NullFloat64
			netProfit    sql.NullFloat64
		)
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&item.Subcategory,
			&item.Source,
			&item.Barcode,
			&item.Brand,
			&item.OriginalPrice,
			&item.CostBasis,
			&item.DiscountPercent,
			&item.SalePrice,
			&item.ListingPrice,
			&item.MinAcceptablePrice,
			&item.Status,
			&recommended,
			&listed,
			&profitMargin,
			&netProfit,
			&item.AcquiredDate,
			&item.PrimaryPhoto,
			&item.Notes,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		item.RecommendedPlatforms = platformsFromJSON(recommended)
		item.ListedPlatforms = platformsFromJSON(listed)
		if profitMargin.Valid {
			item.ProfitMargin = &profitMargin.Float64
		}
		if netProfit.Valid {
			item.NetProfit = &netProfit.Float64
		}
		items = append(items, &item)
	}

	c.JSON(http.StatusOK, items)
}

// CreateInventoryItem is the handler for POST /api/inventory.
func (h *Handlers) CreateInventoryItem(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input CreateInventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Derive Prices Server-Side ---
	// Client-submitted derived values are ignored; the stored record is
	// always internally consistent with its raw inputs.
	var discount *decimal.Decimal
	if input.DiscountPercent != nil {
		d := decimal.NewFromFloat(*input.DiscountPercent)
		discount = &d
	}
	prices, err := finance.DeriveItemPrices(
		decimal.NewFromFloat(input.OriginalPrice),
		decimal.NewFromFloat(input.CostBasis),
		discount,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 3. --- Apply Defaults ---
	now := time.Now()
	item := &models.InventoryItem{
		Name:                 input.Name,
		Category:             input.Category,
		Subcategory:          input.Subcategory,
		Source:               input.Source,
		Barcode:              input.Barcode,
		Brand:                input.Brand,
		OriginalPrice:        input.OriginalPrice,
		CostBasis:            input.CostBasis,
		Status:               input.Status,
		RecommendedPlatforms: input.RecommendedPlatforms,
		ListedPlatforms:      input.ListedPlatforms,
		AcquiredDate:         now,
		PrimaryPhoto:         input.PrimaryPhoto,
		Notes:                input.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if item.Source == "" {
		item.Source = "manual"
	}
	if item.Status == "" {
		item.Status = models.InventoryStatusDraft
	}
	if item.RecommendedPlatforms == nil {
		item.RecommendedPlatforms = []string{}
	}
	if item.ListedPlatforms == nil {
		item.ListedPlatforms = []string{}
	}
	if input.AcquiredDate != "" {
		acquired, err := parseDate(input.AcquiredDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid acquired_date date"})
			return
		}
		item.AcquiredDate = acquired
	}

	item.DiscountPercent, _ = finance.DefaultDiscountPercent.Float64()
	if input.DiscountPercent != nil {
		item.DiscountPercent = *input.DiscountPercent
	}
	item.SalePrice, _ = prices.Sale.Float64()
	item.ListingPrice, _ = prices.Listing.Float64()
	item.MinAcceptablePrice, _ = prices.MinAcceptable.Float64()

	// 4. --- Save to Database ---
	query := `
		INSERT INTO inventory_items
		(name, category, subcategory, source, barcode, brand,
		 original_price, cost_basis, discount_percent,
		 sale_price, listing_price, min_acceptable_price,
		 status, recommended_platforms, listed_platforms,
		 acquired_date, primary_photo, notes, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		item.Name,
		item.Category,
		item.Subcategory,
		item.Source,
		item.Barcode,
		item.Brand,
		item.OriginalPrice,
		item.CostBasis,
		item.DiscountPercent,
		item.SalePrice,
		item.ListingPrice,
		item.MinAcceptablePrice,
		item.Status,
		platformsJSON(item.RecommendedPlatforms),
		platformsJSON(item.ListedPlatforms),
		item.AcquiredDate,
		item.PrimaryPhoto,
		item.Notes,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	item.ID = id

	// 5. --- Send Success Response ---
	c.JSON(http.StatusCreated, item)
}

// UpdateInventoryItemInput defines the JSON input for partial updates.
// Only status and listed platforms are mutable after creation; derived
// financial fields are frozen at creation time.
type UpdateInventoryItemInput struct {
	Status          *string   `json:"status"`
	ListedPlatforms *[]string `json:"listed_platforms"`
}

// UpdateInventoryItem is the handler for PUT /api/inventory/:id.
func (h *Handlers) UpdateInventoryItem(c *gin.Context) {
	itemID := c.Param("id")

	var input UpdateInventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// --- Dynamically Build UPDATE Query ---
	querySet := "updated_at = ?"
	queryArgs := []interface{}{time.Now()}

	if input.Status != nil {
		querySet += ", status = ?"
		queryArgs = append(queryArgs, *input.Status)
	}
	if input.ListedPlatforms != nil {
		querySet += ", listed_platforms = ?"
		queryArgs = append(queryArgs, platformsJSON(*input.ListedPlatforms))
	}

	if len(queryArgs) == 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields provided"})
		return
	}

	queryArgs = append(queryArgs, itemID)
	result, err := h.DB.Exec("UPDATE inventory_items SET "+querySet+" WHERE id = ?", queryArgs...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	changed, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"changed": changed})
}
