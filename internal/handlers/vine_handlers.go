package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vinevault/vinevault-golang/internal/finance"
	"github.com/vinevault/vinevault-golang/internal/models"
)

// CreateVineProductInput defines the JSON input for creating a Vine product.
// Only raw inputs are accepted; tax_liability is derived server-side.
type CreateVineProductInput struct {
	ASIN           string  `json:"asin" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	ETV            float64 `json:"etv" binding:"required"`
	Rating         *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	ReviewDeadline string  `json:"review_deadline"`
}

// GetVineProducts is the handler for GET /api/vine.
// Products are ordered by review deadline so the most urgent review is first.
func (h *Handlers) GetVineProducts(c *gin.Context) {
	query := `
		SELECT id, asin, name, etv, rating, review_deadline, status, tax_liability, created_at, updated_at
		FROM vine_products
		ORDER BY review_deadline ASC`

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	products := []*models.VineProduct{}
	for rows.Next() {
		var (
			p        models.VineProduct
			rating   sql.NullInt64
			deadline sql.NullTime
		)
		if err := rows.Scan(
			&p.ID,
			&p.ASIN,
			&p.Name,
			&p.ETV,
			&rating,
			&deadline,
			&p.Status,
			&p.TaxLiability,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if rating.Valid {
			r := int(rating.Int64)
			p.Rating = &r
		}
		if deadline.Valid {
			d := deadline.Time
			p.ReviewDeadline = &d
		}
		products = append(products, &p)
	}

	c.JSON(http.StatusOK, products)
}

// CreateVineProduct is the handler for POST /api/vine.
func (h *Handlers) CreateVineProduct(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input CreateVineProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ASIN, name, and ETV required"})
		return
	}

	// 2. --- Derive Tax Liability ---
	// Fixed 25% of ETV, computed once here. The stored value is never
	// recomputed even if a later migration changes the rate.
	tax, err := finance.TaxLiability(decimal.NewFromFloat(input.ETV))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var deadline *time.Time
	if input.ReviewDeadline != "" {
		d, err := parseDate(input.ReviewDeadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review_deadline date"})
			return
		}
		deadline = &d
	}

	// 3. --- Save to Database ---
	now := time.Now()
	query := `
		INSERT INTO vine_products
		(asin, name, etv, rating, review_deadline, status, tax_liability, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?)`

	taxLiability, _ := tax.Float64()
	result, err := h.DB.Exec(query,
		input.ASIN,
		input.Name,
		input.ETV,
		input.Rating,
		deadline,
		models.VineStatusPending,
		taxLiability,
		now,
		now,
	)
	if err != nil {
		// A duplicate ASIN is a client-correctable conflict, not a server fault.
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Product already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 4. --- Send Success Response ---
	c.JSON(http.StatusCreated, gin.H{
		"id":            id,
		"tax_liability": taxLiability,
	})
}

// UpdateVineProductInput defines the JSON input for partial updates.
// Absent fields are left untouched.
type UpdateVineProductInput struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending completed"`
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// UpdateVineProduct is the handler for PUT /api/vine/:id.
func (h *Handlers) UpdateVineProduct(c *gin.Context) {
	productID := c.Param("id")

	var input UpdateVineProductInput
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
	if input.Rating != nil {
		querySet += ", rating = ?"
		queryArgs = append(queryArgs, *input.Rating)
	}

	if len(queryArgs) == 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields provided"})
		return
	}

	queryArgs = append(queryArgs, productID)
	result, err := h.DB.Exec("UPDATE vine_products SET "+querySet+" WHERE id = ?", queryArgs...)
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
