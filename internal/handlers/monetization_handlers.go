package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/vinevault/vinevault-golang/internal/models"
)

// CreateMonetizationLinkInput defines the JSON input for creating a link.
// Program/platform/content type are open domains, so presence is all we
// enforce here.
type CreateMonetizationLinkInput struct {
	Program     string `json:"program" binding:"required"`
	Platform    string `json:"platform" binding:"required"`
	Name        string `json:"name" binding:"required"`
	URL         string `json:"url" binding:"required,url"`
	ContentType string `json:"content_type" binding:"required"`
}

// GetMonetizationLinks is the handler for GET /api/monetization/links.
// Highest earners first, capped at 100 rows.
func (h *Handlers) GetMonetizationLinks(c *gin.Context) {
	query := `
		SELECT id, program, platform, name, slug, url, content_type,
		       clicks, conversions, earnings, created_at, updated_at
		FROM monetization_links
		ORDER BY earnings DESC
		LIMIT 100`

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	links := []*models.MonetizationLink{}
	for rows.Next() {
		var link models.MonetizationLink
		if err := rows.Scan(
			&link.ID,
			&link.Program,
			&link.Platform,
			&link.Name,
			&link.Slug,
			&link.URL,
			&link.ContentType,
			&link.Clicks,
			&link.Conversions,
			&link.Earnings,
			&link.CreatedAt,
			&link.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		links = append(links, &link)
	}

	c.JSON(http.StatusOK, links)
}

// CreateMonetizationLink is the handler for POST /api/monetization/links.
func (h *Handlers) CreateMonetizationLink(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input CreateMonetizationLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Create Link Model ---
	now := time.Now()
	link := &models.MonetizationLink{
		Program:     input.Program,
		Platform:    input.Platform,
		Name:        input.Name,
		Slug:        slug.Make(input.Name), // Generate slug from name
		URL:         input.URL,
		ContentType: input.ContentType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 3. --- Save to Database ---
	// Counters start at zero and only move via the update endpoint.
	query := `
		INSERT INTO monetization_links
		(program, platform, name, slug, url, content_type, clicks, conversions, earnings, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, 0, 0, 0, ?, ?)`

	result, err := h.DB.Exec(query,
		link.Program,
		link.Platform,
		link.Name,
		link.Slug,
		link.URL,
		link.ContentType,
		link.CreatedAt,
		link.UpdatedAt,
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
	link.ID = id

	// 4. --- Send Success Response ---
	c.JSON(http.StatusCreated, link)
}

// UpdateMonetizationLinkInput defines the JSON input for counter updates.
type UpdateMonetizationLinkInput struct {
	Clicks      *int64   `json:"clicks" binding:"omitempty,gte=0"`
	Conversions *int64   `json:"conversions" binding:"omitempty,gte=0"`
	Earnings    *float64 `json:"earnings" binding:"omitempty,gte=0"`
}

// UpdateMonetizationLink is the handler for PUT /api/monetization/links/:id.
func (h *Handlers) UpdateMonetizationLink(c *gin.Context) {
	linkID := c.Param("id")

	var input UpdateMonetizationLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// --- Dynamically Build UPDATE Query ---
	querySet := "updated_at = ?"
	queryArgs := []interface{}{time.Now()}

	if input.Clicks != nil {
		querySet += ", clicks = ?"
		queryArgs = append(queryArgs, *input.Clicks)
	}
	if input.Conversions != nil {
		querySet += ", conversions = ?"
		queryArgs = append(queryArgs, *input.Conversions)
	}
	if input.Earnings != nil {
		querySet += ", earnings = ?"
		queryArgs = append(queryArgs, *input.Earnings)
	}

	if len(queryArgs) == 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields provided"})
		return
	}

	queryArgs = append(queryArgs, linkID)
	result, err := h.DB.Exec("UPDATE monetization_links SET "+querySet+" WHERE id = ?", queryArgs...)
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
