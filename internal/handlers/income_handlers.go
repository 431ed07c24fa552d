package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vinevault/vinevault-golang/internal/models"
)

// CreateIncomeEventInput defines the JSON input for recording income.
// Amount is signed: refunds come through as negative events.
type CreateIncomeEventInput struct {
	Source      string  `json:"source" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	EventDate   string  `json:"event_date"`
}

// CreateIncomeEvent is the handler for POST /api/income-events.
func (h *Handlers) CreateIncomeEvent(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input CreateIncomeEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Create Event Model ---
	now := time.Now()
	event := &models.IncomeEvent{
		EventDate:   now, // Defaults to now when the client omits it
		Source:      input.Source,
		Description: input.Description,
		Amount:      input.Amount,
		CreatedAt:   now,
	}
	if input.EventDate != "" {
		eventDate, err := parseDate(input.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_date date"})
			return
		}
		event.EventDate = eventDate
	}

	// 3. --- Save to Database ---
	query := `
		INSERT INTO income_events
		(event_date, source, description, amount, created_at)
		VALUES
		(?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		event.EventDate,
		event.Source,
		event.Description,
		event.Amount,
		event.CreatedAt,
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
	event.ID = id

	// 4. --- Send Success Response ---
	c.JSON(http.StatusCreated, event)
}

// GetIncomeEvents is the handler for GET /api/income-events.
// Most recent event first.
func (h *Handlers) GetIncomeEvents(c *gin.Context) {
	query := `
		SELECT id, event_date, source, description, amount, created_at
		FROM income_events
		ORDER BY event_date DESC`

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	events := []*models.IncomeEvent{}
	for rows.Next() {
		var event models.IncomeEvent
		if err := rows.Scan(
			&event.ID,
			&event.EventDate,
			&event.Source,
			&event.Description,
			&event.Amount,
			&event.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		events = append(events, &event)
	}

	c.JSON(http.StatusOK, events)
}
