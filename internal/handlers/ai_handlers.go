package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vinevault/vinevault-golang/internal/models"
)

// GenerateInput defines the structure of the JSON request body.
type GenerateInput struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateAIResponse is the handler for POST /api/ai/generate.
// A pure passthrough: the prompt goes to the generation service and its text
// comes back verbatim.
func (h *Handlers) GenerateAIResponse(c *gin.Context) {
	// 1. --- Parse Input ---
	var input GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt required"})
		return
	}

	// 2. --- Call the Generation Service ---
	start := time.Now()
	text, err := h.AIService.GenerateResponse(c.Request.Context(), input.Prompt)
	if err != nil {
		// Backend failures are a dedicated outcome, distinct from storage
		// errors: the rest of the system keeps working without the assistant.
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "AI service unavailable. Is Ollama running?",
			"details": err.Error(),
		})
		return
	}

	// 3. --- Save to History ---
	// Best effort: the user already has their answer, so a failed insert is
	// logged and swallowed.
	query := `
		INSERT INTO ai_chat_history (prompt, response, duration_ms, created_at)
		VALUES (?, ?, ?, ?)`
	if _, dbErr := h.DB.Exec(query, input.Prompt, text, time.Since(start).Milliseconds(), time.Now()); dbErr != nil {
		log.Printf("Warning: failed to save chat history: %v", dbErr)
	}

	// 4. --- Return the Answer ---
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// GetAIHistory is the handler for GET /api/ai/history.
// Recent exchanges, newest first.
func (h *Handlers) GetAIHistory(c *gin.Context) {
	query := `
		SELECT id, prompt, response, duration_ms, created_at
		FROM ai_chat_history
		ORDER BY created_at DESC
		LIMIT 50`

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	history := []*models.ChatExchange{}
	for rows.Next() {
		var exchange models.ChatExchange
		if err := rows.Scan(
			&exchange.ID,
			&exchange.Prompt,
			&exchange.Response,
			&exchange.DurationMs,
			&exchange.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		history = append(history, &exchange)
	}

	c.JSON(http.StatusOK, history)
}
