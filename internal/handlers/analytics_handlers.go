package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinevault/vinevault-golang/internal/analytics"
)

// queryIncomeSummary groups income events by source and sums each group.
// Sorted by total descending so responses are deterministic.
func (h *Handlers) queryIncomeSummary() ([]analytics.IncomeBySource, error) {
	query := `
		SELECT source, COALESCE(SUM(amount), 0) AS total
		FROM income_events
		GROUP BY source
		ORDER BY total DESC`

	rows, err := h.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := []analytics.IncomeBySource{}
	for rows.Next() {
		var row analytics.IncomeBySource
		if err := rows.Scan(&row.Source, &row.Total); err != nil {
			return nil, err
		}
		summary = append(summary, row)
	}
	return summary, rows.Err()
}

// queryInventoryStats returns the single-row inventory aggregate.
// COALESCE keeps the sums and average at 0 on an empty table instead of NULL;
// AVG already excludes NULL margins from its denominator.
func (h *Handlers) queryInventoryStats() (analytics.InventoryStats, error) {
	query := `
		SELECT COUNT(*) AS total_items,
		       COALESCE(SUM(CASE WHEN status = 'sold' THEN 1 ELSE 0 END), 0) AS sold_count,
		       COALESCE(SUM(net_profit), 0) AS total_profit,
		       COALESCE(AVG(profit_margin), 0) AS avg_margin
		FROM inventory_items`

	var stats analytics.InventoryStats
	err := h.DB.QueryRow(query).Scan(
		&stats.TotalItems,
		&stats.SoldCount,
		&stats.TotalProfit,
		&stats.AvgMargin,
	)
	return stats, err
}

// GetIncomeSummary is the handler for GET /api/analytics/summary.
func (h *Handlers) GetIncomeSummary(c *gin.Context) {
	summary, err := h.queryIncomeSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetInventoryStats is the handler for GET /api/analytics/inventory-stats.
func (h *Handlers) GetInventoryStats(c *gin.Context) {
	stats, err := h.queryInventoryStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetAnalyticsInsights is the handler for GET /api/analytics/insights.
// Composes the heuristic dashboard view from both aggregates.
func (h *Handlers) GetAnalyticsInsights(c *gin.Context) {
	stats, err := h.queryInventoryStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.queryIncomeSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analytics.BuildInsights(stats, summary))
}
