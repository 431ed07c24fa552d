package handlers

import (
	"math"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GetEbayPricing is the handler for GET /api/ebay/pricing/:productName.
// Mocked comparable-sales numbers.
// TODO: replace with the eBay Finding API once API credentials exist.
func (h *Handlers) GetEbayPricing(c *gin.Context) {
	_ = c.Param("productName") // Unused until the real integration lands

	c.JSON(http.StatusOK, gin.H{
		"avgPrice":   round2(rand.Float64()*400 + 50),
		"minPrice":   round2(rand.Float64()*200 + 20),
		"maxPrice":   round2(rand.Float64()*600 + 200),
		"sampleSize": rand.Intn(50) + 10,
	})
}
