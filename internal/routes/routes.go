package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/vinevault/vinevault-golang/internal/handlers"
)

// CORSMiddleware tells the browser the local frontend may talk to us.
// The allowed origin is env-configurable; the default matches the Vite dev
// server.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Reply to the browser's preflight check without hitting a handler.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())

	// Catch-all for panics: full detail goes to the server log, the client
	// only sees a generic failure.
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}))

	router.Use(CORSMiddleware())

	api := router.Group("/api")
	{
		// --- Vine Products ---
		api.GET("/vine", h.GetVineProducts)
		api.POST("/vine", h.CreateVineProduct)
		api.PUT("/vine/:id", h.UpdateVineProduct)

		// --- Resale Inventory ---
		api.GET("/inventory", h.GetInventoryItems)
		api.POST("/inventory", h.CreateInventoryItem)
		api.PUT("/inventory/:id", h.UpdateInventoryItem)

		// --- Monetization Links ---
		api.GET("/monetization/links", h.GetMonetizationLinks)
		api.POST("/monetization/links", h.CreateMonetizationLink)
		api.PUT("/monetization/links/:id", h.UpdateMonetizationLink)

		// --- Income Events ---
		api.GET("/income-events", h.GetIncomeEvents)
		api.POST("/income-events", h.CreateIncomeEvent)

		// --- Analytics ---
		api.GET("/analytics/summary", h.GetIncomeSummary)
		api.GET("/analytics/inventory-stats", h.GetInventoryStats)
		api.GET("/analytics/insights", h.GetAnalyticsInsights)

		// --- AI Assistant ---
		api.POST("/ai/generate", h.GenerateAIResponse)
		api.GET("/ai/history", h.GetAIHistory)

		// --- eBay Pricing (mocked) ---
		api.GET("/ebay/pricing/:productName", h.GetEbayPricing)

		// --- Health Check ---
		api.GET("/health", h.HealthCheck)
	}

	return router
}
