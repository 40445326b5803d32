package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockfolio/middleware"
)

// RegisterRoutes wires every endpoint onto the router. Split out of
// main so the test suite can mount the exact same routing.
func RegisterRoutes(router *gin.Engine) {
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", Register)
		auth.POST("/login", Login)
		auth.POST("/refresh", Refresh)
	}

	stocks := router.Group("/api/stocks")
	{
		stocks.GET("", ListStocks)
		stocks.GET("/meta/sectors", GetSectors)
		stocks.GET("/search/:query", SearchStocks)
		stocks.GET("/:symbol", GetStock)
		stocks.GET("/:symbol/chart", GetChart)
		stocks.GET("/:symbol/history", GetHistory)
		stocks.GET("/:symbol/indicators", GetIndicators)
		stocks.GET("/:symbol/quote", GetQuote)
	}

	marketRoutes := router.Group("/api/market")
	{
		marketRoutes.GET("/indices", GetIndices)
		marketRoutes.GET("/trending", GetTrending)
	}

	protected := router.Group("/api")
	protected.Use(middleware.JWTAuth())
	{
		protected.GET("/user/profile", GetProfile)
		protected.PUT("/user/profile", UpdateProfile)

		protected.GET("/portfolio", GetPortfolio)
		protected.POST("/portfolio/buy", BuyStock)
		protected.POST("/portfolio/sell", SellStock)

		protected.GET("/watchlist", GetWatchlist)
		protected.POST("/watchlist", AddToWatchlist)
		protected.DELETE("/watchlist/:symbol", RemoveFromWatchlist)

		protected.POST("/wallet/add-funds", AddFunds)
		protected.POST("/wallet/withdraw", Withdraw)

		protected.GET("/transactions", GetTransactions)
		protected.GET("/dashboard/stats", GetDashboardStats)
	}

	router.GET("/ws/prices", StreamPrices)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
