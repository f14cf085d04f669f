package routes

import (
	"net/http"

	"nexus_recycle/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSession     = "/session"
	PathScans       = "/scans"
	PathMarketplace = "/marketplace"
	PathTrades      = "/trades"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", ping)
}

// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200
// @Router       /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, impactHandler *handlers.ImpactHandler) {
	session := rg.Group(PathSession)
	{
		session.POST("/profile", sessionHandler.CreateProfile)
		session.GET("/profile", sessionHandler.GetProfile)
		session.PUT("/location", sessionHandler.UpdateLocation)
		session.DELETE("", sessionHandler.Logout)
	}

	rg.GET("/dashboard", impactHandler.Dashboard)
}

func addScanRoutes(rg *gin.RouterGroup, scanHandler *handlers.ScanHandler) {
	scans := rg.Group(PathScans)
	{
		scans.POST("", scanHandler.Analyze)
		scans.GET("/active", scanHandler.Active)
		scans.DELETE("/active", scanHandler.Discard)
	}
}

func addMarketplaceRoutes(rg *gin.RouterGroup, marketplaceHandler *handlers.MarketplaceHandler) {
	rg.Group(PathMarketplace).GET("/buyers", marketplaceHandler.FindBuyers)
}

func addTradeRoutes(rg *gin.RouterGroup, tradeHandler *handlers.TradeHandler, impactHandler *handlers.ImpactHandler) {
	negotiation := rg.Group(PathTrades + "/negotiation")
	{
		negotiation.GET("", tradeHandler.Current)
		negotiation.POST("/quote", tradeHandler.SelectQuote)
		negotiation.DELETE("/quote", tradeHandler.CancelSelection)
		negotiation.POST("/confirm", tradeHandler.Confirm)
	}

	rg.GET("/transactions", impactHandler.Transactions)
	rg.GET("/impact", impactHandler.Impact)
}
