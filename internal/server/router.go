package server

import (
	"auction-hub/internal/gateway"
	handler "auction-hub/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketHandler *handler.MarketHandler, gw *gateway.Gateway) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	// Read endpoints consumed by the web collaborator
	router.GET("/getAd/:adCode", marketHandler.GetAdHandler)
	router.GET("/getAdById/:adId", marketHandler.GetAdByIDHandler)
	router.GET("/getBids/:adId", marketHandler.GetBidsHandler)

	api := router.Group("/api")
	{
		api.GET("/chats", marketHandler.ListChatsHandler)
		api.GET("/chats/:recipientId/:adId", marketHandler.GetThreadHandler)
		api.GET("/user/:userId", marketHandler.GetUserHandler)
	}

	// Real-time gateway
	router.GET("/ws", gw.HandleWS)

	return router
}
