package server

import (
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/identity"
	"auction-engine/internal/ledger"
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionLedger *ledger.Ledger, biddingService *bidding.BiddingService, registry *identity.Registry) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionLedger)
	biddingHandler := handler.NewBiddingHandler(biddingService)
	userHandler := handler.NewUserHandler(registry)

	api := router.Group("/api")
	{
		api.GET("/health", handler.HealthHandler)
		api.POST("/register", userHandler.RegisterHandler)
		api.POST("/login", userHandler.LoginHandler)

		auctions := api.Group("/auctions")
		{
			auctions.GET("", auctionHandler.ListActiveAuctionsHandler)
			auctions.POST("", auctionHandler.CreateAuctionHandler)
			auctions.GET("/user/:user_id", auctionHandler.GetAuctionsBySellerHandler)
			auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		}

		bids := api.Group("/bids")
		{
			bids.POST("", biddingHandler.PlaceBidHandler)
			bids.GET("/auction/:auction_id", biddingHandler.GetBidsByAuctionHandler)
			bids.GET("/user/:user_id", biddingHandler.GetBidsByUserHandler)
		}
	}

	return router
}
