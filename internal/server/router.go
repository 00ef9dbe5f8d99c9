package server

import (
	"net/http"
	"time"

	"artwork-auctions/internal/auth"
	"artwork-auctions/internal/metrics"
	handler "artwork-auctions/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// Options carries the cross-cutting settings for the router
type Options struct {
	Resolver       auth.ClaimsResolver
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
	OfferLimiter   *UserRateLimiter
	Handler        handler.HandlerConfig
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.AuctionServiceInterface, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(MetricsMiddleware(opts.Metrics))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	auctionHandler := handler.NewAuctionHandler(service, opts.Handler)

	api := router.Group("")
	api.Use(RequireAuth(opts.Resolver))
	api.Use(TimeoutMiddleware(opts.RequestTimeout))

	artworks := api.Group("/artwork/:artworkId")
	{
		artworks.POST("/auction/start", auctionHandler.StartAuctionHandler)
		artworks.GET("/auction/active", auctionHandler.GetActiveAuctionHandler)
	}

	offerChain := []gin.HandlerFunc{auctionHandler.MakeOfferHandler}
	if opts.OfferLimiter != nil {
		offerChain = append([]gin.HandlerFunc{opts.OfferLimiter.Middleware()}, offerChain...)
	}

	auctions := api.Group("/auction/:auctionId")
	{
		auctions.PUT("", auctionHandler.UpdateAuctionHandler)
		auctions.POST("/make-an-offer", offerChain...)
		auctions.GET("/offers", auctionHandler.GetOffersHandler)
		auctions.GET("/offers/max", auctionHandler.GetMaxOfferHandler)
	}

	offers := api.Group("/offer/:offerId")
	{
		offers.PUT("/accept", auctionHandler.AcceptOfferHandler)
		offers.PUT("/reject", auctionHandler.RejectOfferHandler)
		offers.PUT("/withdraw", auctionHandler.WithdrawOfferHandler)
	}

	api.GET("/discover", auctionHandler.DiscoverHandler)

	return router
}
