package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebook-backend/internal/shared/middleware"
	"venuebook-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupCatalogRoutes(v1, c)
		setupBookingRoutes(v1, c)
		setupOrderRoutes(v1, c)
		setupLoyaltyRoutes(v1, c)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"name":        c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}

func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	catalog := v1.Group("/catalog")
	{
		catalog.GET("/booking-types", c.CatalogHandler.ListBookingTypes)
		catalog.GET("/add-ons", c.CatalogHandler.ListAddOns)
		catalog.GET("/experiences", c.CatalogHandler.ListExperiences)
		catalog.GET("/menu", c.CatalogHandler.ListMenu)
		catalog.GET("/venues", c.CatalogHandler.ListVenues)
		catalog.GET("/coupons", c.CatalogHandler.ListCoupons)
	}
}

func setupBookingRoutes(v1 *gin.RouterGroup, c *container.Container) {
	booking := v1.Group("/booking")
	{
		booking.GET("", c.BookingHandler.GetState)
		booking.GET("/breakdown", c.BookingHandler.GetBreakdown)
		booking.PUT("/venue", c.BookingHandler.SetVenue)
		booking.PUT("/type", c.BookingHandler.SetType)
		booking.PUT("/guests", c.BookingHandler.SetGuests)
		booking.PUT("/schedule", c.BookingHandler.SetSchedule)
		booking.PUT("/contact", c.BookingHandler.SetContact)
		booking.POST("/add-ons", c.BookingHandler.AddAddOn)
		booking.DELETE("/add-ons/:id", c.BookingHandler.RemoveAddOn)
		booking.POST("/experiences", c.BookingHandler.AddExperience)
		booking.DELETE("/experiences/:id", c.BookingHandler.RemoveExperience)
		booking.POST("/coupon", c.BookingHandler.ApplyCoupon)
		booking.DELETE("/coupon", c.BookingHandler.RemoveCoupon)
		booking.POST("/complete", c.BookingHandler.Complete)
		booking.DELETE("", c.BookingHandler.Reset)
	}
}

func setupOrderRoutes(v1 *gin.RouterGroup, c *container.Container) {
	order := v1.Group("/order")
	{
		order.GET("", c.OrderHandler.GetState)
		order.GET("/breakdown", c.OrderHandler.GetBreakdown)
		order.PUT("/venue", c.OrderHandler.SetVenue)
		order.POST("/items", c.OrderHandler.AddItem)
		order.PATCH("/items/:id", c.OrderHandler.UpdateItem)
		order.DELETE("/items/:id", c.OrderHandler.RemoveItem)
		order.POST("/coupon", c.OrderHandler.ApplyDiscount)
		order.DELETE("/coupon", c.OrderHandler.RemoveDiscount)
		order.POST("/complete", c.OrderHandler.Complete)
		order.DELETE("", c.OrderHandler.Reset)
	}
}

func setupLoyaltyRoutes(v1 *gin.RouterGroup, c *container.Container) {
	loyalty := v1.Group("/loyalty")
	{
		loyalty.GET("", c.LoyaltyHandler.GetSummary)
		loyalty.GET("/achievements", c.LoyaltyHandler.GetAchievements)
		loyalty.GET("/venues", c.LoyaltyHandler.GetVenueStats)
		loyalty.GET("/rewards", c.LoyaltyHandler.GetRewards)
		loyalty.POST("/rewards/:id/redeem", c.LoyaltyHandler.RedeemReward)
		loyalty.POST("/transactions", c.LoyaltyHandler.RecordTransaction)
		loyalty.POST("/points", c.LoyaltyHandler.AwardPoints)
	}
}
