package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/shopmart/internal/server/http/handlers"
	"github.com/polkiloo/shopmart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	couponHandler := handlers.NewCouponHandler(facade)
	loyaltyHandler := handlers.NewLoyaltyHandler(facade)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/products", catalogHandler.List)
	authed.GET("/products/:id", catalogHandler.Get)
	authed.GET("/cart", cartHandler.List)
	authed.PUT("/cart", cartHandler.Put)
	authed.DELETE("/cart/:productID", cartHandler.Remove)
	authed.POST("/checkout", checkoutHandler.Checkout)
	authed.POST("/coupons/validate", couponHandler.Validate)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.GET("/loyalty", loyaltyHandler.Summary)

	admin := api.Group("")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.POST("/products", catalogHandler.Create)
	admin.PUT("/products/:id", catalogHandler.Update)
	admin.POST("/products/:id/restock", catalogHandler.Restock)
	admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	admin.POST("/coupons", couponHandler.Create)
	admin.GET("/coupons", couponHandler.List)
	admin.POST("/coupons/:id/use", couponHandler.Use)
	admin.PUT("/users/:id/points", loyaltyHandler.SetPoints)
	admin.PUT("/users/:id/level", loyaltyHandler.SetLevel)

	return engine
}
