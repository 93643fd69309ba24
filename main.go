package main

import (
	"log"

	"cemention-gateway/clients"
	"cemention-gateway/config"
	"cemention-gateway/handlers"
	"cemention-gateway/session"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	log.Printf("Starting Cemention storefront gateway on port %s (backend %s)", cfg.Port, cfg.BackendURL)

	// Set Gin mode
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	backend := clients.NewBackend(cfg.BackendURL, cfg.RequestTimeout)
	sessions := session.NewStore(cfg.SessionTTL)

	authHandler := handlers.NewAuthHandler(backend, sessions)
	catalogHandler := handlers.NewCatalogHandler(backend)
	checkoutHandler := handlers.NewCheckoutHandler(backend)
	ordersHandler := handlers.NewOrdersHandler(backend)
	adminHandler := handlers.NewAdminHandler(backend)

	router := gin.Default()
	router.Use(handlers.Sessions(sessions))

	// Auth flow
	router.GET("/auth/state", authHandler.State)
	router.POST("/auth/phone", authHandler.SubmitPhone)
	router.POST("/auth/otp", authHandler.SubmitOTP)
	router.POST("/auth/back", authHandler.Back)
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/logout", authHandler.Logout)
	router.GET("/me", authHandler.Me)

	// Catalog and cart
	router.GET("/products", catalogHandler.ListProducts)
	router.GET("/cart", catalogHandler.GetCart)
	router.POST("/cart/items", catalogHandler.AddToCart)
	router.DELETE("/cart/items/:productID", catalogHandler.RemoveItem)
	router.DELETE("/cart", catalogHandler.ClearCart)

	// Checkout and orders
	router.GET("/checkout", checkoutHandler.Checkout)
	router.POST("/addresses", checkoutHandler.CreateAddress)
	router.DELETE("/addresses/:addressID", checkoutHandler.DeleteAddress)
	router.POST("/orders", checkoutHandler.PlaceOrder)
	router.GET("/orders", ordersHandler.List)
	router.GET("/orders/:orderID", ordersHandler.Get)
	router.POST("/orders/:orderID/payment-confirmation", ordersHandler.ConfirmPayment)

	// Admin console
	admin := router.Group("/admin", handlers.RequireAdmin())
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.PATCH("/users/:userID/approve", adminHandler.ApproveUser)
	admin.PATCH("/users/:userID/reject", adminHandler.RejectUser)
	admin.PATCH("/orders/:orderID", adminHandler.UpdateOrder)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PATCH("/products/:productID", adminHandler.UpdateProduct)
	admin.DELETE("/products/:productID", adminHandler.DeleteProduct)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	log.Fatal(router.Run(":" + cfg.Port))
}
