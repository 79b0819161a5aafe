// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jewelshop/config"
	"jewelshop/internal/delivery/api/middleware"
	"jewelshop/internal/delivery/api/router/handler"
	"jewelshop/internal/domain/entity"
	"jewelshop/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	AddressHandler *handler.AddressHandler
	ProductHandler *handler.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler       *handler.CartHandler
	orderHandler      *handler.OrderHandler
	adminHandler      *handler.AdminHandler
	addressHandler    *handler.AddressHandler
	productHandler    *handler.ProductHandler
	authMiddleware    *middleware.AuthMiddleware
	sessionMiddleware *middleware.SessionMiddleware
	registry          *prometheus.Registry
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:       params.CartHandler,
		orderHandler:      params.OrderHandler,
		adminHandler:      params.AdminHandler,
		addressHandler:    params.AddressHandler,
		productHandler:    params.ProductHandler,
		authMiddleware:    params.AuthMiddleware,
		sessionMiddleware: middleware.NewSessionMiddleware(params.Config.Cart.TTL),
		registry:          params.Registry,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.registry != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))
	}

	apiV1 := e.Group("/api/v1")

	// Catalog routes are public
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
	}

	// Cart routes serve both guests (session) and signed-in customers
	cartGroup := apiV1.Group("/cart")
	cartGroup.Use(r.authMiddleware.OptionalAuthenticate)
	cartGroup.Use(r.sessionMiddleware.Process)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("", r.cartHandler.AddItem)
		cartGroup.PUT("", r.cartHandler.SetQuantity)
		cartGroup.DELETE("", r.cartHandler.RemoveItem)
		cartGroup.POST("/to-order", r.orderHandler.Checkout, r.authMiddleware.Authenticate)
	}

	ordersGroup := apiV1.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
	}

	addressesGroup := apiV1.Group("/addresses")
	addressesGroup.Use(r.authMiddleware.Authenticate)
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.GET("/:id", r.addressHandler.GetAddress)
		addressesGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}

	// Staff routes require authentication and the "admin" role
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.POST("/orders/:id/update-status", r.adminHandler.UpdateOrderStatus)
		adminGroup.GET("/products/:id/stock-movements", r.adminHandler.StockHistory)
	}
}
