// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fryfinder/internal/delivery/http/middleware"
	"fryfinder/internal/delivery/http/router/handler"
	"fryfinder/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdminHandler    *handler.AdminHandler
	EventHandler    *handler.EventHandler
	MenuHandler     *handler.MenuHandler
	OrderHandler    *handler.OrderHandler
	LocationHandler *handler.LocationHandler
	SuggestHandler  *handler.SuggestHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	adminHandler    *handler.AdminHandler
	eventHandler    *handler.EventHandler
	menuHandler     *handler.MenuHandler
	orderHandler    *handler.OrderHandler
	locationHandler *handler.LocationHandler
	suggestHandler  *handler.SuggestHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		adminHandler:    params.AdminHandler,
		eventHandler:    params.EventHandler,
		menuHandler:     params.MenuHandler,
		orderHandler:    params.OrderHandler,
		locationHandler: params.LocationHandler,
		suggestHandler:  params.SuggestHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public discovery and ordering routes
	e.GET("/events", r.eventHandler.SearchEvents)
	e.GET("/events/:id", r.eventHandler.GetEvent)
	e.GET("/events/:id/menu", r.menuHandler.GetMenu)
	e.POST("/events/:id/orders", r.orderHandler.PlaceOrder)
	e.GET("/orders/:id", r.orderHandler.GetOrder)
	e.GET("/locations", r.locationHandler.ListLocations)
	e.GET("/locations/:id", r.locationHandler.GetLocation)
	e.GET("/cities/suggest", r.suggestHandler.SuggestCities)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.adminHandler.Register)
		authGroup.POST("/login", r.adminHandler.Login)
	}
	e.GET("/auth/me", r.adminHandler.Me, r.authMiddleware.Authenticate)

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/location", r.locationHandler.GetManagedLocation)
		adminGroup.POST("/locations", r.locationHandler.CreateLocation)
		adminGroup.PUT("/locations/:id", r.locationHandler.UpdateLocation)
		adminGroup.GET("/locations/:id/events", r.eventHandler.ListLocationEvents)

		adminGroup.POST("/events", r.eventHandler.CreateEvent)
		adminGroup.PUT("/events/:id", r.eventHandler.UpdateEvent)
		adminGroup.DELETE("/events/:id", r.eventHandler.DeleteEvent)
		adminGroup.POST("/events/:id/duplicate", r.eventHandler.DuplicateEvent)

		adminGroup.GET("/events/:id/menu", r.menuHandler.ListMenuItems)
		adminGroup.POST("/menu-items", r.menuHandler.CreateMenuItem)
		adminGroup.PUT("/menu-items/:id", r.menuHandler.UpdateMenuItem)
		adminGroup.DELETE("/menu-items/:id", r.menuHandler.DeleteMenuItem)
		adminGroup.POST("/events/:id/menu/copy", r.menuHandler.CopyMenu)

		adminGroup.GET("/events/:id/orders", r.orderHandler.ListEventOrders)
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
	}
}
