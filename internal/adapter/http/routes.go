// Package http provides the HTTP handler layer for the fare search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all fare search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *FareHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	fares := api.Group("/fares")
	fares.POST("/cheapest-day", h.CheapestDay)
	fares.POST("/cheapest-route", h.CheapestRoute)
	fares.POST("/flexible-dates", h.FlexibleDates)
	fares.POST("/batch", h.BatchSearch)
	fares.POST("/price-check", h.PriceCheck)

	api.GET("/cache/stats", h.CacheStats)
	api.DELETE("/cache", h.CacheClear)
}
