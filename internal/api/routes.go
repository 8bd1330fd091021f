// routes.go - Route registration helpers
// This file provides a clean way to register all API routes
package api

import (
	"github.com/labstack/echo/v4"

	"github.com/freightline/backend/internal/carrier"
	"github.com/freightline/backend/internal/loads"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Validator *carrier.Validator
	Table     *loads.Table
	Version   string
}

// Handlers holds all handler instances
type Handlers struct {
	Health  HealthHandler
	Carrier CarrierHandler
	Load    LoadHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(deps.Version, deps.Table),
		Carrier: NewCarrierHandler(deps.Validator),
		Load:    NewLoadHandler(deps.Table),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	apiGroup := e.Group("/api")

	// Health check
	apiGroup.GET("/health", handlers.Health.HandleHealth)

	// Carrier validation
	apiGroup.GET("/carriers/validate", handlers.Carrier.HandleValidateCarrier)

	// Load lookup
	apiGroup.GET("/loads/:referenceNumber", handlers.Load.HandleGetLoad)
	apiGroup.GET("/loads/:referenceNumber/msgpack", handlers.Load.HandleGetLoadMsgpack)
}
