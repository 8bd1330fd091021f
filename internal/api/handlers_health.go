// handlers_health.go - Health check handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freightline/backend/internal/loads"
)

// HealthHandlerImpl implements the HealthHandler interface
type HealthHandlerImpl struct {
	version string
	table   *loads.Table
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, table *loads.Table) HealthHandler {
	return &HealthHandlerImpl{
		version: version,
		table:   table,
	}
}

// HandleHealth returns server health status. The loads count lets
// operators spot a failed startup load without reading logs.
func (h *HealthHandlerImpl) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
		"loads":   h.table.Len(),
	})
}
