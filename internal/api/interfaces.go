// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"github.com/labstack/echo/v4"
)

// CarrierHandler handles carrier validation operations
type CarrierHandler interface {
	HandleValidateCarrier(c echo.Context) error
}

// LoadHandler handles load reference lookups
type LoadHandler interface {
	HandleGetLoad(c echo.Context) error
	HandleGetLoadMsgpack(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}
