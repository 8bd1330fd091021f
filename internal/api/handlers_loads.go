// handlers_loads.go - Load reference lookup handlers
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/freightline/backend/internal/loads"
	"github.com/freightline/backend/internal/models"
)

// LoadHandlerImpl implements the LoadHandler interface
type LoadHandlerImpl struct {
	table *loads.Table
}

// NewLoadHandler creates a new load handler instance
func NewLoadHandler(table *loads.Table) LoadHandler {
	return &LoadHandlerImpl{
		table: table,
	}
}

// HandleGetLoad returns the load record for a reference number
func (h *LoadHandlerImpl) HandleGetLoad(c echo.Context) error {
	record, err := h.lookup(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// HandleGetLoadMsgpack returns the load record in MessagePack format for
// bandwidth-sensitive clients.
func (h *LoadHandlerImpl) HandleGetLoadMsgpack(c echo.Context) error {
	record, err := h.lookup(c)
	if err != nil {
		return err
	}

	data, err := msgpack.Marshal(record)
	if err != nil {
		return NewInternalError("Error retrieving load", err)
	}

	return c.Blob(http.StatusOK, "application/msgpack", data)
}

func (h *LoadHandlerImpl) lookup(c echo.Context) (models.LoadRecord, error) {
	referenceNumber := c.Param("referenceNumber")

	record, err := h.table.Lookup(referenceNumber)
	if err != nil {
		switch {
		case errors.Is(err, loads.ErrUnavailable):
			return models.LoadRecord{}, NewServerError("No load data available")
		case errors.Is(err, loads.ErrNotFound):
			return models.LoadRecord{}, NewNotFoundError("Load", referenceNumber)
		}
		return models.LoadRecord{}, NewInternalError("Error retrieving load", err)
	}

	return record, nil
}
