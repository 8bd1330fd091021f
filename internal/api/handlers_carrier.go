// handlers_carrier.go - Carrier validation handlers
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freightline/backend/internal/carrier"
	"github.com/freightline/backend/internal/fmcsa"
)

// CarrierHandlerImpl implements the CarrierHandler interface
type CarrierHandlerImpl struct {
	validator *carrier.Validator
}

// NewCarrierHandler creates a new carrier handler instance
func NewCarrierHandler(validator *carrier.Validator) CarrierHandler {
	return &CarrierHandlerImpl{
		validator: validator,
	}
}

// HandleValidateCarrier validates an MC number against the FMCSA registry.
// A carrier the registry does not know is a 200 with is_valid=false, not
// an error.
func (h *CarrierHandlerImpl) HandleValidateCarrier(c echo.Context) error {
	mcNumber := c.QueryParam("mc_number")

	result, err := h.validator.Validate(c.Request().Context(), mcNumber)
	if err != nil {
		switch {
		case errors.Is(err, carrier.ErrInvalidFormat):
			return NewBadRequestError("Invalid MC number format")
		case errors.Is(err, carrier.ErrWebKeyMissing):
			return NewServerError("FMCSA API key not configured")
		}

		var statusErr *fmcsa.StatusError
		if errors.As(err, &statusErr) {
			return NewServerError("FMCSA API error: " + statusErr.Body)
		}

		return NewInternalError("Error validating carrier", err)
	}

	return c.JSON(http.StatusOK, result)
}
