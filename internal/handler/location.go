package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-booking/internal/location"
)

// LocationHandler serves the read-only Australian address reference
// data consumed by the booking form's address picker.
type LocationHandler struct {
	Data location.Data
}

// NewLocationHandler constructs a LocationHandler over the loaded
// reference table.
func NewLocationHandler(data location.Data) *LocationHandler {
	return &LocationHandler{Data: data}
}

// GetLocations handles GET /v1/locations.
func (h *LocationHandler) GetLocations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Data)
}

// GetState handles GET /v1/locations/:code.  It returns one state with
// its suburbs and postcodes.
func (h *LocationHandler) GetState(c echo.Context) error {
	state, ok := h.Data.FindState(c.Param("code"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "state not found"})
	}
	return c.JSON(http.StatusOK, state)
}
