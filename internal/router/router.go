package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-booking/internal/handler"
)

// RegisterRoutes registers routes that carry no browse caching on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterBrowse registers the read-only catalog and reference-data
// endpoints.  These are the cacheable surface: the caller may pass
// response-cache middleware to apply to the group.
func RegisterBrowse(e *echo.Echo, ch *handler.CatalogHandler, lh *handler.LocationHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	// Full catalog in seed order.
	g.GET("/concerts", ch.ListConcerts)
	// One concert with its programme and nested availability.
	g.GET("/concerts/:id", ch.GetConcert)
	// Per-date, per-slot availability summary.
	g.GET("/concerts/:id/availability", ch.GetAvailability)
	// Seat map of one area, qualified by date and slot query parameters.
	g.GET("/concerts/:id/seats", ch.GetAreaSeats)
	// Australian address reference data for the booking form.
	g.GET("/locations", lh.GetLocations)
	g.GET("/locations/:code", lh.GetState)
}

// RegisterBooking registers the booking flow endpoints.  Bookings are
// never cached.
func RegisterBooking(e *echo.Echo, bh *handler.BookingHandler) {
	g := e.Group("/v1")
	// Confirm a booking: reserve seats and append to the ledger.
	g.POST("/bookings", bh.CreateBooking)
	// Booking history, oldest first.
	g.GET("/bookings", bh.ListBookings)
}
