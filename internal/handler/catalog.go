package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-booking/internal/catalog"
)

// CatalogHandler exposes read-only browse endpoints over the concert
// catalog.  All responses are built from deep copies, so nothing a
// client sees can alias live seat state.
type CatalogHandler struct {
	Store *catalog.Store
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	if store == nil {
		panic("nil store passed to NewCatalogHandler")
	}
	return &CatalogHandler{Store: store}
}

// ListConcerts handles GET /v1/concerts.  It returns the full catalog
// in seed order.
func (h *CatalogHandler) ListConcerts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Concerts())
}

// GetConcert handles GET /v1/concerts/:id.
func (h *CatalogHandler) GetConcert(c echo.Context) error {
	concert, err := h.Store.Concert(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "concert not found"})
	}
	return c.JSON(http.StatusOK, concert)
}

// slotAvailability is the per-slot summary returned by GetAvailability.
type slotAvailability struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Display     string `json:"display"`
	Available   bool   `json:"available"`
	FullyBooked bool   `json:"fullyBooked"`
}

// dateAvailability is the per-date summary returned by GetAvailability.
type dateAvailability struct {
	Date      string             `json:"date"`
	Month     string             `json:"month"`
	Year      string             `json:"year"`
	FullDate  string             `json:"fullDate"`
	TimeSlots []slotAvailability `json:"timeSlots"`
}

// GetAvailability handles GET /v1/concerts/:id/availability.  It
// summarizes every date and slot of one concert: whether any seat can
// still be booked and whether the slot is completely sold out.
func (h *CatalogHandler) GetAvailability(c echo.Context) error {
	concert, err := h.Store.Concert(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "concert not found"})
	}
	dates := make([]dateAvailability, 0, len(concert.AvailableDates))
	for _, d := range concert.AvailableDates {
		slots := make([]slotAvailability, 0, len(d.TimeSlots))
		for _, t := range d.TimeSlots {
			slots = append(slots, slotAvailability{
				StartTime:   t.StartTime,
				EndTime:     t.EndTime,
				Display:     t.DisplayString(),
				Available:   t.HasAvailability(),
				FullyBooked: t.IsFullyBooked(),
			})
		}
		dates = append(dates, dateAvailability{
			Date:      d.Date,
			Month:     d.Month,
			Year:      d.Year,
			FullDate:  d.FullDateString(),
			TimeSlots: slots,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"concertId":      concert.ID,
		"title":          concert.Title,
		"availableDates": dates,
	})
}

// GetAreaSeats handles GET /v1/concerts/:id/seats?date=&slot=&area=.
// It returns one seat area, including current seat statuses, for the
// fully qualified date and slot.
func (h *CatalogHandler) GetAreaSeats(c echo.Context) error {
	p := catalog.SeatPath{
		ConcertID: c.Param("id"),
		DateID:    c.QueryParam("date"),
		SlotID:    c.QueryParam("slot"),
		AreaCode:  c.QueryParam("area"),
	}
	if p.DateID == "" || p.SlotID == "" || p.AreaCode == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date, slot and area query parameters are required"})
	}
	area, err := h.Store.Area(p)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFoundMessage(err)})
	}
	return c.JSON(http.StatusOK, area)
}

// notFoundMessage maps catalog sentinels to response text.
func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, catalog.ErrConcertNotFound):
		return "concert not found"
	case errors.Is(err, catalog.ErrDateNotFound):
		return "available date not found"
	case errors.Is(err, catalog.ErrTimeSlotNotFound):
		return "time slot not found"
	case errors.Is(err, catalog.ErrAreaNotFound):
		return "seat area not found"
	}
	return "not found"
}
