package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-booking/internal/booking"
	"github.com/iliyamo/concert-ticket-booking/internal/catalog"
	"github.com/iliyamo/concert-ticket-booking/internal/engine"
	"github.com/iliyamo/concert-ticket-booking/internal/ledger"
	"github.com/iliyamo/concert-ticket-booking/internal/model"
	"github.com/iliyamo/concert-ticket-booking/internal/queue"
	queue_publisher "github.com/iliyamo/concert-ticket-booking/internal/service"
)

// Customer fields are validated at input time only; the core never
// re-checks them.  The patterns mirror the original booking form.
var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+][0-9 ()-]{7,14}$`)
)

// BookingHandler drives the booking flow: it assembles a draft from the
// request, finalizes it into a booking snapshot and asks the engine to
// commit it.  It also exposes booking history.
type BookingHandler struct {
	Store  *catalog.Store
	Engine *engine.Engine
	Ledger *ledger.Store
	// PublishEvents controls whether confirmations are announced on the
	// message broker.  Disabled in tests.
	PublishEvents bool
}

// NewBookingHandler constructs a BookingHandler.  All dependencies must
// be non-nil.
func NewBookingHandler(store *catalog.Store, eng *engine.Engine, led *ledger.Store, publish bool) *BookingHandler {
	if store == nil || eng == nil || led == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Store: store, Engine: eng, Ledger: led, PublishEvents: publish}
}

// bookingRequest is the JSON body accepted by CreateBooking.  The date,
// slot and area are referenced by the same stable identities the
// catalog uses.
type bookingRequest struct {
	ConcertID   string         `json:"concertId"`
	Date        string         `json:"date"`
	Month       string         `json:"month"`
	Year        string         `json:"year"`
	TimeSlot    string         `json:"timeSlot"`
	AreaCode    string         `json:"areaCode"`
	SeatNumbers []int          `json:"seatNumbers"`
	Customer    model.Customer `json:"customer"`
}

// CreateBooking handles POST /v1/bookings.  On success the requested
// seats are reserved, the booking is appended to the ledger and the
// booking snapshot is returned with 201.  Failures map to 400 for an
// incomplete draft or bad customer details, 404 for stale identities,
// 409 for seat conflicts and 500 for persistence errors; none of them
// leave partial state behind.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := validateCustomer(req.Customer); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	concert, err := h.Store.Concert(req.ConcertID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "concert not found"})
	}
	fullDate := strings.TrimSpace(req.Date + " " + req.Month + " " + req.Year)
	date, ok := concert.DateByFullString(fullDate)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "available date not found"})
	}
	slot, ok := date.SlotByDisplay(req.TimeSlot)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "time slot not found"})
	}
	area, ok := slot.AreaByCode(req.AreaCode)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat area not found"})
	}

	// Deduplicate the requested numbers and resolve them against the
	// area.  Unknown numbers are reported the same way the engine
	// reports ineligible ones.
	seen := make(map[int]struct{}, len(req.SeatNumbers))
	seats := make([]model.Seat, 0, len(req.SeatNumbers))
	var unknown []int
	for _, n := range req.SeatNumbers {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		seat, ok := area.SeatByNumber(n)
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		seats = append(seats, seat)
	}
	if len(unknown) > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":    "some seats are unavailable",
			"conflict": unknown,
		})
	}

	var draft booking.Draft
	draft.SelectDate(date)
	draft.SelectTimeSlot(slot)
	draft.SelectArea(area)
	if err := draft.SelectSeats(seats); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	draft.SetCustomer(req.Customer)

	path, _ := draft.SeatPath(concert.ID)
	booked := draft.Finalize(concert)
	if booked == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "incomplete booking selection"})
	}

	if err := h.Engine.ConfirmBooking(c.Request().Context(), path, *booked); err != nil {
		var conflict *catalog.SeatConflictError
		switch {
		case errors.As(err, &conflict):
			return c.JSON(http.StatusConflict, echo.Map{
				"error":    "some seats are unavailable",
				"conflict": conflict.Seats,
			})
		case errors.Is(err, catalog.ErrConcertNotFound),
			errors.Is(err, catalog.ErrDateNotFound),
			errors.Is(err, catalog.ErrTimeSlotNotFound),
			errors.Is(err, catalog.ErrAreaNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": notFoundMessage(err)})
		case errors.Is(err, catalog.ErrNoSeatsRequested):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no seats requested"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save booking"})
	}

	if h.PublishEvents {
		// Best effort: a broker outage never fails a committed booking.
		ev := queue.BookingConfirmedEvent{
			BookingID:    booked.ID,
			ConcertTitle: booked.ConcertTitle,
			Date:         booked.FullDateString(),
			TimeSlot:     booked.TimeSlot,
			AreaCode:     booked.AreaCode,
			SeatNumbers:  booked.SeatNumbers,
			TotalPrice:   booked.TotalPrice,
			CustomerName: booked.Customer.Name,
			ConfirmedAt:  time.Now().UTC().Format(time.RFC3339),
		}
		_ = queue_publisher.PublishBookingConfirmed(c.Request().Context(), ev)
	}

	return c.JSON(http.StatusCreated, booked)
}

// ListBookings handles GET /v1/bookings.  It returns the full booking
// history, oldest first.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.Ledger.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// validateCustomer returns a message describing the first invalid
// field, or "" when the customer details are acceptable.
func validateCustomer(cust model.Customer) string {
	switch {
	case strings.TrimSpace(cust.Name) == "":
		return "customer name is required"
	case !emailRe.MatchString(cust.Email):
		return "customer email is invalid"
	case !phoneRe.MatchString(cust.Phone):
		return "customer phone is invalid"
	}
	return ""
}
