// Package booking holds the transient draft a customer accumulates
// while navigating the booking flow.  A draft is never persisted; it
// lives only for the duration of one flow and resetting it is the only
// pre-commit abort mechanism.
package booking

import (
	"fmt"

	"github.com/iliyamo/concert-ticket-booking/internal/catalog"
	"github.com/iliyamo/concert-ticket-booking/internal/model"
)

// Draft accumulates the selections of exactly one in-progress booking:
// chosen date, time slot, seat area, seats and the customer being
// entered.  The zero value is an empty draft.
type Draft struct {
	date     *model.AvailableDate
	slot     *model.TimeSlot
	area     *model.SeatArea
	seats    []model.Seat
	customer model.Customer
}

// SelectDate records the chosen performance date.
func (d *Draft) SelectDate(date model.AvailableDate) {
	d.date = &date
}

// SelectTimeSlot records the chosen time slot.
func (d *Draft) SelectTimeSlot(slot model.TimeSlot) {
	d.slot = &slot
}

// SelectArea records the chosen seat area.
func (d *Draft) SelectArea(area model.SeatArea) {
	d.area = &area
}

// SelectSeats replaces the selected seat set.  Every seat must belong
// to the previously selected area; no other validation happens here,
// the engine re-checks eligibility at confirmation time.
func (d *Draft) SelectSeats(seats []model.Seat) error {
	if d.area == nil {
		return fmt.Errorf("no seat area selected")
	}
	for _, s := range seats {
		if _, ok := d.area.SeatByNumber(s.Number); !ok {
			return fmt.Errorf("seat %d is not in area %s", s.Number, d.area.Code)
		}
	}
	d.seats = seats
	return nil
}

// SetCustomer records the customer details being entered.
func (d *Draft) SetCustomer(c model.Customer) {
	d.customer = c
}

// SeatPath returns the fully qualified path of the current selection
// for the given concert, and whether the selection is complete enough
// to address one.
func (d *Draft) SeatPath(concertID string) (catalog.SeatPath, bool) {
	if d.date == nil || d.slot == nil || d.area == nil {
		return catalog.SeatPath{}, false
	}
	return catalog.SeatPath{
		ConcertID: concertID,
		DateID:    d.date.FullDateString(),
		SlotID:    d.slot.DisplayString(),
		AreaCode:  d.area.Code,
	}, true
}

// Finalize builds the immutable booking snapshot from the accumulated
// selections and clears the draft.  It returns nil when the date, time
// slot, area or at least one seat is missing; an incomplete draft is an
// expected, recoverable condition during the interactive flow, not an
// error.
func (d *Draft) Finalize(concert model.Concert) *model.Booking {
	if d.date == nil || d.slot == nil || d.area == nil || len(d.seats) == 0 {
		return nil
	}
	b := model.NewBooking(concert, *d.date, *d.slot, *d.area, d.seats, d.customer)
	d.Reset()
	return &b
}

// Reset clears all five selection fields back to empty.
func (d *Draft) Reset() {
	d.date = nil
	d.slot = nil
	d.area = nil
	d.seats = nil
	d.customer = model.Customer{}
}
