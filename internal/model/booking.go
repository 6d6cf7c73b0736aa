package model

import (
	"time"

	"github.com/google/uuid"
)

// Booking is an immutable record of one completed purchase.  It is a
// denormalized snapshot: the concert title, date, slot, area, seats and
// price are copied at booking time so the record survives catalog
// reloads and later price changes.  Bookings are created once and never
// mutated or deleted.
//
// Fields:
//
//	ID           – generated identifier.
//	ConcertTitle – title of the booked concert.
//	Date/Month/Year – performance date components.
//	TimeSlot     – slot display string, e.g. "2:00PM - 4:00PM".
//	AreaCode     – booked seating area.
//	SeatNumbers  – ordered booked seat numbers.
//	TotalPrice   – area price times seat count at booking time.
//	Customer     – embedded customer snapshot.
//	BookingDate  – when the booking was made, UTC.
type Booking struct {
	ID           string    `json:"id"`
	ConcertTitle string    `json:"concertTitle"`
	Date         string    `json:"date"`
	Month        string    `json:"month"`
	Year         string    `json:"year"`
	TimeSlot     string    `json:"timeSlot"`
	AreaCode     string    `json:"areaCode"`
	SeatNumbers  []int     `json:"seatNumbers"`
	TotalPrice   int       `json:"totalPrice"`
	Customer     Customer  `json:"customer"`
	BookingDate  time.Time `json:"bookingDate"`
}

// NewBooking builds the booking snapshot for the given selections.  The
// total price is computed from the area price and the number of seats.
func NewBooking(concert Concert, date AvailableDate, slot TimeSlot, area SeatArea, seats []Seat, customer Customer) Booking {
	numbers := make([]int, len(seats))
	for i, s := range seats {
		numbers[i] = s.Number
	}
	return Booking{
		ID:           uuid.NewString(),
		ConcertTitle: concert.Title,
		Date:         date.Date,
		Month:        date.Month,
		Year:         date.Year,
		TimeSlot:     slot.DisplayString(),
		AreaCode:     area.Code,
		SeatNumbers:  numbers,
		TotalPrice:   area.Price * len(seats),
		Customer:     customer,
		BookingDate:  time.Now().UTC(),
	}
}

// FullDateString renders the booked performance date, e.g. "17 August 2025".
func (b Booking) FullDateString() string {
	return b.Date + " " + b.Month + " " + b.Year
}
