package model

// SeatStatus describes the booking state of a single seat.  The string
// values double as the persisted JSON representation.
type SeatStatus string

const (
	// SeatAvailable marks a seat that can be booked now.
	SeatAvailable SeatStatus = "available"
	// SeatUnavailable marks a seat that is permanently blocked
	// (e.g. a broken seat).  It never becomes bookable.
	SeatUnavailable SeatStatus = "unavailable"
	// SeatReserved marks a seat taken by a confirmed booking.
	SeatReserved SeatStatus = "reserved"
)

// Valid reports whether s is one of the three known statuses.
func (s SeatStatus) Valid() bool {
	switch s {
	case SeatAvailable, SeatUnavailable, SeatReserved:
		return true
	}
	return false
}

// Seat is the smallest unit of inventory.  A seat's identity is its
// number scoped to one (TimeSlot, SeatArea) pair; the same number in a
// different slot or area is a different seat with independent status.
//
// Fields:
//
//	Number – seat number, unique within its area.
//	Status – current booking state.
type Seat struct {
	Number int        `json:"number"`
	Status SeatStatus `json:"status"`
}
