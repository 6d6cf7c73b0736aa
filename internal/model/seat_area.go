package model

import "slices"

// SeatArea is a named pricing zone within a time slot.  Area codes are
// single letters unique within their slot.  Pros and cons are
// display-only text describing the zone to customers.
//
// Fields:
//
//	Code  – area identifier (e.g. "A").
//	Price – price per seat in whole currency units.
//	Pros  – advantages of sitting in this area.
//	Cons  – disadvantages of sitting in this area.
//	Seats – ordered seats, numbers unique within the area.
type SeatArea struct {
	Code  string   `json:"code"`
	Price int      `json:"price"`
	Pros  []string `json:"pros"`
	Cons  []string `json:"cons"`
	Seats []Seat   `json:"seats"`
}

// SeatByNumber returns the seat with the given number and whether it
// exists in this area.
func (a SeatArea) SeatByNumber(number int) (Seat, bool) {
	for _, s := range a.Seats {
		if s.Number == number {
			return s, true
		}
	}
	return Seat{}, false
}

// Clone returns a deep copy of the area, including its seats.
func (a SeatArea) Clone() SeatArea {
	out := a
	out.Pros = slices.Clone(a.Pros)
	out.Cons = slices.Clone(a.Cons)
	out.Seats = slices.Clone(a.Seats)
	return out
}
