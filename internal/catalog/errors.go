// Package catalog owns the in-memory catalog of concerts and its JSON
// persistence.  This file defines the error values shared with higher
// layers.  Sentinel values let handlers distinguish a structural miss
// (stale identity, translated to HTTP 404) from a seat conflict (seats
// not in a bookable state, translated to HTTP 409).
package catalog

import (
	"errors"
	"fmt"
)

// ErrConcertNotFound is returned when no concert with the requested ID
// exists in the catalog.
var ErrConcertNotFound = errors.New("concert not found")

// ErrDateNotFound is returned when the requested concert has no
// available date matching the given full date string.
var ErrDateNotFound = errors.New("available date not found")

// ErrTimeSlotNotFound is returned when the requested date has no time
// slot matching the given display string.
var ErrTimeSlotNotFound = errors.New("time slot not found")

// ErrAreaNotFound is returned when the requested time slot has no seat
// area with the given code.
var ErrAreaNotFound = errors.New("seat area not found")

// ErrNoSeatsRequested is returned when a seat status operation is
// attempted with an empty seat number set.
var ErrNoSeatsRequested = errors.New("no seats requested")

// SeatConflictError reports the seat numbers that prevented a status
// transition: seats that do not exist in the area or are not in the
// required source status (for example already reserved).  The operation
// that produced it performed no mutation.
type SeatConflictError struct {
	Seats []int
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats not available: %v", e.Seats)
}
