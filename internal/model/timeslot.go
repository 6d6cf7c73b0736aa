package model

// TimeSlot is one performance window on a date.  It owns its own seat
// areas, so seat state never leaks between slots.
//
// Fields:
//
//	StartTime – display string such as "2:00PM".
//	EndTime   – display string such as "4:00PM".
//	SeatAreas – ordered areas, codes unique within the slot.
type TimeSlot struct {
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	SeatAreas []SeatArea `json:"seatAreas"`
}

// DisplayString renders the slot the way it is shown to customers and
// recorded on bookings, e.g. "2:00PM - 4:00PM".  It is also the slot's
// identity within its date.
func (t TimeSlot) DisplayString() string {
	return t.StartTime + " - " + t.EndTime
}

// HasAvailability reports whether any seat anywhere in the slot can
// still be booked.
func (t TimeSlot) HasAvailability() bool {
	for _, area := range t.SeatAreas {
		for _, seat := range area.Seats {
			if seat.Status == SeatAvailable {
				return true
			}
		}
	}
	return false
}

// IsFullyBooked reports whether every seat in every area of the slot is
// reserved.  A slot containing unavailable seats is not fully booked,
// even though those seats cannot be sold.
func (t TimeSlot) IsFullyBooked() bool {
	for _, area := range t.SeatAreas {
		for _, seat := range area.Seats {
			if seat.Status != SeatReserved {
				return false
			}
		}
	}
	return true
}

// AreaByCode returns the area with the given code and whether it exists.
func (t TimeSlot) AreaByCode(code string) (SeatArea, bool) {
	for _, a := range t.SeatAreas {
		if a.Code == code {
			return a, true
		}
	}
	return SeatArea{}, false
}

// Clone returns a deep copy of the slot and everything under it.
func (t TimeSlot) Clone() TimeSlot {
	out := t
	out.SeatAreas = make([]SeatArea, len(t.SeatAreas))
	for i, a := range t.SeatAreas {
		out.SeatAreas[i] = a.Clone()
	}
	return out
}
