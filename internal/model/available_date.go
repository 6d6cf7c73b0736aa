package model

// AvailableDate is one calendar date on which a concert performs.  The
// date is kept as separate display components rather than a time.Time
// because the app renders and persists them as free text.
//
// Fields:
//
//	Date      – day of month as a string, e.g. "17".
//	Month     – month name, e.g. "August".
//	Year      – four digit year, e.g. "2025".
//	TimeSlots – ordered performance windows on this date.
type AvailableDate struct {
	Date      string     `json:"date"`
	Month     string     `json:"month"`
	Year      string     `json:"year"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// FullDateString renders the full date, e.g. "17 August 2025".  It is
// also the date's identity within its concert.
func (d AvailableDate) FullDateString() string {
	return d.Date + " " + d.Month + " " + d.Year
}

// SlotByDisplay returns the time slot whose display string matches and
// whether it exists on this date.
func (d AvailableDate) SlotByDisplay(display string) (TimeSlot, bool) {
	for _, t := range d.TimeSlots {
		if t.DisplayString() == display {
			return t, true
		}
	}
	return TimeSlot{}, false
}

// Clone returns a deep copy of the date and everything under it.
func (d AvailableDate) Clone() AvailableDate {
	out := d
	out.TimeSlots = make([]TimeSlot, len(d.TimeSlots))
	for i, t := range d.TimeSlots {
		out.TimeSlots[i] = t.Clone()
	}
	return out
}
