package model

import "slices"

// Concert is one event in the catalog together with its descriptive
// programme and the dates it can be booked on.
//
// Fields:
//
//	ID             – stable identifier assigned in the seed data.
//	PerformerName  – headline performer.
//	ComposerName   – featured composer.
//	StartDate      – first performance day, display string.
//	EndDate        – last performance date, display string.
//	Title          – concert title.
//	Description    – marketing copy.
//	Programme      – ordered programme lines.
//	ArtistInfo     – ordered artist credit lines.
//	AvailableDates – ordered bookable dates.
type Concert struct {
	ID             string          `json:"id"`
	PerformerName  string          `json:"performerName"`
	ComposerName   string          `json:"composerName"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Programme      []string        `json:"programme"`
	ArtistInfo     []string        `json:"artistInfo"`
	AvailableDates []AvailableDate `json:"availableDates"`
}

// DateByFullString returns the available date whose full date string
// matches and whether it exists for this concert.
func (c Concert) DateByFullString(full string) (AvailableDate, bool) {
	for _, d := range c.AvailableDates {
		if d.FullDateString() == full {
			return d, true
		}
	}
	return AvailableDate{}, false
}

// Clone returns a deep copy of the concert and everything under it.
func (c Concert) Clone() Concert {
	out := c
	out.Programme = slices.Clone(c.Programme)
	out.ArtistInfo = slices.Clone(c.ArtistInfo)
	out.AvailableDates = make([]AvailableDate, len(c.AvailableDates))
	for i, d := range c.AvailableDates {
		out.AvailableDates[i] = d.Clone()
	}
	return out
}
