package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/concert-ticket-booking/internal/model"
)

func fixtureArea() model.SeatArea {
	return model.SeatArea{
		Code:  "A",
		Price: 350,
		Seats: []model.Seat{
			{Number: 1, Status: model.SeatAvailable},
			{Number: 2, Status: model.SeatAvailable},
			{Number: 3, Status: model.SeatReserved},
		},
	}
}

func fixtureDate() model.AvailableDate {
	return model.AvailableDate{Date: "17", Month: "August", Year: "2025"}
}

func fixtureSlot() model.TimeSlot {
	return model.TimeSlot{StartTime: "2:00PM", EndTime: "4:00PM"}
}

func TestDraft_SelectSeatsRequiresArea(t *testing.T) {
	var d Draft
	err := d.SelectSeats([]model.Seat{{Number: 1}})
	assert.Error(t, err)
}

func TestDraft_SelectSeatsRejectsForeignSeat(t *testing.T) {
	var d Draft
	d.SelectArea(fixtureArea())
	err := d.SelectSeats([]model.Seat{{Number: 1}, {Number: 99}})
	assert.ErrorContains(t, err, "99")
}

func TestDraft_FinalizeNilWhileIncomplete(t *testing.T) {
	concert := model.Concert{Title: "Gala"}

	var d Draft
	assert.Nil(t, d.Finalize(concert))

	d.SelectDate(fixtureDate())
	assert.Nil(t, d.Finalize(concert))

	d.SelectTimeSlot(fixtureSlot())
	assert.Nil(t, d.Finalize(concert))

	d.SelectArea(fixtureArea())
	assert.Nil(t, d.Finalize(concert), "no seats selected yet")
}

func TestDraft_FinalizeBuildsSnapshotAndResets(t *testing.T) {
	concert := model.Concert{Title: "Gala"}

	var d Draft
	d.SelectDate(fixtureDate())
	d.SelectTimeSlot(fixtureSlot())
	d.SelectArea(fixtureArea())
	require.NoError(t, d.SelectSeats([]model.Seat{{Number: 1}, {Number: 2}}))
	d.SetCustomer(model.Customer{Name: "Jane Doe"})

	b := d.Finalize(concert)
	require.NotNil(t, b)
	assert.Equal(t, "Gala", b.ConcertTitle)
	assert.Equal(t, "17 August 2025", b.FullDateString())
	assert.Equal(t, "2:00PM - 4:00PM", b.TimeSlot)
	assert.Equal(t, "A", b.AreaCode)
	assert.Equal(t, []int{1, 2}, b.SeatNumbers)
	assert.Equal(t, 700, b.TotalPrice)
	assert.Equal(t, "Jane Doe", b.Customer.Name)

	// Finalize consumed the draft.
	assert.Nil(t, d.Finalize(concert))
	_, ok := d.SeatPath("c1")
	assert.False(t, ok)
}

func TestDraft_SeatPath(t *testing.T) {
	var d Draft
	_, ok := d.SeatPath("c1")
	assert.False(t, ok)

	d.SelectDate(fixtureDate())
	d.SelectTimeSlot(fixtureSlot())
	d.SelectArea(fixtureArea())

	p, ok := d.SeatPath("c1")
	require.True(t, ok)
	assert.Equal(t, "c1", p.ConcertID)
	assert.Equal(t, "17 August 2025", p.DateID)
	assert.Equal(t, "2:00PM - 4:00PM", p.SlotID)
	assert.Equal(t, "A", p.AreaCode)
}

func TestDraft_Reset(t *testing.T) {
	var d Draft
	d.SelectDate(fixtureDate())
	d.SelectTimeSlot(fixtureSlot())
	d.SelectArea(fixtureArea())
	require.NoError(t, d.SelectSeats([]model.Seat{{Number: 1}}))
	d.SetCustomer(model.Customer{Name: "Jane Doe"})

	d.Reset()

	_, ok := d.SeatPath("c1")
	assert.False(t, ok)
	assert.Nil(t, d.Finalize(model.Concert{}))
	assert.Error(t, d.SelectSeats([]model.Seat{{Number: 1}}))
}
