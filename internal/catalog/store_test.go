package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/concert-ticket-booking/internal/model"
)

func fixtureSeats(n int) []model.Seat {
	out := make([]model.Seat, n)
	for i := range out {
		out[i] = model.Seat{Number: i + 1, Status: model.SeatAvailable}
	}
	return out
}

func fixtureConcerts() []model.Concert {
	return []model.Concert{{
		ID:    "winter-gala",
		Title: "Winter Gala",
		AvailableDates: []model.AvailableDate{
			{
				Date: "5", Month: "June", Year: "2025",
				TimeSlots: []model.TimeSlot{
					{
						StartTime: "7:00PM", EndTime: "9:00PM",
						SeatAreas: []model.SeatArea{
							{Code: "A", Price: 200, Seats: fixtureSeats(6)},
							{Code: "B", Price: 150, Seats: fixtureSeats(4)},
						},
					},
					{
						StartTime: "9:30PM", EndTime: "11:30PM",
						SeatAreas: []model.SeatArea{
							{Code: "A", Price: 200, Seats: fixtureSeats(6)},
						},
					},
				},
			},
		},
	}}
}

func writeSeed(t *testing.T, dir string) string {
	t.Helper()
	data, err := json.Marshal(fixtureConcerts())
	require.NoError(t, err)
	path := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func galaPath() SeatPath {
	return SeatPath{ConcertID: "winter-gala", DateID: "5 June 2025", SlotID: "7:00PM - 9:00PM", AreaCode: "A"}
}

func TestOpen_CopiesSeedOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	seed := writeSeed(t, dir)
	dataPath := filepath.Join(dir, "live", "concerts.json")

	store, err := Open(dataPath, seed)
	require.NoError(t, err)

	_, statErr := os.Stat(dataPath)
	require.NoError(t, statErr)
	concerts := store.Concerts()
	require.Len(t, concerts, 1)
	assert.Equal(t, "Winter Gala", concerts[0].Title)
}

func TestOpen_MutationsSurviveReopenButNotTheSeed(t *testing.T) {
	dir := t.TempDir()
	seed := writeSeed(t, dir)
	dataPath := filepath.Join(dir, "concerts.json")

	store, err := Open(dataPath, seed)
	require.NoError(t, err)
	_, err = store.Transition(galaPath(), []int{1}, model.SeatReserved)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background()))

	reopened, err := Open(dataPath, seed)
	require.NoError(t, err)
	area, err := reopened.Area(galaPath())
	require.NoError(t, err)
	seat, ok := area.SeatByNumber(1)
	require.True(t, ok)
	assert.Equal(t, model.SeatReserved, seat.Status)

	var seeded []model.Concert
	raw, err := os.ReadFile(seed)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &seeded))
	assert.Equal(t, model.SeatAvailable, seeded[0].AvailableDates[0].TimeSlots[0].SeatAreas[0].Seats[0].Status)
}

func TestSaveReload_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "concerts.json"), writeSeed(t, dir))
	require.NoError(t, err)

	before := store.Concerts()
	require.NoError(t, store.Save(context.Background()))
	require.NoError(t, store.Reload())
	assert.Equal(t, before, store.Concerts())
}

func TestTransition_ConflictLeavesEverythingUntouched(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "concerts.json"), writeSeed(t, dir))
	require.NoError(t, err)

	_, err = store.Transition(galaPath(), []int{2}, model.SeatReserved)
	require.NoError(t, err)

	// 1 is free, 2 is taken, 99 does not exist: all-or-nothing means
	// seat 1 must stay available.
	_, err = store.Transition(galaPath(), []int{1, 2, 99}, model.SeatReserved)
	var conflict *SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.ElementsMatch(t, []int{2, 99}, conflict.Seats)

	area, lookErr := store.Area(galaPath())
	require.NoError(t, lookErr)
	seat, _ := area.SeatByNumber(1)
	assert.Equal(t, model.SeatAvailable, seat.Status)
}

func TestTransition_SameNumberOtherSlotUnaffected(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "concerts.json"), writeSeed(t, dir))
	require.NoError(t, err)

	_, err = store.Transition(galaPath(), []int{3}, model.SeatReserved)
	require.NoError(t, err)

	late := galaPath()
	late.SlotID = "9:30PM - 11:30PM"
	area, err := store.Area(late)
	require.NoError(t, err)
	seat, ok := area.SeatByNumber(3)
	require.True(t, ok)
	assert.Equal(t, model.SeatAvailable, seat.Status)
}

func TestTransition_ReportsPreviousStatuses(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "concerts.json"), writeSeed(t, dir))
	require.NoError(t, err)

	prev, err := store.Transition(galaPath(), []int{1, 2}, model.SeatReserved)
	require.NoError(t, err)
	assert.Equal(t, map[int]model.SeatStatus{
		1: model.SeatAvailable,
		2: model.SeatAvailable,
	}, prev)
}

func TestRestore_RevertsTransition(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "concerts.json"), writeSeed(t, dir))
	require.NoError(t, err)

	prev, err := store.Transition(galaPath(), []int{4, 5}, model.SeatReserved)
	require.NoError(t, err)
	store.Restore(galaPath(), prev)

	area, err := store.Area(galaPath())
	require.NoError(t, err)
	for _, n := range []int{4, 5} {
		seat, ok := area.SeatByNumber(n)
		require.True(t, ok)
		assert.Equal(t, model.SeatAvailable, seat.Status)
	}
}

func TestTransition_InvalidStatusRejected(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "concerts.json"), writeSeed(t, dir))
	require.NoError(t, err)

	_, err = store.Transition(galaPath(), []int{1}, model.SeatStatus("pending"))
	assert.Error(t, err)
}

func TestArea_NotFoundSentinels(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "concerts.json"), writeSeed(t, dir))
	require.NoError(t, err)

	p := galaPath()
	p.ConcertID = "missing"
	_, err = store.Area(p)
	assert.ErrorIs(t, err, ErrConcertNotFound)

	p = galaPath()
	p.AreaCode = "Z"
	_, err = store.Area(p)
	assert.ErrorIs(t, err, ErrAreaNotFound)

	_, err = store.Concert("missing")
	assert.ErrorIs(t, err, ErrConcertNotFound)
}

func TestConcerts_ReturnsDeepCopies(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "concerts.json"), writeSeed(t, dir))
	require.NoError(t, err)

	snapshot := store.Concerts()
	snapshot[0].AvailableDates[0].TimeSlots[0].SeatAreas[0].Seats[0].Status = model.SeatReserved

	area, err := store.Area(galaPath())
	require.NoError(t, err)
	seat, _ := area.SeatByNumber(1)
	assert.Equal(t, model.SeatAvailable, seat.Status)
}
