// Package engine implements the reservation engine: validated seat
// status transitions over the catalog and the booking commit protocol
// that keeps seat state and the booking ledger from drifting apart.
package engine

import (
	"context"
	"fmt"

	"github.com/iliyamo/concert-ticket-booking/internal/catalog"
	"github.com/iliyamo/concert-ticket-booking/internal/model"
)

// Catalog is the slice of the catalog store the engine depends on.
// Narrow interfaces keep the engine testable with failing fakes.
type Catalog interface {
	Transition(p catalog.SeatPath, numbers []int, to model.SeatStatus) (map[int]model.SeatStatus, error)
	Restore(p catalog.SeatPath, prev map[int]model.SeatStatus)
	Save(ctx context.Context) error
}

// Ledger appends confirmed bookings to durable storage.
type Ledger interface {
	Append(ctx context.Context, b model.Booking) error
}

// Engine performs seat status transitions and booking confirmation.
// All failures are returned as values; none leave partial state behind
// and none are fatal to the process.
type Engine struct {
	catalog Catalog
	ledger  Ledger
}

// New constructs an Engine.  Both dependencies must be non-nil.
func New(c Catalog, l Ledger) *Engine {
	if c == nil || l == nil {
		panic("nil dependency passed to engine.New")
	}
	return &Engine{catalog: c, ledger: l}
}

// ApplySeatStatus transitions the requested seats at the given path to
// a new status and persists the updated catalog.  The seat set must be
// non-empty and, when reserving, every seat must currently be
// available; otherwise the call fails with no mutation and reports the
// offending seat numbers.  On success it returns the number of seats
// changed.  If persisting fails the in-memory transition is rolled
// back so state never drifts from storage.
func (e *Engine) ApplySeatStatus(ctx context.Context, p catalog.SeatPath, numbers []int, to model.SeatStatus) (int, error) {
	prev, err := e.catalog.Transition(p, numbers, to)
	if err != nil {
		return 0, err
	}
	if err := e.catalog.Save(ctx); err != nil {
		e.catalog.Restore(p, prev)
		return 0, fmt.Errorf("persist catalog: %w", err)
	}
	return len(prev), nil
}

// ConfirmBooking commits one booking: (1) the booked seats transition
// to reserved in memory, (2) the updated catalog is persisted, (3) the
// booking is appended to the ledger.  Success is reported only after
// step 3.  A failure at step 2 or 3 rolls the seat transition back (and
// after a post-save ledger failure re-saves the restored catalog), so a
// reserved seat never exists without a corresponding booking record.
func (e *Engine) ConfirmBooking(ctx context.Context, p catalog.SeatPath, b model.Booking) error {
	prev, err := e.catalog.Transition(p, b.SeatNumbers, model.SeatReserved)
	if err != nil {
		return err
	}
	if err := e.catalog.Save(ctx); err != nil {
		e.catalog.Restore(p, prev)
		return fmt.Errorf("persist catalog: %w", err)
	}
	if err := e.ledger.Append(ctx, b); err != nil {
		e.catalog.Restore(p, prev)
		if saveErr := e.catalog.Save(ctx); saveErr != nil {
			return fmt.Errorf("append booking: %w (catalog rollback unsaved: %v)", err, saveErr)
		}
		return fmt.Errorf("append booking: %w", err)
	}
	return nil
}
