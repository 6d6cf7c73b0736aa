// Package ledger stores confirmed bookings durably.  The ledger is
// append-only and lives under a single namespaced key in simple
// key-value storage, decoupled from the live catalog: reseeding or
// deleting the catalog never touches booking history.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iliyamo/concert-ticket-booking/internal/model"
)

// KV is the minimal key-value contract the ledger needs.  Get returns
// (nil, nil) when the key has never been written.  Put must replace the
// value atomically; readers never see a partial write.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store is the booking ledger.  The whole booking list is serialized as
// one JSON array under Key; every append is a read-modify-rewrite of
// that list.
type Store struct {
	kv  KV
	key string
}

// New constructs a ledger over the given KV backend.  The namespace
// prefixes the storage key, e.g. "booking_system" yields
// "booking_system:bookings".
func New(kv KV, namespace string) *Store {
	return &Store{kv: kv, key: namespace + ":bookings"}
}

// Append adds one booking to the end of the history and rewrites the
// stored list.  Serialization and write failures are returned to the
// caller, never swallowed; the booking engine treats them as a failed
// confirmation.
func (s *Store) Append(ctx context.Context, b model.Booking) error {
	bookings, err := s.ListAll(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, b)
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("write bookings: %w", err)
	}
	return nil
}

// ListAll returns the full booking history in insertion order, oldest
// first.  An empty slice is returned when nothing has been booked yet.
func (s *Store) ListAll(ctx context.Context) ([]model.Booking, error) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}
	if len(data) == 0 {
		return []model.Booking{}, nil
	}
	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}
