package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/iliyamo/concert-ticket-booking/internal/model"
)

// SeatPath fully qualifies one seat area inside the catalog.  Every
// component is a stable identity, never a positional index: the concert
// ID from the seed data, the date's full string ("17 August 2025"), the
// slot's display string ("2:00PM - 4:00PM") and the area code.
type SeatPath struct {
	ConcertID string
	DateID    string
	SlotID    string
	AreaCode  string
}

// seatKey addresses one seat in the flat index.
type seatKey struct {
	concert string
	date    string
	slot    string
	area    string
	number  int
}

// Store owns the catalog for the lifetime of the process.  It is
// constructed once at startup and injected into the engine and
// handlers.  The nested concert structure is kept for display and
// serialization; a flat seat index over it makes status lookups and
// transitions direct instead of multi-level loop-and-match.
//
// The catalog is persisted as a whole after each mutation.  A single
// mutex serializes access: the booking flow assumes one user, but the
// HTTP process serves handlers concurrently.
type Store struct {
	mu       sync.Mutex
	path     string
	concerts []model.Concert
	index    map[seatKey]*model.Seat
}

// Open loads the catalog store.  On first run, when no writable copy
// exists at dataPath, the bundled seed file is copied there; afterwards
// the writable copy is always the source of truth.  Any valid initial
// seat status distribution is accepted.
func Open(dataPath, seedPath string) (*Store, error) {
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		seed, err := os.ReadFile(seedPath)
		if err != nil {
			return nil, fmt.Errorf("read seed catalog: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(dataPath), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		if err := writeAtomic(dataPath, seed); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}
	s := &Store{path: dataPath}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the writable catalog file and rebuilds the seat
// index, discarding any unsaved in-memory state.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	var concerts []model.Concert
	if err := json.Unmarshal(data, &concerts); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.concerts = concerts
	s.rebuildIndex()
	return nil
}

// rebuildIndex flattens the nested structure into the seat index.
// Callers must hold s.mu.
func (s *Store) rebuildIndex() {
	s.index = make(map[seatKey]*model.Seat)
	for ci := range s.concerts {
		c := &s.concerts[ci]
		for di := range c.AvailableDates {
			d := &c.AvailableDates[di]
			for ti := range d.TimeSlots {
				t := &d.TimeSlots[ti]
				for ai := range t.SeatAreas {
					a := &t.SeatAreas[ai]
					for si := range a.Seats {
						seat := &a.Seats[si]
						key := seatKey{c.ID, d.FullDateString(), t.DisplayString(), a.Code, seat.Number}
						s.index[key] = seat
					}
				}
			}
		}
	}
}

// Concerts returns a deep copy of the full catalog in seed order.
func (s *Store) Concerts() []model.Concert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Concert, len(s.concerts))
	for i, c := range s.concerts {
		out[i] = c.Clone()
	}
	return out
}

// Concert returns a deep copy of the concert with the given ID.
func (s *Store) Concert(id string) (model.Concert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.concerts {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return model.Concert{}, ErrConcertNotFound
}

// Area returns a deep copy of the seat area at the given path,
// including current seat statuses.
func (s *Store) Area(p SeatPath) (model.SeatArea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	area, err := s.locateArea(p)
	if err != nil {
		return model.SeatArea{}, err
	}
	return area.Clone(), nil
}

// locateArea walks concert, date, slot and area by identity and returns
// a pointer into the live structure.  Callers must hold s.mu.
func (s *Store) locateArea(p SeatPath) (*model.SeatArea, error) {
	for ci := range s.concerts {
		c := &s.concerts[ci]
		if c.ID != p.ConcertID {
			continue
		}
		for di := range c.AvailableDates {
			d := &c.AvailableDates[di]
			if d.FullDateString() != p.DateID {
				continue
			}
			for ti := range d.TimeSlots {
				t := &d.TimeSlots[ti]
				if t.DisplayString() != p.SlotID {
					continue
				}
				for ai := range t.SeatAreas {
					if t.SeatAreas[ai].Code == p.AreaCode {
						return &t.SeatAreas[ai], nil
					}
				}
				return nil, ErrAreaNotFound
			}
			return nil, ErrTimeSlotNotFound
		}
		return nil, ErrDateNotFound
	}
	return nil, ErrConcertNotFound
}

// Transition moves the requested seats at the given path to a new
// status.  Validation happens before any mutation: when the target is
// reserved, every requested seat must currently be available; seats
// that do not exist or are not eligible fail the whole call with a
// SeatConflictError listing them, leaving the catalog untouched.  Only
// seats on the fully qualified path are touched.  On success the prior
// status of every changed seat is returned so the caller can roll the
// transition back with Restore.
func (s *Store) Transition(p SeatPath, numbers []int, to model.SeatStatus) (map[int]model.SeatStatus, error) {
	if len(numbers) == 0 {
		return nil, ErrNoSeatsRequested
	}
	if !to.Valid() {
		return nil, fmt.Errorf("invalid seat status %q", to)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.locateArea(p); err != nil {
		return nil, err
	}
	// Validate-then-commit: collect every ineligible number first.
	var conflicts []int
	for _, n := range numbers {
		seat, ok := s.index[seatKey{p.ConcertID, p.DateID, p.SlotID, p.AreaCode, n}]
		switch {
		case !ok:
			conflicts = append(conflicts, n)
		case to == model.SeatReserved && seat.Status != model.SeatAvailable:
			conflicts = append(conflicts, n)
		}
	}
	if len(conflicts) > 0 {
		return nil, &SeatConflictError{Seats: conflicts}
	}
	prev := make(map[int]model.SeatStatus, len(numbers))
	for _, n := range numbers {
		seat := s.index[seatKey{p.ConcertID, p.DateID, p.SlotID, p.AreaCode, n}]
		if _, done := prev[n]; done {
			continue
		}
		prev[n] = seat.Status
		seat.Status = to
	}
	return prev, nil
}

// Restore reverts seats at the given path to the statuses captured by a
// previous Transition.  Unknown numbers are ignored.
func (s *Store) Restore(p SeatPath, prev map[int]model.SeatStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n, status := range prev {
		if seat, ok := s.index[seatKey{p.ConcertID, p.DateID, p.SlotID, p.AreaCode, n}]; ok {
			seat.Status = status
		}
	}
}

// Save re-serializes the whole catalog to the writable copy.  The write
// is atomic: a temp file in the same directory is renamed over the
// destination, so readers never observe a partial catalog.
func (s *Store) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	data, err := json.MarshalIndent(s.concerts, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".catalog-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
