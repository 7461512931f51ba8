package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/room"
	"facility-booking/internal/infra"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store is a single-process catalog and booking store. Admissions for one
// room are serialized by a per-room lock held for the whole unit of work.
type Store struct {
	mu        sync.RWMutex
	rooms     []*room.Room
	roomIndex map[uuid.UUID]*room.Room
	equipment []room.Equipment
	sizes     []room.Size
	bookings  []*booking.Booking

	locksMu sync.Mutex
	locks   map[uuid.UUID]chan struct{}
}

func New() *Store {
	return &Store{
		roomIndex: make(map[uuid.UUID]*room.Room),
		locks:     make(map[uuid.UUID]chan struct{}),
	}
}

func (s *Store) AddRoom(r *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append(s.rooms, r)
	s.roomIndex[r.ID()] = r
}

func (s *Store) AddEquipment(e room.Equipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipment = append(s.equipment, e)
}

func (s *Store) AddSize(size room.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sizes = append(s.sizes, size)
}

// AddBooking stores b without admission checks.
func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
}

// ---- CatalogReadStore

func (s *Store) FindAllRooms(ctx context.Context, sortByName bool) ([]*room.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find rooms", err)
	}
	s.mu.RLock()
	out := append([]*room.Room(nil), s.rooms...)
	s.mu.RUnlock()

	if sortByName {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	}
	return out, nil
}

func (s *Store) FindRoomByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.roomIndex[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return r, nil
}

func (s *Store) FindActiveEquipment(ctx context.Context, roomID *uuid.UUID) ([]room.Equipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find active equipment", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]room.Equipment, 0, len(s.equipment))
	for _, e := range s.equipment {
		if !e.Active() {
			continue
		}
		if roomID != nil && e.RoomID() != *roomID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Store) FindRoomSizes(ctx context.Context) ([]room.Size, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find room sizes", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]room.Size(nil), s.sizes...), nil
}

func (s *Store) FindRoomSizeByID(ctx context.Context, id uuid.UUID) (*room.Size, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find room size by ID", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, size := range s.sizes {
		if size.ID() == id {
			found := size
			return &found, nil
		}
	}
	return nil, infra.WrapRepoErr("room size not found", nil, infra.KindNotFound)
}

// ---- BookingReadStore

func (s *Store) FindBookingsAfter(ctx context.Context, after time.Time) ([]*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.TimeSlot().End().After(after) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimeSlot().Start().Before(out[j].TimeSlot().Start())
	})
	return out, nil
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

var (
	_ shared.CatalogReadStore = (*Store)(nil)
	_ shared.BookingReadStore = (*Store)(nil)
)
