package memstore

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type unitOfWork struct {
	store *Store
}

// UnitOfWork returns a UnitOfWork over s. Inserts are staged and applied
// only when fn succeeds, so a failed or cancelled admission leaves no trace.
func (s *Store) UnitOfWork() shared.UnitOfWork {
	return &unitOfWork{store: s}
}

func (u *unitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: u.store}
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr("commit aborted", err)
	}

	u.store.mu.Lock()
	u.store.bookings = append(u.store.bookings, tx.staged...)
	u.store.mu.Unlock()
	return nil
}

type memTx struct {
	store  *Store
	held   []chan struct{}
	staged []*booking.Booking
}

// LockRoom blocks until the room lock is free or ctx is done.
func (t *memTx) LockRoom(ctx context.Context, roomID uuid.UUID) error {
	lock := t.store.roomLock(roomID)
	select {
	case lock <- struct{}{}:
		t.held = append(t.held, lock)
		return nil
	case <-ctx.Done():
		return infra.WrapRepoErr("failed to lock room", ctx.Err())
	}
}

func (t *memTx) releaseLocks() {
	for i := len(t.held) - 1; i >= 0; i-- {
		<-t.held[i]
	}
	t.held = nil
}

func (t *memTx) RoomExists(ctx context.Context, roomID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, infra.WrapRepoErr("failed to check room existence", err)
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	_, ok := t.store.roomIndex[roomID]
	return ok, nil
}

func (t *memTx) Bookings() shared.BookingRepository {
	return t
}

func (t *memTx) FindOverlapping(ctx context.Context, roomID uuid.UUID, slot booking.TimeSlot) (*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping booking", err)
	}
	for _, b := range t.staged {
		if b.ConflictsWith(roomID, slot) {
			return b, nil
		}
	}

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	for _, b := range t.store.bookings {
		if b.ConflictsWith(roomID, slot) {
			return b, nil
		}
	}
	return nil, nil
}

// Insert stages b. The room must be locked by this transaction, mirroring
// the exclusion constraint of the postgres store.
func (t *memTx) Insert(ctx context.Context, b *booking.Booking) error {
	if !t.holds(b.RoomID()) {
		return infra.WrapRepoErr("insert without room lock", nil, infra.KindDBFailure)
	}
	existing, err := t.FindOverlapping(ctx, b.RoomID(), b.TimeSlot())
	if err != nil {
		return err
	}
	if existing != nil {
		return infra.WrapRepoErr("overlapping booking", nil, infra.KindConflict)
	}
	t.staged = append(t.staged, b)
	return nil
}

func (t *memTx) holds(roomID uuid.UUID) bool {
	lock := t.store.roomLock(roomID)
	for _, h := range t.held {
		if h == lock {
			return true
		}
	}
	return false
}

func (s *Store) roomLock(roomID uuid.UUID) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[roomID]
	if !ok {
		lock = make(chan struct{}, 1)
		s.locks[roomID] = lock
	}
	return lock
}
