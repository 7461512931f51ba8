//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/room"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/memstore"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newBooking(t *testing.T, roomID uuid.UUID, from time.Time) *booking.Booking {
	t.Helper()
	slot, err := booking.NewTimeSlot(from, from.Add(time.Hour))
	require.NoError(t, err)
	b, err := booking.NewBooking(roomID, uuid.New(), slot, time.Hour, start)
	require.NoError(t, err)
	return b
}

func TestStore_Catalog(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	b := room.Reconstruct(uuid.New(), "Birch", 8, nil)
	a := room.Reconstruct(uuid.New(), "Aspen", 4, nil)
	s.AddRoom(b)
	s.AddRoom(a)
	s.AddEquipment(room.ReconstructEquipment(uuid.New(), a.ID(), "tv", "display", true))
	s.AddEquipment(room.ReconstructEquipment(uuid.New(), b.ID(), "old tv", "display", false))

	sorted, err := s.FindAllRooms(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Aspen", sorted[0].Name())

	unsorted, err := s.FindAllRooms(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "Birch", unsorted[0].Name())

	all, err := s.FindActiveEquipment(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	bID := b.ID()
	forB, err := s.FindActiveEquipment(ctx, &bID)
	require.NoError(t, err)
	assert.Empty(t, forB)

	_, err = s.FindRoomByID(ctx, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestStore_FindBookingsAfter(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	roomID := uuid.New()
	past := newBooking(t, roomID, start.Add(-2*time.Hour))
	running := newBooking(t, roomID, start.Add(-30*time.Minute))
	future := newBooking(t, roomID, start.Add(3*time.Hour))
	s.AddBooking(future)
	s.AddBooking(past)
	s.AddBooking(running)

	found, err := s.FindBookingsAfter(ctx, start)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, running.ID(), found[0].ID())
	assert.Equal(t, future.ID(), found[1].ID())
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("insert without lock is refused", func(t *testing.T) {
		s := memstore.New()
		err := s.UnitOfWork().Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Bookings().Insert(ctx, newBooking(t, uuid.New(), start))
		})
		require.Error(t, err)
	})

	t.Run("overlapping insert is a conflict", func(t *testing.T) {
		s := memstore.New()
		roomID := uuid.New()
		s.AddBooking(newBooking(t, roomID, start))

		err := s.UnitOfWork().Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			require.NoError(t, tx.LockRoom(ctx, roomID))
			return tx.Bookings().Insert(ctx, newBooking(t, roomID, start.Add(30*time.Minute)))
		})
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("failed unit leaves nothing behind", func(t *testing.T) {
		s := memstore.New()
		roomID := uuid.New()

		err := s.UnitOfWork().Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			require.NoError(t, tx.LockRoom(ctx, roomID))
			require.NoError(t, tx.Bookings().Insert(ctx, newBooking(t, roomID, start)))
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		found, err := s.FindBookingsAfter(ctx, start.Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("lock is released after the unit ends", func(t *testing.T) {
		s := memstore.New()
		roomID := uuid.New()
		lockOnly := func(ctx context.Context, tx shared.Tx) error { return tx.LockRoom(ctx, roomID) }

		require.NoError(t, s.UnitOfWork().Within(ctx, lockOnly))

		timeoutCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		require.NoError(t, s.UnitOfWork().Within(timeoutCtx, lockOnly))
	})

	t.Run("waiting for a held lock honours the deadline", func(t *testing.T) {
		s := memstore.New()
		roomID := uuid.New()
		held := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_ = s.UnitOfWork().Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				if err := tx.LockRoom(ctx, roomID); err != nil {
					return err
				}
				close(held)
				<-release
				return nil
			})
		}()
		<-held
		defer close(release)

		timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		err := s.UnitOfWork().Within(timeoutCtx, func(ctx context.Context, tx shared.Tx) error {
			return tx.LockRoom(ctx, roomID)
		})
		assert.True(t, infra.IsKind(err, infra.KindUnavailable), "got %v", err)
	})
}
