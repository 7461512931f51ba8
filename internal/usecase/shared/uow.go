package shared

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/room"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction. Retryable store conflicts are retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	// LockRoom serializes admissions for one room until the transaction ends.
	LockRoom(ctx context.Context, roomID uuid.UUID) error
	RoomExists(ctx context.Context, roomID uuid.UUID) (bool, error)
	Bookings() BookingRepository
}

type BookingRepository interface {
	// FindOverlapping returns nil when no booking of the room overlaps slot.
	FindOverlapping(ctx context.Context, roomID uuid.UUID, slot booking.TimeSlot) (*booking.Booking, error)
	Insert(ctx context.Context, b *booking.Booking) error
}

type CatalogReadStore interface {
	FindAllRooms(ctx context.Context, sortByName bool) ([]*room.Room, error)
	FindRoomByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	// FindActiveEquipment returns active equipment, limited to one room when roomID is set.
	FindActiveEquipment(ctx context.Context, roomID *uuid.UUID) ([]room.Equipment, error)
	FindRoomSizes(ctx context.Context) ([]room.Size, error)
	FindRoomSizeByID(ctx context.Context, id uuid.UUID) (*room.Size, error)
}

type BookingReadStore interface {
	// FindBookingsAfter returns bookings that end after the given instant.
	FindBookingsAfter(ctx context.Context, after time.Time) ([]*booking.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}
