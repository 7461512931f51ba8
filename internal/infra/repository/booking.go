package repository

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository/converter"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	LockRoomForBooking(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) error
	RoomExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	FindOverlappingBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOverlappingBookingParams) (sqlc.Booking, error)
	InsertBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingParams) error
}

// BookingRepository runs the admission statements on one transaction.
type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// LockRoom takes a transaction-scoped advisory lock keyed on the room.
func (r *BookingRepository) LockRoom(ctx context.Context, roomID uuid.UUID) error {
	if err := r.queries.LockRoomForBooking(ctx, r.db, roomID); err != nil {
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}

func (r *BookingRepository) RoomExists(ctx context.Context, roomID uuid.UUID) (bool, error) {
	exists, err := r.queries.RoomExists(ctx, r.db, roomID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room existence", err)
	}
	return exists, nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, slot booking.TimeSlot) (*booking.Booking, error) {
	row, err := r.queries.FindOverlappingBooking(ctx, r.db, sqlc.FindOverlappingBookingParams{
		RoomID:    roomID,
		StartTime: pgconv.TimeToPgtype(slot.Start()),
		EndTime:   pgconv.TimeToPgtype(slot.End()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find overlapping booking", err)
	}

	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.InsertBooking(ctx, r.db, converter.BookingToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}
