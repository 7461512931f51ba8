package readstore

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository/converter"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingsEndingAfter(ctx context.Context, db sqlc.DBTX, endTime pgtype.Timestamptz) ([]sqlc.Booking, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindBookingsAfter(ctx context.Context, after time.Time) ([]*booking.Booking, error) {
	rows, err := r.queries.GetBookingsEndingAfter(ctx, r.db, pgconv.TimeToPgtype(after))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings", err)
	}

	result, err := converter.BookingsFromInfra(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored booking", err)
	}
	return result, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored booking", err)
	}
	return b, nil
}
