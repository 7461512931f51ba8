//go:build unit || e2e

package builder

import (
	"time"

	"facility-booking/internal/domain/booking"
	reqdto "facility-booking/internal/handler/dto/request"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	UserID    uuid.UUID
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}

// NewBookingBuilder starts from tomorrow 10:00-11:00 UTC, one default slot.
func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day()+1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:        uuid.New(),
		RoomID:    uuid.New(),
		UserID:    uuid.New(),
		Start:     start,
		End:       start.Add(time.Hour),
		CreatedAt: now.Truncate(time.Second),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	slot, err := booking.NewTimeSlot(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(b.ID, b.RoomID, b.UserID, slot, b.CreatedAt)
}

func (b *BookingBuilder) BuildInfra() sqlc.Booking {
	return sqlc.Booking{
		ID:        b.ID,
		RoomID:    b.RoomID,
		UserID:    b.UserID,
		StartTime: pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:   pgtype.Timestamptz{Time: b.End, Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:    b.RoomID,
		StartTime: b.Start,
		EndTime:   b.End,
	}
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingCommand {
	return commands.CreateBookingCommand{
		RoomID: b.RoomID,
		UserID: b.UserID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		RoomID:    b.RoomID,
		UserID:    b.UserID,
		StartTime: b.Start,
		EndTime:   b.End,
		CreatedAt: b.CreatedAt,
	}
}
