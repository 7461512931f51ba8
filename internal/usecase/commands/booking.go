package commands

import (
	"context"
	"log/slog"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingCommand struct {
	RoomID uuid.UUID
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, cmd CreateBookingCommand) (*queries.BookingView, error)
}

// AdmissionPolicy is the slot length every booking must match and the
// upper bound on one admission's store work.
type AdmissionPolicy struct {
	Interval     time.Duration
	StoreTimeout time.Duration
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy AdmissionPolicy
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingUseCase(uow shared.UnitOfWork, policy AdmissionPolicy, clk clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingUseCaseImpl{
		uow:    uow,
		policy: policy,
		clock:  clk,
		logger: logger,
	}
}

// CreateBooking admits one booking. Checks run in order and the first failure
// wins: slot duration, room existence, then overlap with existing bookings.
// The room lock, both checks and the insert share one transaction.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, cmd CreateBookingCommand) (*queries.BookingView, error) {
	slot, err := booking.NewTimeSlot(cmd.Start, cmd.End)
	if err != nil {
		return nil, errs.Mark(err, booking.ErrInvalidSlotDuration)
	}

	b, err := booking.NewBooking(cmd.RoomID, cmd.UserID, slot, uc.policy.Interval, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if uc.policy.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.policy.StoreTimeout)
		defer cancel()
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockRoom(ctx, b.RoomID()); err != nil {
			return err
		}

		exists, err := tx.RoomExists(ctx, b.RoomID())
		if err != nil {
			return err
		}
		if !exists {
			return errs.ErrRoomNotFound
		}

		existing, err := tx.Bookings().FindOverlapping(ctx, b.RoomID(), b.TimeSlot())
		if err != nil {
			return err
		}
		if existing != nil {
			return errs.Wrapf(errs.ErrSlotUnavailable, "overlaps booking %s", existing.ID())
		}

		return tx.Bookings().Insert(ctx, b)
	})
	if err != nil {
		return nil, uc.translateErr(err)
	}

	uc.logger.Info("booking admitted",
		"booking_id", b.ID(),
		"room_id", b.RoomID(),
		"user_id", b.UserID(),
		"slot", b.TimeSlot().String())

	return queries.ToBookingView(b), nil
}

func (uc *bookingUseCaseImpl) translateErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		// Exclusion constraint caught an overlap the lock did not.
		return errs.Mark(err, errs.ErrSlotUnavailable)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrRoomNotFound)
	default:
		return shared.MarkStoreErr(err)
	}
}
