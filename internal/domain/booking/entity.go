package booking

import (
	"time"

	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot     = errs.New("start time must be before end time")
	ErrInvalidSlotDuration = errs.New("booking must span exactly one slot interval")
	ErrMissingRoom         = errs.New("room id is required")
	ErrMissingUser         = errs.New("user id is required")
)

// Booking is one admitted reservation of a room for a single slot.
// It is never mutated once created.
type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	userID    uuid.UUID
	timeSlot  TimeSlot
	createdAt time.Time
}

func NewBooking(roomID, userID uuid.UUID, slot TimeSlot, interval time.Duration, now time.Time) (*Booking, error) {
	if err := ValidateSlotDuration(slot, interval); err != nil {
		return nil, err
	}
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}

	return &Booking{
		id:        uuid.New(),
		roomID:    roomID,
		userID:    userID,
		timeSlot:  slot,
		createdAt: now,
	}, nil
}

// ValidateSlotDuration rejects any slot that is not exactly one interval long.
// Longer slots are never clipped or split.
func ValidateSlotDuration(slot TimeSlot, interval time.Duration) error {
	if slot.IsZero() || slot.Duration() != interval {
		return ErrInvalidSlotDuration
	}
	return nil
}

func Reconstruct(id, roomID, userID uuid.UUID, slot TimeSlot, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		roomID:    roomID,
		userID:    userID,
		timeSlot:  slot,
		createdAt: createdAt,
	}
}

func (b *Booking) ConflictsWith(roomID uuid.UUID, slot TimeSlot) bool {
	return b.roomID == roomID && Overlaps(b.timeSlot, slot)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) TimeSlot() TimeSlot   { return b.timeSlot }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
