package request

import (
	"time"

	"facility-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (r *CreateBookingRequest) ToCommand(userID uuid.UUID) commands.CreateBookingCommand {
	return commands.CreateBookingCommand{
		RoomID: r.RoomID,
		UserID: userID,
		Start:  r.StartTime,
		End:    r.EndTime,
	}
}
