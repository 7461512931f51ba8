package api

import (
	"net/http"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/schedule"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Order matters: a conflict wrapping a store error is still a conflict.
var errorMappings = []errorMapping{
	{booking.ErrInvalidSlotDuration, http.StatusBadRequest, "Booking must span exactly one slot"},
	{booking.ErrInvalidTimeSlot, http.StatusBadRequest, "Start time must be before end time"},
	{booking.ErrMissingRoom, http.StatusBadRequest, "Room is required"},
	{booking.ErrMissingUser, http.StatusBadRequest, "User is required"},
	{errs.ErrInvalidSlotInput, http.StatusBadRequest, "Invalid booking slot"},
	{queries.ErrHorizonTooLong, http.StatusBadRequest, "Requested days exceed the booking horizon"},
	{schedule.ErrInvalidDayCount, http.StatusBadRequest, "Days must be at least 1"},
	{errs.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrSlotUnavailable, http.StatusConflict, "The room is not available for the selected time slot"},
	{errs.ErrStoreUnavailable, http.StatusServiceUnavailable, "Booking store unavailable"},
}

func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	// schedule window errors are configuration faults
	return http.StatusInternalServerError, "Internal server error"
}
