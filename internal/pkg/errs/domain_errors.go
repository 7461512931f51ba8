package errs

// Sentinels shared by the usecase layers and the HTTP mapping.
var (
	// Room errors
	ErrRoomNotFound = New("room not found")

	// Booking errors
	ErrBookingNotFound  = New("booking not found")
	ErrSlotUnavailable  = New("the room is not available for the selected time slot")
	ErrInvalidSlotInput = New("invalid booking slot")

	// Infrastructure errors
	ErrStoreUnavailable = New("booking store unavailable")
)
