package queries

import (
	"time"

	"github.com/google/uuid"
)

type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type RoomView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Capacity  int        `json:"capacity"`
	SizeID    *uuid.UUID `json:"size_id,omitempty"`
	Equipment []string   `json:"equipment"`
}

type RoomSizeView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	MaxCapacity int       `json:"max_capacity"`
}

type AvailabilityEntryView struct {
	Slot           SlotView   `json:"slot"`
	AvailableRooms []RoomView `json:"available_rooms"`
}

type DayAvailabilityView struct {
	Date    time.Time               `json:"date"`
	Entries []AvailabilityEntryView `json:"entries"`
}

// TimetableView is the booking grid for a horizon of days.
// TimeSlots is the grid of the first date.
type TimetableView struct {
	Dates               []time.Time           `json:"dates"`
	TimeSlots           []SlotView            `json:"time_slots"`
	RoomSizes           []RoomSizeView        `json:"room_sizes"`
	EquipmentCategories []string              `json:"equipment_categories"`
	Availability        []DayAvailabilityView `json:"availability"`
}

type RoomDetailView struct {
	Room RoomView      `json:"room"`
	Size *RoomSizeView `json:"size,omitempty"`
}

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	UserID    uuid.UUID `json:"user_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}
