package queries

import (
	"facility-booking/internal/domain/availability"
	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/room"
)

func toSlotView(s booking.TimeSlot) SlotView {
	return SlotView{Start: s.Start(), End: s.End()}
}

func toSlotViews(slots []booking.TimeSlot) []SlotView {
	out := make([]SlotView, len(slots))
	for i, s := range slots {
		out[i] = toSlotView(s)
	}
	return out
}

func toRoomView(r room.Detailed) RoomView {
	return RoomView{
		ID:        r.ID(),
		Name:      r.Name(),
		Capacity:  r.Capacity(),
		SizeID:    r.SizeID(),
		Equipment: r.Equipment.Sorted(),
	}
}

func toRoomSizeView(s room.Size) RoomSizeView {
	return RoomSizeView{ID: s.ID(), Name: s.Name(), MaxCapacity: s.MaxCapacity()}
}

func toDayAvailabilityView(day availability.DayAvailability) DayAvailabilityView {
	entries := make([]AvailabilityEntryView, len(day.Entries))
	for i, e := range day.Entries {
		rooms := make([]RoomView, len(e.AvailableRooms))
		for j, r := range e.AvailableRooms {
			rooms[j] = toRoomView(r)
		}
		entries[i] = AvailabilityEntryView{Slot: toSlotView(e.Slot), AvailableRooms: rooms}
	}
	return DayAvailabilityView{Date: day.Date, Entries: entries}
}

func ToBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:        b.ID(),
		RoomID:    b.RoomID(),
		UserID:    b.UserID(),
		StartTime: b.TimeSlot().Start(),
		EndTime:   b.TimeSlot().End(),
		CreatedAt: b.CreatedAt(),
	}
}
