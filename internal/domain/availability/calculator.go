package availability

import (
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/room"
	"facility-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

// Entry lists the rooms free for one slot of the grid.
type Entry struct {
	Slot           booking.TimeSlot
	AvailableRooms []room.Detailed
}

type DayAvailability struct {
	Date    time.Time
	Entries []Entry
}

// ComputeDayAvailability builds the slot grid for date and, for every slot,
// keeps the rooms that have no overlapping booking. Slot order and room order
// follow the inputs.
func ComputeDayAvailability(
	date time.Time,
	window schedule.Window,
	rooms []room.Detailed,
	bookings []*booking.Booking,
) (DayAvailability, error) {
	return computeDay(date, window, rooms, indexByRoom(bookings))
}

// ComputeRange computes availability for every date. Any grid error aborts the
// whole computation.
func ComputeRange(
	dates []time.Time,
	window schedule.Window,
	rooms []room.Detailed,
	bookings []*booking.Booking,
) ([]DayAvailability, error) {
	index := indexByRoom(bookings)

	days := make([]DayAvailability, 0, len(dates))
	for _, date := range dates {
		day, err := computeDay(date, window, rooms, index)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func computeDay(
	date time.Time,
	window schedule.Window,
	rooms []room.Detailed,
	index map[uuid.UUID][]booking.TimeSlot,
) (DayAvailability, error) {
	slots, err := window.GenerateSlots(date)
	if err != nil {
		return DayAvailability{}, err
	}

	entries := make([]Entry, len(slots))
	for i, slot := range slots {
		free := make([]room.Detailed, 0, len(rooms))
		for _, r := range rooms {
			if isFree(index[r.ID()], slot) {
				free = append(free, r)
			}
		}
		entries[i] = Entry{Slot: slot, AvailableRooms: free}
	}

	return DayAvailability{Date: date, Entries: entries}, nil
}

func indexByRoom(bookings []*booking.Booking) map[uuid.UUID][]booking.TimeSlot {
	index := make(map[uuid.UUID][]booking.TimeSlot)
	for _, b := range bookings {
		index[b.RoomID()] = append(index[b.RoomID()], b.TimeSlot())
	}
	return index
}

func isFree(booked []booking.TimeSlot, slot booking.TimeSlot) bool {
	for _, b := range booked {
		if booking.Overlaps(b, slot) {
			return false
		}
	}
	return true
}
