package converter

import (
	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/room"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.InsertBookingParams {
	slot := b.TimeSlot()
	return sqlc.InsertBookingParams{
		ID:        b.ID(),
		RoomID:    b.RoomID(),
		UserID:    b.UserID(),
		StartTime: pgconv.TimeToPgtype(slot.Start()),
		EndTime:   pgconv.TimeToPgtype(slot.End()),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromInfra(row sqlc.Booking) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, errs.Wrapf(err, "stored booking %s", row.ID)
	}
	return booking.Reconstruct(row.ID, row.RoomID, row.UserID, slot, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func BookingsFromInfra(rows []sqlc.Booking) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromInfra(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func RoomFromInfra(row sqlc.Room) *room.Room {
	return room.Reconstruct(row.ID, row.Name, int(row.Capacity), pgconv.UUIDPtrFromPgtype(row.SizeID))
}

func EquipmentFromInfra(row sqlc.Equipment) room.Equipment {
	return room.ReconstructEquipment(row.ID, row.RoomID, row.Name, row.Category, row.Active)
}

func RoomSizeFromInfra(row sqlc.RoomSize) room.Size {
	return room.NewSize(row.ID, row.Name, int(row.MaxCapacity))
}
