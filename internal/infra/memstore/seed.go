package memstore

import (
	"facility-booking/internal/domain/room"

	"github.com/google/uuid"
)

// SeedDemoCatalog fills s with a small fixed catalog for local runs of the
// memory driver.
func SeedDemoCatalog(s *Store) {
	small := room.NewSize(uuid.New(), "small", 4)
	medium := room.NewSize(uuid.New(), "medium", 10)
	large := room.NewSize(uuid.New(), "large", 30)
	for _, size := range []room.Size{small, medium, large} {
		s.AddSize(size)
	}

	rooms := []struct {
		name      string
		capacity  int
		size      room.Size
		equipment []string
	}{
		{name: "Aspen", capacity: 4, size: small, equipment: []string{"display"}},
		{name: "Birch", capacity: 8, size: medium, equipment: []string{"display", "whiteboard"}},
		{name: "Cedar", capacity: 12, size: medium, equipment: []string{"projector", "speakerphone"}},
		{name: "Douglas", capacity: 30, size: large, equipment: []string{"projector", "microphone", "whiteboard"}},
	}

	for _, spec := range rooms {
		sizeID := spec.size.ID()
		r := room.Reconstruct(uuid.New(), spec.name, spec.capacity, &sizeID)
		s.AddRoom(r)
		for _, category := range spec.equipment {
			s.AddEquipment(room.ReconstructEquipment(uuid.New(), r.ID(), spec.name+" "+category, category, true))
		}
	}
}
