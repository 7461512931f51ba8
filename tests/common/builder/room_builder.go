//go:build unit || e2e

package builder

import (
	"facility-booking/internal/domain/room"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID        uuid.UUID
	Name      string
	Capacity  int
	Size      *room.Size
	Equipment []string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:        uuid.New(),
		Name:      "Meeting Room A",
		Capacity:  8,
		Equipment: []string{"projector", "whiteboard"},
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithSize(name string, maxCapacity int) *RoomBuilder {
	size := room.NewSize(uuid.New(), name, maxCapacity)
	r.Size = &size
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() *room.Room {
	var sizeID *uuid.UUID
	if r.Size != nil {
		id := r.Size.ID()
		sizeID = &id
	}
	return room.Reconstruct(r.ID, r.Name, r.Capacity, sizeID)
}

func (r *RoomBuilder) BuildEquipment() []room.Equipment {
	eq := make([]room.Equipment, len(r.Equipment))
	for i, category := range r.Equipment {
		eq[i] = room.ReconstructEquipment(uuid.New(), r.ID, category+" unit", category, true)
	}
	return eq
}

func (r *RoomBuilder) BuildView() queries.RoomView {
	v := queries.RoomView{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Equipment: append([]string{}, r.Equipment...),
	}
	if r.Size != nil {
		id := r.Size.ID()
		v.SizeID = &id
	}
	return v
}

func (r *RoomBuilder) BuildDetailView() *queries.RoomDetailView {
	v := &queries.RoomDetailView{Room: r.BuildView()}
	if r.Size != nil {
		v.Size = &queries.RoomSizeView{
			ID:          r.Size.ID(),
			Name:        r.Size.Name(),
			MaxCapacity: r.Size.MaxCapacity(),
		}
	}
	return v
}
