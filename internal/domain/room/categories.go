package room

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"
)

// CategorySet is a set of equipment category labels.
// Iteration through Sorted is deterministic regardless of insertion order.
type CategorySet struct {
	items map[string]struct{}
}

func NewCategorySet(categories ...string) CategorySet {
	s := CategorySet{items: make(map[string]struct{}, len(categories))}
	for _, c := range categories {
		s.Add(c)
	}
	return s
}

func (s *CategorySet) Add(category string) {
	if category == "" {
		return
	}
	if s.items == nil {
		s.items = make(map[string]struct{})
	}
	s.items[category] = struct{}{}
}

func (s CategorySet) Has(category string) bool {
	_, ok := s.items[category]
	return ok
}

func (s CategorySet) Len() int { return len(s.items) }

func (s CategorySet) Equal(other CategorySet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for c := range s.items {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

func (s CategorySet) Sorted() []string {
	out := make([]string, 0, len(s.items))
	for c := range s.items {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (s CategorySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *CategorySet) UnmarshalJSON(data []byte) error {
	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		return err
	}
	*s = NewCategorySet(categories...)
	return nil
}

// AggregateEquipmentCategories collects the distinct categories of active equipment.
func AggregateEquipmentCategories(equipment []Equipment) CategorySet {
	set := NewCategorySet()
	for _, e := range equipment {
		if e.Active() {
			set.Add(e.Category())
		}
	}
	return set
}

// Detailed is a room together with the categories of its active equipment.
type Detailed struct {
	*Room
	Equipment CategorySet
}

// AttachEquipment pairs r with the categories of its own active equipment.
// Equipment belonging to other rooms is ignored.
func AttachEquipment(r *Room, equipment []Equipment) Detailed {
	own := make([]Equipment, 0, len(equipment))
	for _, e := range equipment {
		if e.RoomID() == r.ID() {
			own = append(own, e)
		}
	}
	return Detailed{Room: r, Equipment: AggregateEquipmentCategories(own)}
}

// AttachEquipmentToAll groups equipment by room once and attaches it to each room,
// preserving room order.
func AttachEquipmentToAll(rooms []*Room, equipment []Equipment) []Detailed {
	byRoom := make(map[uuid.UUID][]Equipment, len(rooms))
	for _, e := range equipment {
		byRoom[e.RoomID()] = append(byRoom[e.RoomID()], e)
	}

	out := make([]Detailed, len(rooms))
	for i, r := range rooms {
		out[i] = Detailed{Room: r, Equipment: AggregateEquipmentCategories(byRoom[r.ID()])}
	}
	return out
}
