package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName    = errors.New("room name cannot be empty")
	ErrNegativeCapacity = errors.New("room capacity cannot be negative")
	ErrEmptyCategory    = errors.New("equipment category cannot be empty")
)

type Room struct {
	id       uuid.UUID
	name     string
	capacity int
	sizeID   *uuid.UUID
}

func NewRoom(id uuid.UUID, name string, capacity int, sizeID *uuid.UUID) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	return &Room{
		id:       id,
		name:     name,
		capacity: capacity,
		sizeID:   sizeID,
	}, nil
}

// Reconstruct rebuilds a room loaded from storage without validation.
func Reconstruct(id uuid.UUID, name string, capacity int, sizeID *uuid.UUID) *Room {
	return &Room{id: id, name: name, capacity: capacity, sizeID: sizeID}
}

func (r *Room) ID() uuid.UUID      { return r.id }
func (r *Room) Name() string       { return r.name }
func (r *Room) Capacity() int      { return r.capacity }
func (r *Room) SizeID() *uuid.UUID { return r.sizeID }

type Equipment struct {
	id       uuid.UUID
	roomID   uuid.UUID
	name     string
	category string
	active   bool
}

func NewEquipment(id, roomID uuid.UUID, name, category string, active bool) (Equipment, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return Equipment{}, ErrEmptyCategory
	}
	return Equipment{
		id:       id,
		roomID:   roomID,
		name:     strings.TrimSpace(name),
		category: category,
		active:   active,
	}, nil
}

func (e Equipment) ID() uuid.UUID     { return e.id }
func (e Equipment) RoomID() uuid.UUID { return e.roomID }
func (e Equipment) Name() string      { return e.name }
func (e Equipment) Category() string  { return e.category }
func (e Equipment) Active() bool      { return e.active }

// Size is a named room size class.
type Size struct {
	id          uuid.UUID
	name        string
	maxCapacity int
}

func NewSize(id uuid.UUID, name string, maxCapacity int) Size {
	return Size{id: id, name: name, maxCapacity: maxCapacity}
}

func (s Size) ID() uuid.UUID    { return s.id }
func (s Size) Name() string     { return s.name }
func (s Size) MaxCapacity() int { return s.maxCapacity }

// ReconstructEquipment rebuilds equipment loaded from storage without validation.
func ReconstructEquipment(id, roomID uuid.UUID, name, category string, active bool) Equipment {
	return Equipment{id: id, roomID: roomID, name: name, category: category, active: active}
}
