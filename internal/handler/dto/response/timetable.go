package response

import (
	"facility-booking/internal/usecase/queries"
)

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type RoomResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment"`
	SizeID    string   `json:"size_id,omitempty" copier:"-"`
}

type RoomSizeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MaxCapacity int    `json:"max_capacity"`
}

type AvailabilityEntryResponse struct {
	Slot           SlotResponse   `json:"slot"`
	AvailableRooms []RoomResponse `json:"available_rooms"`
}

type DayAvailabilityResponse struct {
	Date    string                      `json:"date"`
	Entries []AvailabilityEntryResponse `json:"entries"`
}

type TimetableResponse struct {
	Dates               []string                  `json:"dates"`
	TimeSlots           []SlotResponse            `json:"time_slots"`
	RoomSizes           []RoomSizeResponse        `json:"room_sizes"`
	EquipmentCategories []string                  `json:"equipment_categories"`
	Availability        []DayAvailabilityResponse `json:"availability"`
}

type RoomDetailResponse struct {
	Room RoomResponse      `json:"room"`
	Size *RoomSizeResponse `json:"size,omitempty"`
}

func FromTimetableView(v *queries.TimetableView) (*TimetableResponse, error) {
	res := &TimetableResponse{
		Dates:               make([]string, len(v.Dates)),
		TimeSlots:           fromSlotViews(v.TimeSlots),
		RoomSizes:           make([]RoomSizeResponse, len(v.RoomSizes)),
		EquipmentCategories: append([]string{}, v.EquipmentCategories...),
		Availability:        make([]DayAvailabilityResponse, len(v.Availability)),
	}
	for i, d := range v.Dates {
		res.Dates[i] = d.Format(dateLayout)
	}
	for i := range v.RoomSizes {
		if err := copyView(&res.RoomSizes[i], &v.RoomSizes[i]); err != nil {
			return nil, err
		}
	}
	for i, day := range v.Availability {
		entries := make([]AvailabilityEntryResponse, len(day.Entries))
		for j, e := range day.Entries {
			rooms, err := fromRoomViews(e.AvailableRooms)
			if err != nil {
				return nil, err
			}
			entries[j] = AvailabilityEntryResponse{Slot: fromSlotView(e.Slot), AvailableRooms: rooms}
		}
		res.Availability[i] = DayAvailabilityResponse{Date: day.Date.Format(dateLayout), Entries: entries}
	}
	return res, nil
}

func FromRoomDetailView(v *queries.RoomDetailView) (*RoomDetailResponse, error) {
	room, err := fromRoomView(v.Room)
	if err != nil {
		return nil, err
	}
	res := &RoomDetailResponse{Room: room}
	if v.Size != nil {
		var size RoomSizeResponse
		if err := copyView(&size, v.Size); err != nil {
			return nil, err
		}
		res.Size = &size
	}
	return res, nil
}

func fromRoomView(v queries.RoomView) (RoomResponse, error) {
	var res RoomResponse
	if err := copyView(&res, &v); err != nil {
		return RoomResponse{}, err
	}
	if v.SizeID != nil {
		res.SizeID = v.SizeID.String()
	}
	if res.Equipment == nil {
		res.Equipment = []string{}
	}
	return res, nil
}

func fromRoomViews(vs []queries.RoomView) ([]RoomResponse, error) {
	res := make([]RoomResponse, len(vs))
	for i, v := range vs {
		r, err := fromRoomView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func fromSlotView(v queries.SlotView) SlotResponse {
	return SlotResponse{Start: v.Start.Format(timeLayout), End: v.End.Format(timeLayout)}
}

func fromSlotViews(vs []queries.SlotView) []SlotResponse {
	res := make([]SlotResponse, len(vs))
	for i, v := range vs {
		res[i] = fromSlotView(v)
	}
	return res
}
