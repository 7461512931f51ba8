package queries

import (
	"context"
	"log/slog"
	"time"

	"facility-booking/internal/domain/availability"
	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/room"
	"facility-booking/internal/domain/schedule"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrHorizonTooLong = errs.New("requested day count exceeds the booking horizon")

// Horizon bounds the number of days a timetable may cover.
type Horizon struct {
	DefaultDays int
	MaxDays     int
}

type TimetableQueries interface {
	// GetTimetable builds the grid for dayCount days from today. Zero selects the default horizon.
	GetTimetable(ctx context.Context, dayCount int) (*TimetableView, error)
	GetRoomDetail(ctx context.Context, roomID uuid.UUID) (*RoomDetailView, error)
}

type timetableQueriesImpl struct {
	catalog  shared.CatalogReadStore
	bookings shared.BookingReadStore
	window   schedule.Window
	horizon  Horizon
	clock    clock.Clock
	logger   *slog.Logger
}

func NewTimetableQueries(
	catalog shared.CatalogReadStore,
	bookings shared.BookingReadStore,
	window schedule.Window,
	horizon Horizon,
	clk clock.Clock,
	logger *slog.Logger,
) TimetableQueries {
	return &timetableQueriesImpl{
		catalog:  catalog,
		bookings: bookings,
		window:   window,
		horizon:  horizon,
		clock:    clk,
		logger:   logger,
	}
}

type timetableData struct {
	rooms     []*room.Room
	sizes     []room.Size
	equipment []room.Equipment
	bookings  []*booking.Booking
}

func (q *timetableQueriesImpl) GetTimetable(ctx context.Context, dayCount int) (*TimetableView, error) {
	if dayCount == 0 {
		dayCount = q.horizon.DefaultDays
	}
	if q.horizon.MaxDays > 0 && dayCount > q.horizon.MaxDays {
		return nil, errs.Wrapf(ErrHorizonTooLong, "requested %d, max %d", dayCount, q.horizon.MaxDays)
	}

	dates, err := schedule.GenerateDateRange(q.clock.Now(), dayCount, q.window.Location())
	if err != nil {
		return nil, err
	}

	data, err := q.load(ctx, dates[0])
	if err != nil {
		return nil, err
	}

	rooms := room.AttachEquipmentToAll(data.rooms, data.equipment)

	grid, err := q.window.GenerateSlots(dates[0])
	if err != nil {
		q.logger.Error("slot grid generation failed", "error", err)
		return nil, err
	}
	days, err := availability.ComputeRange(dates, q.window, rooms, data.bookings)
	if err != nil {
		q.logger.Error("availability computation failed", "error", err)
		return nil, err
	}

	view := &TimetableView{
		Dates:               dates,
		TimeSlots:           toSlotViews(grid),
		RoomSizes:           make([]RoomSizeView, len(data.sizes)),
		EquipmentCategories: room.AggregateEquipmentCategories(data.equipment).Sorted(),
		Availability:        make([]DayAvailabilityView, len(days)),
	}
	for i, s := range data.sizes {
		view.RoomSizes[i] = toRoomSizeView(s)
	}
	for i, d := range days {
		view.Availability[i] = toDayAvailabilityView(d)
	}

	return view, nil
}

// load reads the catalog and the bookings that can still block a slot of the horizon.
func (q *timetableQueriesImpl) load(ctx context.Context, from time.Time) (*timetableData, error) {
	var data timetableData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rooms, err := q.catalog.FindAllRooms(gctx, true)
		data.rooms = rooms
		return err
	})
	g.Go(func() error {
		sizes, err := q.catalog.FindRoomSizes(gctx)
		data.sizes = sizes
		return err
	})
	g.Go(func() error {
		equipment, err := q.catalog.FindActiveEquipment(gctx, nil)
		data.equipment = equipment
		return err
	})
	g.Go(func() error {
		bookings, err := q.bookings.FindBookingsAfter(gctx, from)
		data.bookings = bookings
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, shared.MarkStoreErr(err)
	}
	return &data, nil
}

func (q *timetableQueriesImpl) GetRoomDetail(ctx context.Context, roomID uuid.UUID) (*RoomDetailView, error) {
	r, err := q.catalog.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, translateReadErr(err, errs.ErrRoomNotFound)
	}

	equipment, err := q.catalog.FindActiveEquipment(ctx, &roomID)
	if err != nil {
		return nil, shared.MarkStoreErr(err)
	}

	view := &RoomDetailView{Room: toRoomView(room.AttachEquipment(r, equipment))}

	if sizeID := r.SizeID(); sizeID != nil {
		size, err := q.catalog.FindRoomSizeByID(ctx, *sizeID)
		switch {
		case err == nil:
			sv := toRoomSizeView(*size)
			view.Size = &sv
		case infra.IsKind(err, infra.KindNotFound):
			q.logger.Warn("room references a missing size", "room_id", roomID, "size_id", *sizeID)
		default:
			return nil, shared.MarkStoreErr(err)
		}
	}

	return view, nil
}

func translateReadErr(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return shared.MarkStoreErr(err)
}
