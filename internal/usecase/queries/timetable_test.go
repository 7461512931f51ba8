//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/room"
	"facility-booking/internal/domain/schedule"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"
	sharedmock "facility-booking/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 3, 2, 8, 15, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustWindow(t *testing.T, opening, closing string) schedule.Window {
	t.Helper()
	w, err := schedule.NewWindow(opening, closing, 60, time.UTC)
	require.NoError(t, err)
	return w
}

type timetableMocks struct {
	catalog  *sharedmock.MockCatalogReadStore
	bookings *sharedmock.MockBookingReadStore
}

func newTimetableQueries(t *testing.T, w schedule.Window) (queries.TimetableQueries, timetableMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := timetableMocks{
		catalog:  sharedmock.NewMockCatalogReadStore(ctrl),
		bookings: sharedmock.NewMockBookingReadStore(ctrl),
	}
	q := queries.NewTimetableQueries(m.catalog, m.bookings, w, queries.Horizon{DefaultDays: 10, MaxDays: 31}, clock.NewMockClock(now), discardLogger())
	return q, m
}

func TestGetTimetable(t *testing.T) {
	ctx := context.Background()
	sizeID := uuid.New()
	roomA := room.Reconstruct(uuid.New(), "A", 4, &sizeID)
	roomB := room.Reconstruct(uuid.New(), "B", 8, nil)
	equipment := []room.Equipment{
		room.ReconstructEquipment(uuid.New(), roomA.ID(), "screen", "display", true),
		room.ReconstructEquipment(uuid.New(), roomB.ID(), "board", "whiteboard", true),
		room.ReconstructEquipment(uuid.New(), roomB.ID(), "tv", "display", true),
	}
	slot, err := booking.NewTimeSlot(time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC), time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	existing := booking.Reconstruct(uuid.New(), roomB.ID(), uuid.New(), slot, now)

	t.Run("basic success case", func(t *testing.T) {
		q, m := newTimetableQueries(t, mustWindow(t, "09:00", "17:00"))
		midnight := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

		m.catalog.EXPECT().FindAllRooms(gomock.Any(), true).Return([]*room.Room{roomA, roomB}, nil)
		m.catalog.EXPECT().FindRoomSizes(gomock.Any()).Return([]room.Size{room.NewSize(sizeID, "small", 4)}, nil)
		m.catalog.EXPECT().FindActiveEquipment(gomock.Any(), nil).Return(equipment, nil)
		m.bookings.EXPECT().FindBookingsAfter(gomock.Any(), midnight).Return([]*booking.Booking{existing}, nil)

		view, err := q.GetTimetable(ctx, 3)
		require.NoError(t, err)

		require.Len(t, view.Dates, 3)
		assert.Equal(t, midnight, view.Dates[0])
		require.Len(t, view.TimeSlots, 8)
		assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), view.TimeSlots[0].Start)
		assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), view.TimeSlots[7].End)

		if diff := cmp.Diff([]string{"display", "whiteboard"}, view.EquipmentCategories); diff != "" {
			t.Errorf("categories mismatch (-want +got):\n%s", diff)
		}
		require.Len(t, view.RoomSizes, 1)
		assert.Equal(t, "small", view.RoomSizes[0].Name)

		require.Len(t, view.Availability, 3)
		tenOClockTomorrow := view.Availability[1].Entries[1]
		require.Len(t, tenOClockTomorrow.AvailableRooms, 1)
		assert.Equal(t, roomA.ID(), tenOClockTomorrow.AvailableRooms[0].ID)
		assert.Equal(t, []string{"display"}, tenOClockTomorrow.AvailableRooms[0].Equipment)
		assert.Len(t, view.Availability[0].Entries[1].AvailableRooms, 2)
	})

	t.Run("zero day count uses default horizon", func(t *testing.T) {
		q, m := newTimetableQueries(t, mustWindow(t, "09:00", "17:00"))
		m.catalog.EXPECT().FindAllRooms(gomock.Any(), true).Return(nil, nil)
		m.catalog.EXPECT().FindRoomSizes(gomock.Any()).Return(nil, nil)
		m.catalog.EXPECT().FindActiveEquipment(gomock.Any(), nil).Return(nil, nil)
		m.bookings.EXPECT().FindBookingsAfter(gomock.Any(), gomock.Any()).Return(nil, nil)

		view, err := q.GetTimetable(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, view.Dates, 10)
		assert.Len(t, view.Availability, 10)
	})

	t.Run("horizon above maximum is rejected", func(t *testing.T) {
		q, _ := newTimetableQueries(t, mustWindow(t, "09:00", "17:00"))

		_, err := q.GetTimetable(ctx, 32)
		require.ErrorIs(t, err, queries.ErrHorizonTooLong)
	})

	t.Run("negative day count is rejected", func(t *testing.T) {
		q, _ := newTimetableQueries(t, mustWindow(t, "09:00", "17:00"))

		_, err := q.GetTimetable(ctx, -1)
		require.ErrorIs(t, err, schedule.ErrInvalidDayCount)
	})

	t.Run("misconfigured window fails the whole request", func(t *testing.T) {
		q, m := newTimetableQueries(t, mustWindow(t, "17:00", "09:00"))
		m.catalog.EXPECT().FindAllRooms(gomock.Any(), true).Return([]*room.Room{roomA}, nil)
		m.catalog.EXPECT().FindRoomSizes(gomock.Any()).Return(nil, nil)
		m.catalog.EXPECT().FindActiveEquipment(gomock.Any(), nil).Return(nil, nil)
		m.bookings.EXPECT().FindBookingsAfter(gomock.Any(), gomock.Any()).Return(nil, nil)

		view, err := q.GetTimetable(ctx, 2)
		require.ErrorIs(t, err, schedule.ErrInvalidWindow)
		assert.Nil(t, view)
	})

	t.Run("store timeout surfaces as store unavailable", func(t *testing.T) {
		q, m := newTimetableQueries(t, mustWindow(t, "09:00", "17:00"))
		m.catalog.EXPECT().FindAllRooms(gomock.Any(), true).Return(nil, infra.WrapRepoErr("failed to find rooms", context.DeadlineExceeded)).AnyTimes()
		m.catalog.EXPECT().FindRoomSizes(gomock.Any()).Return(nil, nil).AnyTimes()
		m.catalog.EXPECT().FindActiveEquipment(gomock.Any(), nil).Return(nil, nil).AnyTimes()
		m.bookings.EXPECT().FindBookingsAfter(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := q.GetTimetable(ctx, 1)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable), "got %v", err)
	})
}

func TestGetRoomDetail(t *testing.T) {
	ctx := context.Background()
	sizeID := uuid.New()
	r := room.Reconstruct(uuid.New(), "A", 4, &sizeID)

	t.Run("room with size and equipment", func(t *testing.T) {
		q, m := newTimetableQueries(t, mustWindow(t, "09:00", "17:00"))
		roomID := r.ID()
		m.catalog.EXPECT().FindRoomByID(gomock.Any(), roomID).Return(r, nil)
		m.catalog.EXPECT().FindActiveEquipment(gomock.Any(), &roomID).Return([]room.Equipment{
			room.ReconstructEquipment(uuid.New(), roomID, "mic", "audio", true),
			room.ReconstructEquipment(uuid.New(), roomID, "tv", "display", true),
		}, nil)
		size := room.NewSize(sizeID, "small", 4)
		m.catalog.EXPECT().FindRoomSizeByID(gomock.Any(), sizeID).Return(&size, nil)

		view, err := q.GetRoomDetail(ctx, roomID)
		require.NoError(t, err)
		assert.Equal(t, "A", view.Room.Name)
		assert.Equal(t, []string{"audio", "display"}, view.Room.Equipment)
		require.NotNil(t, view.Size)
		assert.Equal(t, "small", view.Size.Name)
	})

	t.Run("dangling size reference yields no size", func(t *testing.T) {
		q, m := newTimetableQueries(t, mustWindow(t, "09:00", "17:00"))
		m.catalog.EXPECT().FindRoomByID(gomock.Any(), r.ID()).Return(r, nil)
		m.catalog.EXPECT().FindActiveEquipment(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.catalog.EXPECT().FindRoomSizeByID(gomock.Any(), sizeID).Return(nil, infra.WrapRepoErr("room size not found", nil, infra.KindNotFound))

		view, err := q.GetRoomDetail(ctx, r.ID())
		require.NoError(t, err)
		assert.Nil(t, view.Size)
	})

	t.Run("unknown room", func(t *testing.T) {
		q, m := newTimetableQueries(t, mustWindow(t, "09:00", "17:00"))
		id := uuid.New()
		m.catalog.EXPECT().FindRoomByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		view, err := q.GetRoomDetail(ctx, id)
		require.Nil(t, view)
		assert.True(t, errs.Is(err, errs.ErrRoomNotFound), "got %v", err)
	})

	t.Run("database failure is passed through", func(t *testing.T) {
		q, m := newTimetableQueries(t, mustWindow(t, "09:00", "17:00"))
		dbErr := errors.New("connection reset")
		m.catalog.EXPECT().FindRoomByID(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("failed to find room by ID", dbErr))

		_, err := q.GetRoomDetail(ctx, uuid.New())
		require.ErrorIs(t, err, dbErr)
		assert.False(t, errs.Is(err, errs.ErrRoomNotFound))
	})
}
