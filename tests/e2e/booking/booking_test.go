//go:build e2e

package booking_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/tests/common/authtest"
	"facility-booking/tests/common/builder"
	"facility-booking/tests/common/dbtest"
	"facility-booking/tests/common/httptest"
	"facility-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	bookingsURL  = "/api/bookings"
	timetableURL = "/api/timetable"
	roomURL      = "/api/rooms/%s"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func tomorrowAt(hour int) time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day()+1, hour, 0, 0, 0, time.UTC)
}

func parseTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return parsed
}

// =============================================================================
// TestTimetable
// =============================================================================

func (s *BookingSuite) TestTimetable() {
	s.Run("Normal case: grid, catalog and availability reflect stored bookings", func() {
		t := s.T()

		sizeID := dbtest.CreateTestRoomSize(t, s.DB, "Large", 20)
		roomB := dbtest.CreateTestRoom(t, s.DB, "Room B", 4, nil)
		roomA := dbtest.CreateTestRoom(t, s.DB, "Room A", 12, &sizeID)
		dbtest.CreateTestEquipment(t, s.DB, roomA, "Ceiling projector", "projector", true)
		dbtest.CreateTestEquipment(t, s.DB, roomA, "Old TV", "tv", false)
		dbtest.CreateTestEquipment(t, s.DB, roomB, "Board", "whiteboard", true)
		dbtest.CreateTestBooking(t, s.DB, roomA, uuid.New(), tomorrowAt(10), tomorrowAt(11))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timetableURL+"?days=2", nil, "")

		var body resdto.TimetableResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)

		require.Len(t, body.Dates, 2)
		require.Equal(t, tomorrowAt(0).Format("2006-01-02"), body.Dates[1])
		require.Len(t, body.TimeSlots, 8, "09:00-17:00 in one hour slots")
		require.Len(t, body.RoomSizes, 1)
		require.Equal(t, sizeID.String(), body.RoomSizes[0].ID)
		if diff := cmp.Diff([]string{"projector", "whiteboard"}, body.EquipmentCategories); diff != "" {
			t.Errorf("equipment categories mismatch (-want +got):\n%s", diff)
		}

		require.Len(t, body.Availability, 2)
		tomorrow := body.Availability[1]
		require.Len(t, tomorrow.Entries, 8)

		// 10:00 is the second slot of the day
		booked := tomorrow.Entries[1]
		require.True(t, parseTime(t, booked.Slot.Start).Equal(tomorrowAt(10)))
		require.Len(t, booked.AvailableRooms, 1)
		require.Equal(t, roomB.String(), booked.AvailableRooms[0].ID)

		free := tomorrow.Entries[2]
		require.Len(t, free.AvailableRooms, 2)
		require.Equal(t, "Room A", free.AvailableRooms[0].Name, "rooms are ordered by name")
		require.Equal(t, []string{"projector"}, free.AvailableRooms[0].Equipment, "inactive equipment is hidden")
		require.Equal(t, sizeID.String(), free.AvailableRooms[0].SizeID)
	})

	s.Run("Error case: days beyond the horizon returns 400", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timetableURL+"?days=32", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "horizon")
	})

	s.Run("Error case: non-numeric days returns 400", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timetableURL+"?days=abc", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestRoomDetail
// =============================================================================

func (s *BookingSuite) TestRoomDetail() {
	s.Run("Normal case: room with size and categories", func() {
		t := s.T()
		sizeID := dbtest.CreateTestRoomSize(t, s.DB, "Small", 6)
		roomID := dbtest.CreateTestRoom(t, s.DB, "Focus Room", 4, &sizeID)
		dbtest.CreateTestEquipment(t, s.DB, roomID, "Screen", "display", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomURL, roomID), nil, "")

		var body resdto.RoomDetailResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "Focus Room", body.Room.Name)
		require.Equal(t, []string{"display"}, body.Room.Equipment)
		require.NotNil(t, body.Size)
		require.Equal(t, "Small", body.Size.Name)
	})

	s.Run("Error case: unknown room returns 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomURL, uuid.New()), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking is admitted and readable", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Room A", 8, nil)
		userID := uuid.New()
		token := s.jwt.GenerateToken(t, userID)

		req := builder.NewBookingBuilder().WithRoomID(roomID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)

		var created resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, roomID.String(), created.RoomID)
		require.Equal(t, userID.String(), created.UserID, "user comes from the token")
		require.True(t, parseTime(t, created.StartTime).Equal(req.StartTime))
		httptest.AssertHeaders(t, w, map[string]string{"Location": bookingsURL + "/" + created.ID})

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil, "")
		var fetched resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, created.ID, fetched.ID)
		require.True(t, parseTime(t, fetched.EndTime).Equal(req.EndTime))
	})

	s.Run("Normal case: adjacent slots do not conflict", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Room A", 8, nil)
		dbtest.CreateTestBooking(t, s.DB, roomID, uuid.New(), tomorrowAt(10), tomorrowAt(11))
		token := s.jwt.GenerateToken(t, uuid.New())

		req := builder.NewBookingBuilder().WithRoomID(roomID).WithSlot(tomorrowAt(11), tomorrowAt(12)).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)
		require.Equal(t, 2, dbtest.CountBookings(t, s.DB, roomID))
	})

	s.Run("Error case: overlapping slot returns 409", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Room A", 8, nil)
		dbtest.CreateTestBooking(t, s.DB, roomID, uuid.New(), tomorrowAt(10), tomorrowAt(11))
		token := s.jwt.GenerateToken(t, uuid.New())

		req := builder.NewBookingBuilder().WithRoomID(roomID).WithSlot(tomorrowAt(10), tomorrowAt(11)).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not available")
		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, roomID))
	})

	s.Run("Error case: wrong duration returns 400", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Room A", 8, nil)
		token := s.jwt.GenerateToken(t, uuid.New())

		start := tomorrowAt(10)
		req := builder.NewBookingBuilder().WithRoomID(roomID).WithSlot(start, start.Add(30*time.Minute)).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "exactly one slot")
		require.Equal(t, 0, dbtest.CountBookings(t, s.DB, roomID))
	})

	s.Run("Error case: unknown room returns 404", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New())
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})

	s.Run("Error case: missing or expired token returns 401", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Room A", 8, nil)
		req := builder.NewBookingBuilder().WithRoomID(roomID).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")

		expired := s.jwt.CreateExpiredToken(t, uuid.New())
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
		require.Equal(t, 0, dbtest.CountBookings(t, s.DB, roomID))
	})

	s.Run("Concurrency: simultaneous requests for one slot admit exactly one", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Room A", 8, nil)
		req := builder.NewBookingBuilder().WithRoomID(roomID).BuildCreateRequestDTO()

		const attempts = 10
		tokens := make([]string, attempts)
		for i := range tokens {
			tokens[i] = s.jwt.GenerateToken(t, uuid.New())
		}

		var (
			mu       sync.Mutex
			statuses = map[int]int{}
		)
		var g errgroup.Group
		for i := range attempts {
			g.Go(func() error {
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, tokens[i])
				mu.Lock()
				statuses[w.Code]++
				mu.Unlock()
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusConflict: attempts - 1}, statuses)
		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, roomID))
	})

	s.Run("Store: exclusion constraint rejects overlaps written around the service", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Room A", 8, nil)
		dbtest.CreateTestBooking(t, s.DB, roomID, uuid.New(), tomorrowAt(10), tomorrowAt(11))

		start := tomorrowAt(10).Add(30 * time.Minute)
		_, err := s.DB.Exec(context.Background(),
			"INSERT INTO bookings (id, room_id, user_id, start_time, end_time) VALUES ($1, $2, $3, $4, $5)",
			uuid.New(), roomID, uuid.New(), start, start.Add(time.Hour))

		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr), "expected a postgres error, got %v", err)
		require.Equal(t, "23P01", pgErr.Code)
		require.Equal(t, "bookings_no_overlap", pgErr.ConstraintName)
	})
}
