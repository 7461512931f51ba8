//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	repositorymock "facility-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var start = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newSlot(t *testing.T) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, start.Add(time.Hour))
	require.NoError(t, err)
	return slot
}

func TestBookingRepository_FindOverlapping(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("no overlap returns nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockQueries.EXPECT().FindOverlappingBooking(ctx, gomock.Any(), sqlc.FindOverlappingBookingParams{
			RoomID:    roomID,
			StartTime: pgtype.Timestamptz{Time: start, Valid: true},
			EndTime:   pgtype.Timestamptz{Time: start.Add(time.Hour), Valid: true},
		}).Return(sqlc.Booking{}, pgx.ErrNoRows)

		found, err := repository.NewBookingRepository(mockQueries, &mockDBTX{}).FindOverlapping(ctx, roomID, newSlot(t))
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("overlap is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		row := sqlc.Booking{
			ID:        uuid.New(),
			RoomID:    roomID,
			UserID:    uuid.New(),
			StartTime: pgtype.Timestamptz{Time: start.Add(-30 * time.Minute), Valid: true},
			EndTime:   pgtype.Timestamptz{Time: start.Add(30 * time.Minute), Valid: true},
		}
		mockQueries.EXPECT().FindOverlappingBooking(ctx, gomock.Any(), gomock.Any()).Return(row, nil)

		found, err := repository.NewBookingRepository(mockQueries, &mockDBTX{}).FindOverlapping(ctx, roomID, newSlot(t))
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, row.ID, found.ID())
	})
}

func TestBookingRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "exclusion violation", queryErr: &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}, expectKind: infra.KindConflict},
		{name: "room deleted concurrently", queryErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "duplicate id", queryErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)

			b, err := booking.NewBooking(uuid.New(), uuid.New(), newSlot(t), time.Hour, start.Add(-time.Hour))
			require.NoError(t, err)

			mockQueries.EXPECT().InsertBooking(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertBookingParams) error {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, b.RoomID(), arg.RoomID)
					assert.True(t, arg.StartTime.Time.Equal(start))
					assert.True(t, arg.EndTime.Valid)
					return tc.queryErr
				})

			err = repository.NewBookingRepository(mockQueries, &mockDBTX{}).Insert(ctx, b)
			if tc.queryErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestBookingRepository_LockAndExists(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	gomock.InOrder(
		mockQueries.EXPECT().LockRoomForBooking(ctx, gomock.Any(), roomID).Return(nil),
		mockQueries.EXPECT().RoomExists(ctx, gomock.Any(), roomID).Return(true, nil),
	)

	repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})
	require.NoError(t, repo.LockRoom(ctx, roomID))
	exists, err := repo.RoomExists(ctx, roomID)
	require.NoError(t, err)
	assert.True(t, exists)
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
