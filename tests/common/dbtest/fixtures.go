//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestRoomSize(t *testing.T, db DBLike, name string, maxCapacity int) uuid.UUID {
	t.Helper()

	sizeID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO room_sizes (id, name, max_capacity) VALUES ($1, $2, $3)",
		sizeID, name, maxCapacity)
	require.NoError(t, err)
	return sizeID
}

func CreateTestRoom(t *testing.T, db DBLike, name string, capacity int, sizeID *uuid.UUID) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, name, capacity, size_id) VALUES ($1, $2, $3, $4)",
		roomID, name, capacity, sizeID)
	require.NoError(t, err)
	return roomID
}

func CreateTestEquipment(t *testing.T, db DBLike, roomID uuid.UUID, name, category string, active bool) uuid.UUID {
	t.Helper()

	equipmentID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO equipment (id, room_id, name, category, active) VALUES ($1, $2, $3, $4, $5)",
		equipmentID, roomID, name, category, active)
	require.NoError(t, err)
	return equipmentID
}

func CreateTestBooking(t *testing.T, db DBLike, roomID, userID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, room_id, user_id, start_time, end_time) VALUES ($1, $2, $3, $4, $5)",
		bookingID, roomID, userID, start, end)
	require.NoError(t, err)
	return bookingID
}

func CountBookings(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE room_id = $1", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
