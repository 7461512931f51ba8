package readstore

import (
	"context"

	"facility-booking/internal/domain/room"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository/converter"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	GetRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Room, error)
	GetRoomsOrderedByName(ctx context.Context, db sqlc.DBTX) ([]sqlc.Room, error)
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Room, error)
	GetActiveEquipment(ctx context.Context, db sqlc.DBTX) ([]sqlc.Equipment, error)
	GetActiveEquipmentByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.Equipment, error)
	GetRoomSizes(ctx context.Context, db sqlc.DBTX) ([]sqlc.RoomSize, error)
	GetRoomSizeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RoomSize, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindAllRooms(ctx context.Context, sortByName bool) ([]*room.Room, error) {
	var (
		rows []sqlc.Room
		err  error
	)
	if sortByName {
		rows, err = r.queries.GetRoomsOrderedByName(ctx, r.db)
	} else {
		rows, err = r.queries.GetRooms(ctx, r.db)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rooms", err)
	}

	result := make([]*room.Room, len(rows))
	for i, row := range rows {
		result[i] = converter.RoomFromInfra(row)
	}
	return result, nil
}

func (r *CatalogReadStore) FindRoomByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return converter.RoomFromInfra(row), nil
}

func (r *CatalogReadStore) FindActiveEquipment(ctx context.Context, roomID *uuid.UUID) ([]room.Equipment, error) {
	var (
		rows []sqlc.Equipment
		err  error
	)
	if roomID != nil {
		rows, err = r.queries.GetActiveEquipmentByRoom(ctx, r.db, *roomID)
	} else {
		rows, err = r.queries.GetActiveEquipment(ctx, r.db)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active equipment", err)
	}

	result := make([]room.Equipment, len(rows))
	for i, row := range rows {
		result[i] = converter.EquipmentFromInfra(row)
	}
	return result, nil
}

func (r *CatalogReadStore) FindRoomSizes(ctx context.Context) ([]room.Size, error) {
	rows, err := r.queries.GetRoomSizes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room sizes", err)
	}

	result := make([]room.Size, len(rows))
	for i, row := range rows {
		result[i] = converter.RoomSizeFromInfra(row)
	}
	return result, nil
}

func (r *CatalogReadStore) FindRoomSizeByID(ctx context.Context, id uuid.UUID) (*room.Size, error) {
	row, err := r.queries.GetRoomSizeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room size not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room size by ID", err)
	}
	size := converter.RoomSizeFromInfra(row)
	return &size, nil
}
