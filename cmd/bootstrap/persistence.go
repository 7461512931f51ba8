package bootstrap

import (
	"context"
	"log/slog"

	"facility-booking/internal/infra/db"
	"facility-booking/internal/infra/memstore"
	"facility-booking/internal/infra/readstore"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/infra/uow"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence is every store port the use cases need, from one driver.
type Persistence struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Catalog    shared.CatalogReadStore
	Bookings   shared.BookingReadStore
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memstore.New()
		if cfg.Store.SeedDemo {
			memstore.SeedDemoCatalog(store)
		}
		logger.Info("using in-memory booking store", "seed_demo", cfg.Store.SeedDemo)
		return Persistence{
			UnitOfWork: store.UnitOfWork(),
			Catalog:    store,
			Bookings:   store,
		}, nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Persistence{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	q := sqlc.New()
	return Persistence{
		UnitOfWork: uow.NewPostgresUoW(pool, q, logger),
		Catalog:    readstore.NewCatalogReadStore(q, pool),
		Bookings:   readstore.NewBookingReadStore(q, pool),
	}, nil
}
