package components

import (
	"facility-booking/internal/domain/schedule"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingWindow,
	func(cfg config.Config) queries.Horizon {
		return queries.Horizon{
			DefaultDays: cfg.Booking.HorizonDays,
			MaxDays:     cfg.Booking.MaxHorizonDays,
		}
	},
	func(cfg config.Config) commands.AdmissionPolicy {
		return commands.AdmissionPolicy{
			Interval:     cfg.Booking.Interval(),
			StoreTimeout: cfg.Booking.StoreTimeout,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTimetableQueries,
		queries.NewBookingQueries,
	),
)

// NewBookingWindow fails startup on a malformed or empty opening window.
func NewBookingWindow(cfg config.Config, clk clock.Clock) (schedule.Window, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return schedule.Window{}, err
	}
	window, err := schedule.NewWindow(cfg.Booking.OpeningTime, cfg.Booking.ClosingTime, cfg.Booking.IntervalMinutes, loc)
	if err != nil {
		return schedule.Window{}, err
	}
	if err := window.Validate(clk.Now().In(loc)); err != nil {
		return schedule.Window{}, err
	}
	return window, nil
}
