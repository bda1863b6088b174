package trip_fx

import (
	"log/slog"

	"go.uber.org/fx"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(provideTripService)

func provideTripService(tripRepo repositories.TripRepository, log *slog.Logger) services.TripServiceInterface {
	return services.NewTripService(tripRepo, log)
}
