package geo_fx

import (
	"log/slog"

	"go.uber.org/fx"
	"tripplanner/internal/config"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(
	provideCityDataset,
	provideGeoService,
	services.NewRecommendationService)

func provideCityDataset(cfg *config.Config, cache mem.Store[map[string]services.Coordinate]) services.CityDataset {
	csv := services.NewCSVCityDataset(cfg.CityDatasetPath)
	if cfg.CityDatasetTTL <= 0 {
		return csv
	}
	return services.NewCachedCityDataset(csv, cache, cfg.CityDatasetTTL)
}

func provideGeoService(dataset services.CityDataset, log *slog.Logger) services.GeoServiceInterface {
	return services.NewGeoService(dataset, log)
}
