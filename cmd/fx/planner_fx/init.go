package planner_fx

import (
	"log/slog"

	"go.uber.org/fx"
	"tripplanner/internal/config"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer,
	providePDFRenderer,
	services.NewExportService,
	providePlannerService)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL)
}

func providePDFRenderer() utils.PDFRenderer {
	return utils.NewFPDFRenderer()
}

type plannerParams struct {
	fx.In

	Config          *config.Config
	Accounts        services.AccountServiceInterface
	Trips           services.TripServiceInterface
	Itineraries     services.ItineraryServiceInterface
	Geo             services.GeoServiceInterface
	Recommendations services.RecommendationServiceInterface
	Export          services.ExportServiceInterface
	Tokens          *utils.TokenIssuer
	Sessions        mem.Store[*services.PlannerSession]
	Log             *slog.Logger
}

func providePlannerService(p plannerParams) services.PlannerServiceInterface {
	return services.NewPlannerService(services.PlannerDeps{
		Accounts:        p.Accounts,
		Trips:           p.Trips,
		Itineraries:     p.Itineraries,
		Geo:             p.Geo,
		Recommendations: p.Recommendations,
		Export:          p.Export,
		Tokens:          p.Tokens,
		Sessions:        p.Sessions,
		SessionTTL:      p.Config.SessionTTL,
		Log:             p.Log,
	})
}
