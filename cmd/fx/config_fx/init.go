package config_fx

import (
	"log/slog"

	"go.uber.org/fx"
	"tripplanner/internal/config"
	"tripplanner/internal/logging"
)

var Module = fx.Provide(
	config.LoadConfig,
	provideLogger)

func provideLogger(cfg *config.Config) *slog.Logger {
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	return logger
}
