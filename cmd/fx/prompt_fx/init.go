package prompt_fx

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/fx"
	"tripplanner/internal/config"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerationClient,
	ProvideItineraryService)

// ProvideTextGenerationClient creates the text client named by AI_PROVIDER.
func ProvideTextGenerationClient(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (utils.TextGenerationClient, error) {
	switch strings.ToLower(cfg.AIProvider) {
	case "openai":
		log.Info("initializing text generation client", "provider", "openai", "model", cfg.OpenAIModel)
		return utils.NewOpenAITextClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case "gemini":
		log.Info("initializing text generation client", "provider", "gemini", "model", cfg.GeminiModel)
		client, err := utils.NewGeminiTextClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", cfg.AIProvider)
	}
}

func ProvideItineraryService(client utils.TextGenerationClient, log *slog.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(client, log)
}
