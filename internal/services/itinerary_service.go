package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"
)

// UsdToInrRate converts the USD budget into the rupee figures of the prompt.
const UsdToInrRate = 83

const itineraryPromptTemplate = `
You are a professional travel planner.
Generate a detailed %d-day travel itinerary for %s, %s, starting on %s.

✈️ Focus on: %s.
🪔 Currency: Indian Rupees (₹).

🗺️ Trip Summary: 3-4 line vibe description.

📅 Day-wise Itinerary:
For each day, include:

- **Morning:** Start time + place + what to do + small highlight
- **Afternoon:** Next attraction / market / activity + include approx travel time or distance
- **Evening:** Sunset spot / dinner / chill activity suggestion
- **Food Suggestions:** Mention 1 breakfast place, 1 lunch spot, 1 dinner spot (name only, no long description)

💰 Budget: total within ₹%d, per day ~₹%d

🏨 Hotels: 3 best stays (name + location + approx ₹/night)
🍽️ Restaurants: 3 best local food spots (name + cuisine + must try dish)

💡 Travel Tips: exactly 3 bullet points
`

type ItineraryServiceInterface interface {
	BuildPrompt(request request_models.GenerationRequest) string
	Generate(ctx context.Context, request request_models.GenerationRequest) (string, error)
}

type ItineraryService struct {
	client utils.TextGenerationClient
	log    *slog.Logger
}

func NewItineraryService(client utils.TextGenerationClient, log *slog.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		client: client,
		log:    log,
	}
}

// ConvertedBudget returns the total and per-day rupee figures. days must be
// at least 1; per day is rounded half to even.
func ConvertedBudget(budget, days int) (int, int) {
	total := budget * UsdToInrRate
	perDay := int(math.RoundToEven(float64(total) / float64(days)))
	return total, perDay
}

func (s *ItineraryService) BuildPrompt(request request_models.GenerationRequest) string {
	total, perDay := ConvertedBudget(request.Budget, request.Days)
	return fmt.Sprintf(itineraryPromptTemplate,
		request.Days,
		request.City,
		request.Country,
		request.TravelDate,
		strings.Join(request.Interests, ", "),
		total,
		perDay,
	)
}

// Generate makes exactly one call to the text service. Every failure,
// including a panic inside the client, comes back as *utils.GenerationFailure.
func (s *ItineraryService) Generate(ctx context.Context, request request_models.GenerationRequest) (text string, err error) {
	if request.Days < 1 {
		return "", fmt.Errorf("%w: days must be at least 1", utils.ErrInvalidInput)
	}

	prompt := s.BuildPrompt(request)
	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			text, err = "", &utils.GenerationFailure{Message: fmt.Sprint(r)}
		}
		result := "success"
		if err != nil {
			result = "failure"
			s.log.Warn("itinerary generation failed",
				"city", request.City, "err", err, "took", time.Since(startTime))
		} else {
			s.log.Info("itinerary generated",
				"city", request.City, "chars", len(text), "took", time.Since(startTime))
		}
		metrics.ObserveGeneration(result, time.Since(startTime))
	}()

	text, err = s.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", utils.NewGenerationFailure(err)
	}
	if strings.TrimSpace(text) == "" {
		return "", utils.NewGenerationFailure(errors.New("text service returned an empty response"))
	}
	return text, nil
}
