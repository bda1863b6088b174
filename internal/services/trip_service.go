package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"
)

const (
	MinDays   = 1
	MaxDays   = 15
	MinBudget = 100
	MaxBudget = 20000
)

type TripServiceInterface interface {
	Save(ctx context.Context, accountID string, request request_models.GenerationRequest, itinerary string) (string, error)
	List(ctx context.Context, accountID string) ([]response_models.TripSummaryResponse, error)
	Get(ctx context.Context, tripID, accountID string) (*response_models.TripDetailResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	log      *slog.Logger
}

func NewTripService(tripRepo repositories.TripRepository, log *slog.Logger) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		log:      log,
	}
}

// ValidateGenerationRequest checks the ranges a trip record must satisfy.
func ValidateGenerationRequest(request request_models.GenerationRequest) error {
	switch {
	case strings.TrimSpace(request.Country) == "" || strings.TrimSpace(request.City) == "":
		return fmt.Errorf("%w: country and city are required", utils.ErrInvalidInput)
	case len(request.Interests) == 0:
		return fmt.Errorf("%w: pick at least one interest", utils.ErrInvalidInput)
	case request.Days < MinDays || request.Days > MaxDays:
		return fmt.Errorf("%w: days must be between %d and %d", utils.ErrInvalidInput, MinDays, MaxDays)
	case request.Budget < MinBudget || request.Budget > MaxBudget:
		return fmt.Errorf("%w: budget must be between %d and %d", utils.ErrInvalidInput, MinBudget, MaxBudget)
	}
	if _, err := utils.ParseTravelDate(request.TravelDate); err != nil {
		return fmt.Errorf("%w: travel_date must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	return nil
}

func (t *TripService) Save(ctx context.Context, accountID string, request request_models.GenerationRequest, itinerary string) (string, error) {
	if err := ValidateGenerationRequest(request); err != nil {
		return "", err
	}
	owner, err := uuid.Parse(accountID)
	if err != nil {
		return "", fmt.Errorf("%w: account id", utils.ErrInvalidInput)
	}

	trip := &db_models.Trip{
		AccountID:     owner,
		Country:       request.Country,
		City:          request.City,
		Days:          request.Days,
		Budget:        request.Budget,
		TravelDate:    request.TravelDate,
		Interests:     append([]string(nil), request.Interests...),
		ItineraryText: itinerary,
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		t.log.Error("insert trip", "account_id", accountID, "err", err)
		return "", utils.ErrDatabaseError
	}

	metrics.IncTripsSaved()
	t.log.Info("trip saved", "trip_id", trip.ID, "account_id", accountID, "city", trip.City)
	return trip.ID.String(), nil
}

func (t *TripService) List(ctx context.Context, accountID string) ([]response_models.TripSummaryResponse, error) {
	trips, err := t.tripRepo.ListByAccount(ctx, accountID)
	if err != nil {
		t.log.Error("list trips", "account_id", accountID, "err", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripSummaryResponse, 0, len(trips))
	for _, trip := range trips {
		interests := []string(trip.Interests)
		if interests == nil {
			interests = []string{}
		}
		out = append(out, response_models.TripSummaryResponse{
			ID:             trip.ID.String(),
			Country:        trip.Country,
			City:           trip.City,
			Days:           trip.Days,
			Budget:         trip.Budget,
			TravelDate:     trip.TravelDate,
			Interests:      interests,
			InterestsLabel: strings.Join(interests, ", "),
			CreatedAt:      utils.FormatDisplay(utils.FromUnixSeconds(trip.CreatedAt)),
		})
	}
	return out, nil
}

// Get returns ErrTripNotFound both for an unknown id and for a trip owned by
// another account.
func (t *TripService) Get(ctx context.Context, tripID, accountID string) (*response_models.TripDetailResponse, error) {
	trip, err := t.tripRepo.FindByIdAndAccount(ctx, tripID, accountID)
	if err != nil {
		t.log.Error("find trip", "trip_id", tripID, "err", err)
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	interests := []string(trip.Interests)
	if interests == nil {
		interests = []string{}
	}
	return &response_models.TripDetailResponse{
		ID:            trip.ID.String(),
		Country:       trip.Country,
		City:          trip.City,
		Days:          trip.Days,
		Budget:        trip.Budget,
		TravelDate:    trip.TravelDate,
		Interests:     interests,
		ItineraryText: trip.ItineraryText,
		Sections:      ParseSections(trip.ItineraryText).SectionList(),
		CreatedAt:     utils.FormatDisplay(utils.FromUnixSeconds(trip.CreatedAt)),
	}, nil
}
