package services

import (
	"fmt"

	"tripplanner/internal/models/response_models"
)

type BudgetTier string

const (
	TierBudget BudgetTier = "budget"
	TierMid    BudgetTier = "mid"
	TierLuxury BudgetTier = "luxury"
)

// Budget thresholds in USD. HighBudgetThreshold itself is still mid range.
const (
	LowBudgetThreshold  = 300
	HighBudgetThreshold = 1200
)

const EmptyRecommendationMessage = "No similar city recommendations found for this location yet. More cities can be added easily"

var similarPlaces = map[string][]string{
	"goa":       {"Gokarna", "Pondicherry", "Andaman", "Varkala"},
	"manali":    {"Kasol", "Dharamshala", "Shimla", "Bir Billing"},
	"jaipur":    {"Udaipur", "Jodhpur", "Jaisalmer", "Agra"},
	"mumbai":    {"Alibaug", "Lonavala", "Pune", "Daman"},
	"bangalore": {"Mysore", "Coorg", "Ooty", "Hampi"},
}

func TierFor(budget int) BudgetTier {
	switch {
	case budget < LowBudgetThreshold:
		return TierBudget
	case budget <= HighBudgetThreshold:
		return TierMid
	default:
		return TierLuxury
	}
}

func (t BudgetTier) Label() string {
	switch t {
	case TierBudget:
		return "Budget Friendly"
	case TierMid:
		return "Mid Range"
	default:
		return "Luxury"
	}
}

type Recommendation struct {
	Place  string
	Tier   BudgetTier
	Places []string
}

func (r Recommendation) Message() string {
	if len(r.Places) == 0 {
		return EmptyRecommendationMessage
	}
	return fmt.Sprintf("Since you planned %s and your budget is %s, you may also like:", r.Place, r.Tier.Label())
}

func (r Recommendation) ToResponse() response_models.RecommendationResponse {
	places := r.Places
	if places == nil {
		places = []string{}
	}
	return response_models.RecommendationResponse{
		Tier:      string(r.Tier),
		TierLabel: r.Tier.Label(),
		Places:    places,
		Message:   r.Message(),
	}
}

type RecommendationServiceInterface interface {
	Recommend(placeKey string, budget int) Recommendation
}

type RecommendationService struct {
	table map[string][]string
}

func NewRecommendationService() RecommendationServiceInterface {
	return &RecommendationService{table: similarPlaces}
}

// Recommend never errors; an unknown place yields no places.
func (s *RecommendationService) Recommend(placeKey string, budget int) Recommendation {
	rec := Recommendation{
		Place: DisplayPlace(placeKey),
		Tier:  TierFor(budget),
	}
	if places, ok := s.table[NormalizePlace(placeKey)]; ok {
		rec.Places = append([]string(nil), places...)
	}
	return rec
}
