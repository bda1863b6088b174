package response_models

import "tripplanner/internal/models/request_models"

type ItinerarySection struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Generated bool   `json:"generated"`
}

type LocationResponse struct {
	Place      string  `json:"place"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Provenance string  `json:"provenance"`
	Message    string  `json:"message"`
}

type RecommendationResponse struct {
	Tier      string   `json:"tier"`
	TierLabel string   `json:"tier_label"`
	Places    []string `json:"places"`
	Message   string   `json:"message"`
}

type PlanResponse struct {
	Request         request_models.GenerationRequest `json:"request"`
	ItineraryText   string                           `json:"itinerary_text"`
	Sections        []ItinerarySection               `json:"sections"`
	Location        LocationResponse                 `json:"location"`
	Recommendations RecommendationResponse           `json:"recommendations"`
}

type SessionResponse struct {
	SessionID   string        `json:"session_id"`
	State       string        `json:"state"`
	AccountID   string        `json:"account_id"`
	DisplayName string        `json:"display_name"`
	Plan        *PlanResponse `json:"plan,omitempty"`
}

type PlannerDefaultsResponse struct {
	Country    string   `json:"country"`
	City       string   `json:"city"`
	Days       int      `json:"days"`
	Budget     int      `json:"budget"`
	TravelDate string   `json:"travel_date"`
	MinDays    int      `json:"min_days"`
	MaxDays    int      `json:"max_days"`
	MinBudget  int      `json:"min_budget"`
	MaxBudget  int      `json:"max_budget"`
	Interests  []string `json:"interests"`
}
