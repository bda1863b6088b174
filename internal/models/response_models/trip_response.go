package response_models

type TripSummaryResponse struct {
	ID             string   `json:"id"`
	Country        string   `json:"country"`
	City           string   `json:"city"`
	Days           int      `json:"days"`
	Budget         int      `json:"budget"`
	TravelDate     string   `json:"travel_date"`
	Interests      []string `json:"interests"`
	InterestsLabel string   `json:"interests_label"`
	CreatedAt      string   `json:"created_at"`
}

type TripDetailResponse struct {
	ID            string             `json:"id"`
	Country       string             `json:"country"`
	City          string             `json:"city"`
	Days          int                `json:"days"`
	Budget        int                `json:"budget"`
	TravelDate    string             `json:"travel_date"`
	Interests     []string           `json:"interests"`
	ItineraryText string             `json:"itinerary_text"`
	Sections      []ItinerarySection `json:"sections"`
	CreatedAt     string             `json:"created_at"`
}

type SaveTripResponse struct {
	TripID string `json:"trip_id"`
}
