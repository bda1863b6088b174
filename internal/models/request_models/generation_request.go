package request_models

// GenerationRequest is the ephemeral parameter set for one itinerary. It
// lives in the planner session until saved.
type GenerationRequest struct {
	Country    string   `json:"country" binding:"required"`
	City       string   `json:"city" binding:"required"`
	Days       int      `json:"days" binding:"required,min=1,max=15"`
	Budget     int      `json:"budget" binding:"required,min=100,max=20000"`
	TravelDate string   `json:"travel_date" binding:"required,datetime=2006-01-02"`
	Interests  []string `json:"interests" binding:"required,min=1"`
}
