package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Trip is an immutable saved itinerary. Interests keep their order through
// the JSON array encoding.
type Trip struct {
	BaseModel
	AccountID     uuid.UUID                   `gorm:"type:uuid;index;not null" db:"account_id"`
	Country       string                      `db:"country"`
	City          string                      `db:"city"`
	Days          int                         `db:"days"`
	Budget        int                         `db:"budget"`
	TravelDate    string                      `db:"travel_date"`
	Interests     datatypes.JSONSlice[string] `db:"interests"`
	ItineraryText string                      `gorm:"type:text" db:"itinerary_text"`
}

// TripSummary is the listing projection; it never loads ItineraryText.
type TripSummary struct {
	ID         uuid.UUID                   `db:"id"`
	Country    string                      `db:"country"`
	City       string                      `db:"city"`
	Days       int                         `db:"days"`
	Budget     int                         `db:"budget"`
	TravelDate string                      `db:"travel_date"`
	Interests  datatypes.JSONSlice[string] `db:"interests"`
	CreatedAt  int64                       `db:"created_at"`
}
