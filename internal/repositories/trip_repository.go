package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripplanner/internal/models/db_models"
)

// TripRepository is append-only. Every read is scoped to the owning account.
type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	ListByAccount(ctx context.Context, accountId string) ([]db_models.TripSummary, error)
	FindByIdAndAccount(ctx context.Context, tripId, accountId string) (*db_models.Trip, error)
}

var tripSummaryColumns = []string{
	"id", "country", "city", "days", "budget", "travel_date", "interests", "created_at",
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

// ListByAccount returns summaries newest first. Ids are UUIDv7, so id order
// is creation order.
func (r *tripRepository) ListByAccount(ctx context.Context, accountId string) ([]db_models.TripSummary, error) {
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return []db_models.TripSummary{}, nil
	}

	out := []db_models.TripSummary{}
	err = r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Select(tripSummaryColumns).
		Where("account_id = ?", accountUUID).
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return out, nil
}

// FindByIdAndAccount returns nil, nil both for an unknown id and for a trip
// owned by another account.
func (r *tripRepository) FindByIdAndAccount(ctx context.Context, tripId, accountId string) (*db_models.Trip, error) {
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		return nil, nil
	}
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return nil, nil
	}

	var trip db_models.Trip
	err = r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", tripUUID, accountUUID).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find trip: %w", err)
	}

	return &trip, nil
}
