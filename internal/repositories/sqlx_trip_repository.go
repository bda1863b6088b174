package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"tripplanner/internal/models/db_models"
)

type sqlxTripRepository struct {
	db *sqlx.DB
}

func NewSqlxTripRepository(db *sqlx.DB) TripRepository {
	return &sqlxTripRepository{db: db}
}

func (r *sqlxTripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	if err := trip.Init(); err != nil {
		return err
	}

	// encoded explicitly so both drivers receive the same JSON text
	interests, err := json.Marshal([]string(trip.Interests))
	if err != nil {
		return fmt.Errorf("encode interests: %w", err)
	}

	query := r.db.Rebind(`INSERT INTO trips
		(id, account_id, country, city, days, budget, travel_date, interests, itinerary_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err = r.db.ExecContext(ctx, query,
		trip.ID, trip.AccountID, trip.Country, trip.City, trip.Days, trip.Budget,
		trip.TravelDate, string(interests), trip.ItineraryText, trip.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *sqlxTripRepository) ListByAccount(ctx context.Context, accountId string) ([]db_models.TripSummary, error) {
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return []db_models.TripSummary{}, nil
	}

	query := r.db.Rebind(`SELECT id, country, city, days, budget, travel_date, interests, created_at
		FROM trips WHERE account_id = ? ORDER BY id DESC`)

	out := []db_models.TripSummary{}
	if err := r.db.SelectContext(ctx, &out, query, accountUUID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *sqlxTripRepository) FindByIdAndAccount(ctx context.Context, tripId, accountId string) (*db_models.Trip, error) {
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		return nil, nil
	}
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return nil, nil
	}

	query := r.db.Rebind(`SELECT id, account_id, country, city, days, budget, travel_date,
		interests, itinerary_text, created_at
		FROM trips WHERE id = ? AND account_id = ?`)

	var trip db_models.Trip
	if err := r.db.GetContext(ctx, &trip, query, tripUUID, accountUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &trip, nil
}
