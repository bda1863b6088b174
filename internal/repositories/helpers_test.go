package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"tripplanner/internal/config"
	"tripplanner/internal/infra"
	"tripplanner/internal/models/db_models"
)

func memoryDSN(t *testing.T) string {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

func newGormTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.OpenGorm(&config.Config{DBDriver: "sqlite", DatabaseURL: memoryDSN(t)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newSqlxTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := infra.OpenSqlx(context.Background(), &config.Config{DBDriver: "sqlite", DatabaseURL: memoryDSN(t)})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func mustAccount(t *testing.T, repo AccountRepository, email string) *db_models.Account {
	t.Helper()
	acc := &db_models.Account{Email: email, PasswordHash: "hash", Name: "Traveller"}
	require.NoError(t, repo.Insert(context.Background(), acc))
	return acc
}

func sampleTrip(owner db_models.Account, city string, interests ...string) *db_models.Trip {
	return &db_models.Trip{
		AccountID:     owner.ID,
		Country:       "India",
		City:          city,
		Days:          5,
		Budget:        1500,
		TravelDate:    "2025-12-01",
		Interests:     interests,
		ItineraryText: "Trip Summary: sun and sand in " + city,
	}
}
