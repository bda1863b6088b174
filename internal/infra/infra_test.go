package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/internal/config"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "travel_app.db?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("travel_app.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("file:x?mode=memory"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := OpenGorm(&config.Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")

	_, err = OpenSqlx(context.Background(), &config.Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestOpenSqlx_AppliesMigrations(t *testing.T) {
	db, err := OpenSqlx(context.Background(), &config.Config{
		DBDriver:    "sqlite",
		DatabaseURL: "file:migrations_test?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	defer db.Close()

	var tables []string
	require.NoError(t, db.Select(&tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('accounts', 'trips') ORDER BY name`))
	assert.Equal(t, []string{"accounts", "trips"}, tables)

	// a second run is a no-op
	require.NoError(t, RunMigrations(context.Background(), db, "sqlite"))

	_, err = db.Exec(`INSERT INTO trips (id, account_id, country, city, days, budget, travel_date, interests, itinerary_text, created_at)
		VALUES ('t1', 'missing', 'India', 'Goa', 5, 1500, '2025-12-01', '[]', 'x', 1)`)
	assert.Error(t, err, "foreign keys must be enforced")
}

func TestOpenGorm_MigratesModels(t *testing.T) {
	db, err := OpenGorm(&config.Config{
		DBDriver:    "sqlite",
		DatabaseURL: "file:gorm_migrations_test?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.True(t, db.Migrator().HasTable("accounts"))
	assert.True(t, db.Migrator().HasTable("trips"))
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}
