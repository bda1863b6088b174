package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/internal/models/db_models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestSqlxAccountRepository_PostgresUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSqlxAccountRepository(db)

	mock.ExpectExec(`INSERT INTO accounts \(id, email, password_hash, name, created_at\)\s+VALUES \(\$1, \$2, \$3, \$4, \$5\)`).
		WithArgs(sqlmock.AnyArg(), "dup@example.com", "hash", "", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Insert(context.Background(), &db_models.Account{Email: "dup@example.com", PasswordHash: "hash"})

	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlxAccountRepository_DriverErrorIsWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSqlxAccountRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`SELECT id, email, password_hash, name, created_at\s+FROM accounts WHERE email = \$1`).
		WithArgs("a@example.com").
		WillReturnError(boom)

	acc, err := repo.FindByEmail(context.Background(), "a@example.com")

	assert.Nil(t, acc)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlxAccountRepository_FindByEmailNoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSqlxAccountRepository(db)

	mock.ExpectQuery(`FROM accounts WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}))

	acc, err := repo.FindByEmail(context.Background(), "ghost@example.com")

	require.NoError(t, err)
	assert.Nil(t, acc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlxTripRepository_InsertEncodesInterestsAsJSON(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSqlxTripRepository(db)
	owner := uuid.New()

	mock.ExpectExec(`INSERT INTO trips`).
		WithArgs(sqlmock.AnyArg(), owner, "India", "Goa", 5, 1500, "2025-12-01",
			`["Food","Beaches"]`, "plan text", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	trip := &db_models.Trip{
		AccountID:     owner,
		Country:       "India",
		City:          "Goa",
		Days:          5,
		Budget:        1500,
		TravelDate:    "2025-12-01",
		Interests:     []string{"Food", "Beaches"},
		ItineraryText: "plan text",
	}
	require.NoError(t, repo.Insert(context.Background(), trip))
	assert.NotEqual(t, uuid.Nil, trip.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlxTripRepository_ListIsOwnerScopedAndOrdered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSqlxTripRepository(db)
	owner := uuid.New()
	newer, older := uuid.New(), uuid.New()

	rows := sqlmock.NewRows([]string{"id", "country", "city", "days", "budget", "travel_date", "interests", "created_at"}).
		AddRow(newer.String(), "India", "Jaipur", 3, 800, "2025-11-02", []byte(`["Culture"]`), int64(1700000100)).
		AddRow(older.String(), "India", "Goa", 5, 1500, "2025-11-01", []byte(`["Beaches"]`), int64(1700000000))

	mock.ExpectQuery(`SELECT id, country, city, days, budget, travel_date, interests, created_at\s+FROM trips WHERE account_id = \$1 ORDER BY id DESC`).
		WithArgs(owner).
		WillReturnRows(rows)

	list, err := repo.ListByAccount(context.Background(), owner.String())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer, list[0].ID)
	assert.Equal(t, []string{"Culture"}, []string(list[0].Interests))
	assert.Equal(t, "Goa", list[1].City)
	assert.NoError(t, mock.ExpectationsWereMet())
}
