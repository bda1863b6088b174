package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"tripplanner/internal/models/db_models"
)

type sqlxAccountRepository struct {
	db *sqlx.DB
}

// NewSqlxAccountRepository is the raw-SQL account store. Queries use "?"
// placeholders and are rebound for the connected driver.
func NewSqlxAccountRepository(db *sqlx.DB) AccountRepository {
	return &sqlxAccountRepository{db: db}
}

func (r *sqlxAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	if err := account.Init(); err != nil {
		return err
	}

	query := r.db.Rebind(`INSERT INTO accounts (id, email, password_hash, name, created_at)
		VALUES (?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.Name, account.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *sqlxAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	query := r.db.Rebind(`SELECT id, email, password_hash, name, created_at
		FROM accounts WHERE email = ?`)

	var account db_models.Account
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &account, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
