package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"tripplanner/internal/models/db_models"
)

// ErrDuplicateKey reports a unique constraint violation, e.g. an email
// that is already registered.
var ErrDuplicateKey = errors.New("duplicate key")

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	err := a.db.WithContext(ctx).Create(account).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// FindByEmail matches the email exactly as stored; it returns nil, nil
// when no account exists.
func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}

	return &account, nil
}
