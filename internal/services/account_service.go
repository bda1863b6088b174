package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"
)

const (
	DemoEmail       = "demo@example.com"
	DemoPassword    = "demo123"
	DemoDisplayName = "Demo User"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Authenticate(ctx context.Context, request request_models.LoginRequest) (*db_models.Account, error)
	SeedDemoUser(ctx context.Context) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	hasher      utils.PasswordHasher
	log         *slog.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, hasher utils.PasswordHasher, log *slog.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		hasher:      hasher,
		log:         log,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	if strings.TrimSpace(request.Email) == "" || request.Password == "" {
		return nil, fmt.Errorf("%w: please fill all fields", utils.ErrInvalidInput)
	}
	if request.Password != request.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", utils.ErrInvalidInput)
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := a.hasher.Hash(request.Password)
	if err != nil {
		a.log.Error("hash password", "err", err)
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		// lost a race against a concurrent sign-up with the same email
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		a.log.Error("insert account", "err", err)
		return nil, utils.ErrDatabaseError
	}

	a.log.Info("account registered", "account_id", newAccount.ID)

	return &response_models.AccountResponse{
		ID:        newAccount.ID.String(),
		Name:      newAccount.Name,
		Email:     newAccount.Email,
		CreatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(newAccount.CreatedAt)),
	}, nil
}

// Authenticate returns ErrInvalidCredentials for both an unknown email and a
// wrong password.
func (a *AccountService) Authenticate(ctx context.Context, request request_models.LoginRequest) (*db_models.Account, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		metrics.ObserveLogin("error")
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		metrics.ObserveLogin("rejected")
		return nil, utils.ErrInvalidCredentials
	}

	if err := a.hasher.Compare(account.PasswordHash, request.Password); err != nil {
		metrics.ObserveLogin("rejected")
		return nil, utils.ErrInvalidCredentials
	}

	a.log.Debug("login verified", "account_id", account.ID, "took", time.Since(startTime))
	metrics.ObserveLogin("success")
	return account, nil
}

func (a *AccountService) SeedDemoUser(ctx context.Context) error {
	_, err := a.Register(ctx, request_models.SignUpRequest{
		DisplayName:     DemoDisplayName,
		Email:           DemoEmail,
		Password:        DemoPassword,
		ConfirmPassword: DemoPassword,
	})
	if errors.Is(err, utils.ErrEmailAlreadyExists) {
		return nil
	}
	return err
}
