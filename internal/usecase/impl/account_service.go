// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"todoapp/config"
	deliverycontext "todoapp/internal/delivery/context"
	"todoapp/internal/domain/entity"
	domainerrors "todoapp/internal/domain/errors"
	"todoapp/internal/domain/repository"
	"todoapp/internal/domain/service"
	"todoapp/internal/errors"
	"todoapp/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo       repository.AccountRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPasswordLength int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	minPasswordLength := config.DefaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &accountService{
		accountRepo:       params.AccountRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates the account and returns a token for it.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	if err := srv.validateSignup(input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	account := &entity.Account{
		Email:        input.Email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrAccountAlreadyExists) {
			srv.log(ctx).Info("Signup rejected, email already registered")

			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.String("accountID", account.ID.String()))

	return srv.issue(ctx, account)
}

// Login verifies the credential pair. Both failure paths return the same error value.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("email and password are required")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Debug("Login failed, unknown email")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Debug("Login failed, password mismatch", slog.String("accountID", account.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(ctx, account)
}

// Me returns the authenticated account.
func (srv *accountService) Me(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load account")
	}

	return account, nil
}

func (srv *accountService) validateSignup(input *usecase.SignupInput) error {
	if input == nil || input.Email == "" || input.Password == "" {
		return domainerrors.ErrInvalidInput.WithDetails("email and password are required")
	}

	if len(input.Password) < srv.minPasswordLength {
		return domainerrors.ErrInvalidInput.WithDetails("password is too short")
	}

	// Byte length, not rune count: multibyte passwords hit the hasher limit sooner.
	if len(input.Password) > service.MaxPasswordBytes {
		return domainerrors.ErrInvalidInput.WithDetails("password is too long")
	}

	return nil
}

func (srv *accountService) issue(ctx context.Context, account *entity.Account) (*usecase.AuthOutput, error) {
	issued, err := srv.tokenService.GenerateToken(account.ID, account.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return &usecase.AuthOutput{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Account:   account,
	}, nil
}
