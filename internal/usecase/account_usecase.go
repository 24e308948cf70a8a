// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"todoapp/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to open a new account.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by both signup and login.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	Account   *entity.Account
}

// AccountUsecase defines the account and credential operations.
type AccountUsecase interface {
	// Signup validates input before touching storage, stores the hashed credential and issues a token.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// Login issues a fresh token. Unknown email and wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Me returns the account behind an authenticated principal.
	Me(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
