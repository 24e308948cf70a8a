package service

import (
	"time"

	"todoapp/internal/domain/entity"
	"todoapp/internal/errors"

	"github.com/google/uuid"
)

// Token verification failures. The auth gate collapses all of them into one response.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token is expired")
)

// IssuedToken is a signed access token and its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless access tokens.
type TokenService interface {
	// GenerateToken issues a token for the account using the service clock and configured TTL.
	GenerateToken(accountID uuid.UUID, email string) (*IssuedToken, error)

	// ValidateToken verifies a token against the service clock and returns its principal.
	// Errors wrap ErrTokenMalformed, ErrTokenSignature or ErrTokenExpired.
	ValidateToken(tokenString string) (*entity.Principal, error)
}
