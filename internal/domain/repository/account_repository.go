// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"todoapp/internal/domain/entity"
	"todoapp/internal/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the credential store: email -> salted password hash.
type AccountRepository interface {
	// Create persists a new account. A duplicate email yields domainerrors.ErrAccountAlreadyExists,
	// decided by the storage unique constraint.
	Create(ctx context.Context, account *entity.Account) error

	// FindByEmail retrieves an account by its login identifier.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID retrieves an account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
