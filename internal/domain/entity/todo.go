package entity

import (
	"time"

	domainerrors "todoapp/internal/domain/errors"

	"github.com/google/uuid"
)

// Todo is a single task owned by exactly one account.
type Todo struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"` // Immutable after creation.
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CheckOwnership authorizes principalID against a resource owner reference.
// It returns nil when they match and ErrForbidden otherwise.
func CheckOwnership(principalID, ownerID uuid.UUID) error {
	if principalID != ownerID {
		return domainerrors.ErrForbidden
	}

	return nil
}
