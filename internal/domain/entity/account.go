// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user, identified for login by its email.
type Account struct {
	ID           uuid.UUID // Server-generated identifier, used as the token subject and todo owner reference.
	Email        string    // Unique, case-sensitive login identifier.
	Name         string    // Optional display name.
	PasswordHash string    // bcrypt hash embedding version, cost and salt.
	CreatedAt    time.Time // Timestamp of signup.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
