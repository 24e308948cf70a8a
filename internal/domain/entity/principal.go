package entity

import "github.com/google/uuid"

// Principal is the authenticated identity behind a request.
// It is resolved once by the auth gate and passed by value afterwards.
type Principal struct {
	AccountID uuid.UUID
	Email     string
}
