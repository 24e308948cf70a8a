// Package handler contains the HTTP handlers for the API delivery.
package handler

import (
	"todoapp/internal/delivery/api/middleware"
	"todoapp/internal/delivery/api/response"
	"todoapp/internal/delivery/api/validator"
	"todoapp/internal/domain/entity"
	domainerrors "todoapp/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the body into req and runs struct validation.
// Both steps happen before any use case is called.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("request body is not valid JSON")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	return nil
}

// principal returns the gate-resolved principal. Routes using it are always behind
// Authenticate, so a missing value is a wiring fault reported as MISSING_CREDENTIAL.
func principal(c echo.Context) (entity.Principal, error) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrMissingCredential
	}

	return p, nil
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails("id must be a UUID")
	}

	return id, nil
}
