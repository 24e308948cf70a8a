package usecase

import (
	"context"

	"todoapp/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTodoInput defines the fields accepted when creating a todo.
type CreateTodoInput struct {
	Title       string
	Description string
}

// UpdateTodoInput is a partial update. Nil fields are left unchanged.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TodoUsecase defines owner-scoped todo operations.
// Single-resource operations report NotFound before Forbidden.
type TodoUsecase interface {
	CreateTodo(ctx context.Context, ownerID uuid.UUID, input *CreateTodoInput) (*entity.Todo, error)
	ListTodos(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error)
	GetTodo(ctx context.Context, ownerID, todoID uuid.UUID) (*entity.Todo, error)
	UpdateTodo(ctx context.Context, ownerID, todoID uuid.UUID, input *UpdateTodoInput) (*entity.Todo, error)
	DeleteTodo(ctx context.Context, ownerID, todoID uuid.UUID) error
}
