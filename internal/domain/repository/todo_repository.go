package repository

import (
	"context"

	"todoapp/internal/domain/entity"
	"todoapp/internal/errors"

	"github.com/google/uuid"
)

// ErrTodoNotFound is returned when no todo matches the lookup.
var ErrTodoNotFound = errors.New("todo not found")

// TodoChanges lists the fields of a partial update. Nil fields are left untouched.
type TodoChanges struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether no field is set.
func (c TodoChanges) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.Completed == nil
}

// TodoRepository defines persistence for todos.
type TodoRepository interface {
	// Create persists a new todo.
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByID retrieves a todo regardless of owner; ownership is checked by the caller.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error)

	// FindByOwner lists the owner's todos, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error)

	// Update applies changes to the todo and returns the stored result.
	Update(ctx context.Context, id uuid.UUID, changes TodoChanges) (*entity.Todo, error)

	// Delete removes a todo by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
