package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "todoapp/internal/delivery/context"
	"todoapp/internal/domain/entity"
	domainerrors "todoapp/internal/domain/errors"
	"todoapp/internal/domain/repository"
	"todoapp/internal/errors"
	"todoapp/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// todoService implements the TodoUsecase interface.
type todoService struct {
	txManager repository.TransactionManager
	todoRepo  repository.TodoRepository
	logger    *slog.Logger
}

// TodoServiceParams holds dependencies for todoService, injected by Fx.
type TodoServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TodoRepo  repository.TodoRepository
	Logger    *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		txManager: params.TxManager,
		todoRepo:  params.TodoRepo,
		logger:    params.Logger,
	}
}

func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTodo binds the new todo to ownerID.
func (srv *todoService) CreateTodo(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTodoInput) (*entity.Todo, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("title is required")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("title is required")
	}

	todo := &entity.Todo{
		OwnerID:     ownerID,
		Title:       title,
		Description: input.Description,
	}
	if err := srv.todoRepo.Create(ctx, todo); err != nil {
		return nil, errors.Wrap(err, "failed to create todo")
	}

	srv.log(ctx).Info("Todo created", slog.String("todoID", todo.ID.String()))

	return todo, nil
}

// ListTodos returns the owner's todos, newest first.
func (srv *todoService) ListTodos(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error) {
	todos, err := srv.todoRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list todos")
	}

	return todos, nil
}

// GetTodo returns one todo after the ownership check.
func (srv *todoService) GetTodo(ctx context.Context, ownerID, todoID uuid.UUID) (*entity.Todo, error) {
	return loadOwnedTodo(ctx, srv.todoRepo, ownerID, todoID)
}

// UpdateTodo changes only the fields present in input. Lookup, check and write share a transaction.
func (srv *todoService) UpdateTodo(ctx context.Context, ownerID, todoID uuid.UUID, input *usecase.UpdateTodoInput) (*entity.Todo, error) {
	changes, err := toTodoChanges(input)
	if err != nil {
		return nil, err
	}

	var updated *entity.Todo
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		todoRepo := repoFactory.TodoRepo()

		if _, err := loadOwnedTodo(ctx, todoRepo, ownerID, todoID); err != nil {
			return err
		}

		todo, err := todoRepo.Update(ctx, todoID, changes)
		if err != nil {
			return mapTodoError(err, "failed to update todo")
		}
		updated = todo

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTodo removes one todo after the ownership check.
func (srv *todoService) DeleteTodo(ctx context.Context, ownerID, todoID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		todoRepo := repoFactory.TodoRepo()

		if _, err := loadOwnedTodo(ctx, todoRepo, ownerID, todoID); err != nil {
			return err
		}

		if err := todoRepo.Delete(ctx, todoID); err != nil {
			return mapTodoError(err, "failed to delete todo")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Todo deleted", slog.String("todoID", todoID.String()))

	return nil
}

// loadOwnedTodo runs lookup then ownership: a missing todo is NotFound even for a stranger.
func loadOwnedTodo(ctx context.Context, todoRepo repository.TodoRepository, ownerID, todoID uuid.UUID) (*entity.Todo, error) {
	todo, err := todoRepo.FindByID(ctx, todoID)
	if err != nil {
		return nil, mapTodoError(err, "failed to load todo")
	}

	if err := entity.CheckOwnership(ownerID, todo.OwnerID); err != nil {
		return nil, err
	}

	return todo, nil
}

func mapTodoError(err error, message string) error {
	if errors.Is(err, repository.ErrTodoNotFound) {
		return domainerrors.ErrTodoNotFound
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, message)
}

func toTodoChanges(input *usecase.UpdateTodoInput) (repository.TodoChanges, error) {
	if input == nil {
		return repository.TodoChanges{}, domainerrors.ErrInvalidInput.WithDetails("at least one field is required")
	}

	changes := repository.TodoChanges{
		Description: input.Description,
		Completed:   input.Completed,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return repository.TodoChanges{}, domainerrors.ErrInvalidInput.WithDetails("title cannot be empty")
		}
		changes.Title = &title
	}

	if changes.IsEmpty() {
		return repository.TodoChanges{}, domainerrors.ErrInvalidInput.WithDetails("at least one field is required")
	}

	return changes, nil
}
