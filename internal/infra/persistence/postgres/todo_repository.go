package postgres

import (
	"context"
	"time"

	"todoapp/internal/domain/entity"
	domainerrors "todoapp/internal/domain/errors"
	"todoapp/internal/domain/repository"
	"todoapp/internal/errors"
	"todoapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// todoRepository implements repository.TodoRepository using GORM.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if todo.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate todo id")
		}
		todo.ID = id
	}

	todoM := fromTodoDomain(todo)
	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("todo owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required todo information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	todo.CreatedAt = todoM.CreatedAt
	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

func (repo *todoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	var todoM model.TodoModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&todoM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo by id")
	}

	return toTodoDomain(&todoM), nil
}

// FindByOwner lists newest first; id breaks ties between rows created in the same instant.
func (repo *todoRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error) {
	var todoMs []*model.TodoModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&todoMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find todos by owner")
	}

	todos := make([]*entity.Todo, 0, len(todoMs))
	for _, todoM := range todoMs {
		todos = append(todos, toTodoDomain(todoM))
	}

	return todos, nil
}

// Update writes only the fields present in changes, then reads the row back.
func (repo *todoRepository) Update(ctx context.Context, id uuid.UUID, changes repository.TodoChanges) (*entity.Todo, error) {
	updates := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.Completed != nil {
		updates["completed"] = *changes.Completed
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TodoModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return nil, domainerrors.ErrInvalidInput.WrapMessage("todo field cannot be null")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update todo")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTodoNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *todoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TodoModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

func toTodoDomain(m *model.TodoModel) *entity.Todo {
	if m == nil {
		return nil
	}

	return &entity.Todo{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		Completed:   m.Completed,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromTodoDomain(t *entity.Todo) *model.TodoModel {
	if t == nil {
		return nil
	}

	return &model.TodoModel{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
