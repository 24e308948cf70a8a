package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"todoapp/internal/domain/entity"
	domainerrors "todoapp/internal/domain/errors"
	"todoapp/internal/domain/repository"
	"todoapp/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var todoColumns = []string{"id", "owner_id", "title", "description", "completed", "created_at", "updated_at"}

func TestTodoRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "todos"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	todo := &entity.Todo{OwnerID: uuid.New(), Title: "buy milk"}
	require.NoError(t, repo.Create(context.Background(), todo))

	assert.NotEqual(t, uuid.Nil, todo.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Create_UnknownOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "todos"`)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), &entity.Todo{OwnerID: uuid.New(), Title: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestTodoRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "todos" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(todoColumns))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
}

func TestTodoRepository_FindByOwner_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	ownerID := uuid.New()
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "todos" WHERE owner_id = $1 ORDER BY created_at DESC,id DESC`)).
		WithArgs(ownerID.String()).
		WillReturnRows(sqlmock.NewRows(todoColumns).
			AddRow(first.String(), ownerID.String(), "newer", "", false, newer, newer).
			AddRow(second.String(), ownerID.String(), "older", "desc", true, older, older))

	todos, err := repo.FindByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, first, todos[0].ID)
	assert.Equal(t, "newer", todos[0].Title)
	assert.Equal(t, ownerID, todos[1].OwnerID)
	assert.True(t, todos[1].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_FindByOwner_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "todos" WHERE owner_id = $1`)).
		WillReturnRows(sqlmock.NewRows(todoColumns))

	todos, err := repo.FindByOwner(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestTodoRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	id, ownerID := uuid.New(), uuid.New()
	now := time.Now().UTC()
	completed := true

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "todos" SET "completed"=$1,"updated_at"=$2 WHERE id = $3`)).
		WithArgs(true, sqlmock.AnyArg(), id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "todos" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(todoColumns).
			AddRow(id.String(), ownerID.String(), "buy milk", "", true, now, now))

	todo, err := repo.Update(context.Background(), id, repository.TodoChanges{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, todo.Completed)
	assert.Equal(t, "buy milk", todo.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	title := "renamed"
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "todos" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), uuid.New(), repository.TodoChanges{Title: &title})
	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "todos" WHERE id = $1`)).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "todos" WHERE id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
}
