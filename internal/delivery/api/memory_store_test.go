package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"todoapp/internal/domain/entity"
	domainerrors "todoapp/internal/domain/errors"
	"todoapp/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryStore backs the server tests with maps guarded by one mutex.
// Execute holds the lock for the whole callback, so todo repositories handed to it skip locking.
type memoryStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]entity.Account
	todos    map[uuid.UUID]entity.Todo
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts: make(map[uuid.UUID]entity.Account),
		todos:    make(map[uuid.UUID]entity.Todo),
	}
}

func (s *memoryStore) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(memoryFactory{store: s})
}

type memoryFactory struct {
	store *memoryStore
}

func (f memoryFactory) TodoRepo() repository.TodoRepository {
	return &memoryTodoRepo{store: f.store, locked: true}
}

type memoryAccountRepo struct {
	store *memoryStore
}

func (r *memoryAccountRepo) lock() func() {
	r.store.mu.Lock()

	return r.store.mu.Unlock
}

func (r *memoryAccountRepo) Create(_ context.Context, account *entity.Account) error {
	defer r.lock()()

	for _, existing := range r.store.accounts {
		if existing.Email == account.Email {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("duplicate email")
		}
	}

	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		account.ID = id
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.store.accounts[account.ID] = *account

	return nil
}

func (r *memoryAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	defer r.lock()()

	for _, account := range r.store.accounts {
		if account.Email == email {
			return &account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	defer r.lock()()

	account, ok := r.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return &account, nil
}

type memoryTodoRepo struct {
	store  *memoryStore
	locked bool
}

func (r *memoryTodoRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()

	return r.store.mu.Unlock
}

func (r *memoryTodoRepo) Create(_ context.Context, todo *entity.Todo) error {
	defer r.lock()()

	if _, ok := r.store.accounts[todo.OwnerID]; !ok {
		return domainerrors.ErrAccountNotFound
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	now := time.Now()
	todo.ID = id
	todo.CreatedAt = now
	todo.UpdatedAt = now
	r.store.todos[id] = *todo

	return nil
}

func (r *memoryTodoRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Todo, error) {
	defer r.lock()()

	todo, ok := r.store.todos[id]
	if !ok {
		return nil, repository.ErrTodoNotFound
	}

	return &todo, nil
}

func (r *memoryTodoRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Todo, error) {
	defer r.lock()()

	var todos []*entity.Todo
	for _, todo := range r.store.todos {
		if todo.OwnerID == ownerID {
			todos = append(todos, &todo)
		}
	}

	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}

		return todos[i].ID.String() > todos[j].ID.String()
	})

	return todos, nil
}

func (r *memoryTodoRepo) Update(_ context.Context, id uuid.UUID, changes repository.TodoChanges) (*entity.Todo, error) {
	defer r.lock()()

	todo, ok := r.store.todos[id]
	if !ok {
		return nil, repository.ErrTodoNotFound
	}

	if changes.Title != nil {
		todo.Title = *changes.Title
	}
	if changes.Description != nil {
		todo.Description = *changes.Description
	}
	if changes.Completed != nil {
		todo.Completed = *changes.Completed
	}
	todo.UpdatedAt = time.Now()
	r.store.todos[id] = todo

	return &todo, nil
}

func (r *memoryTodoRepo) Delete(_ context.Context, id uuid.UUID) error {
	defer r.lock()()

	if _, ok := r.store.todos[id]; !ok {
		return repository.ErrTodoNotFound
	}
	delete(r.store.todos, id)

	return nil
}
