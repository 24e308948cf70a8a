package repository

import (
	"context"

	"todoapp/internal/domain/entity"
	"todoapp/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTodoRepository is a testify mock of repository.TodoRepository.
type MockTodoRepository struct {
	mock.Mock
}

type MockTodoRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTodoRepository) EXPECT() *MockTodoRepository_Expecter {
	return &MockTodoRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function for the type MockTodoRepository
func (_m *MockTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	ret := _m.Called(ctx, todo)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Todo) error); ok {
		r0 = rf(ctx, todo)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTodoRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockTodoRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockTodoRepository_Expecter) Create(ctx any, todo any) *MockTodoRepository_Create_Call {
	return &MockTodoRepository_Create_Call{Call: _e.mock.On("Create", ctx, todo)}
}

func (_c *MockTodoRepository_Create_Call) Run(run func(ctx context.Context, todo *entity.Todo)) *MockTodoRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Todo))
	})

	return _c
}

func (_c *MockTodoRepository_Create_Call) Return(_a0 error) *MockTodoRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockTodoRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Todo) error) *MockTodoRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// FindByID provides a mock function for the type MockTodoRepository
func (_m *MockTodoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Todo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Todo, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Todo); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Todo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTodoRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockTodoRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
func (_e *MockTodoRepository_Expecter) FindByID(ctx any, id any) *MockTodoRepository_FindByID_Call {
	return &MockTodoRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockTodoRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockTodoRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})

	return _c
}

func (_c *MockTodoRepository_FindByID_Call) Return(_a0 *entity.Todo, _a1 error) *MockTodoRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTodoRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Todo, error)) *MockTodoRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// FindByOwner provides a mock function for the type MockTodoRepository
func (_m *MockTodoRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error) {
	ret := _m.Called(ctx, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for FindByOwner")
	}

	var r0 []*entity.Todo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*entity.Todo, error)); ok {
		return rf(ctx, ownerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*entity.Todo); ok {
		r0 = rf(ctx, ownerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Todo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, ownerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTodoRepository_FindByOwner_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByOwner'
type MockTodoRepository_FindByOwner_Call struct {
	*mock.Call
}

// FindByOwner is a helper method to define mock.On call
func (_e *MockTodoRepository_Expecter) FindByOwner(ctx any, ownerID any) *MockTodoRepository_FindByOwner_Call {
	return &MockTodoRepository_FindByOwner_Call{Call: _e.mock.On("FindByOwner", ctx, ownerID)}
}

func (_c *MockTodoRepository_FindByOwner_Call) Run(run func(ctx context.Context, ownerID uuid.UUID)) *MockTodoRepository_FindByOwner_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})

	return _c
}

func (_c *MockTodoRepository_FindByOwner_Call) Return(_a0 []*entity.Todo, _a1 error) *MockTodoRepository_FindByOwner_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTodoRepository_FindByOwner_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*entity.Todo, error)) *MockTodoRepository_FindByOwner_Call {
	_c.Call.Return(run)

	return _c
}

// Update provides a mock function for the type MockTodoRepository
func (_m *MockTodoRepository) Update(ctx context.Context, id uuid.UUID, changes repository.TodoChanges) (*entity.Todo, error) {
	ret := _m.Called(ctx, id, changes)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *entity.Todo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, repository.TodoChanges) (*entity.Todo, error)); ok {
		return rf(ctx, id, changes)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, repository.TodoChanges) *entity.Todo); ok {
		r0 = rf(ctx, id, changes)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Todo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, repository.TodoChanges) error); ok {
		r1 = rf(ctx, id, changes)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTodoRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockTodoRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
func (_e *MockTodoRepository_Expecter) Update(ctx any, id any, changes any) *MockTodoRepository_Update_Call {
	return &MockTodoRepository_Update_Call{Call: _e.mock.On("Update", ctx, id, changes)}
}

func (_c *MockTodoRepository_Update_Call) Run(run func(ctx context.Context, id uuid.UUID, changes repository.TodoChanges)) *MockTodoRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(repository.TodoChanges))
	})

	return _c
}

func (_c *MockTodoRepository_Update_Call) Return(_a0 *entity.Todo, _a1 error) *MockTodoRepository_Update_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTodoRepository_Update_Call) RunAndReturn(run func(context.Context, uuid.UUID, repository.TodoChanges) (*entity.Todo, error)) *MockTodoRepository_Update_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function for the type MockTodoRepository
func (_m *MockTodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTodoRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockTodoRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
func (_e *MockTodoRepository_Expecter) Delete(ctx any, id any) *MockTodoRepository_Delete_Call {
	return &MockTodoRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockTodoRepository_Delete_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockTodoRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})

	return _c
}

func (_c *MockTodoRepository_Delete_Call) Return(_a0 error) *MockTodoRepository_Delete_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockTodoRepository_Delete_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockTodoRepository_Delete_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockTodoRepository creates a new instance of MockTodoRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTodoRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTodoRepository {
	m := &MockTodoRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
