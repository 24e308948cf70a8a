package usecase

import (
	"context"

	"todoapp/internal/domain/entity"
	"todoapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTodoUsecase is a testify mock of usecase.TodoUsecase.
type MockTodoUsecase struct {
	mock.Mock
}

type MockTodoUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTodoUsecase) EXPECT() *MockTodoUsecase_Expecter {
	return &MockTodoUsecase_Expecter{mock: &_m.Mock}
}

// CreateTodo provides a mock function for the type MockTodoUsecase
func (_m *MockTodoUsecase) CreateTodo(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTodoInput) (*entity.Todo, error) {
	ret := _m.Called(ctx, ownerID, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateTodo")
	}

	var r0 *entity.Todo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.CreateTodoInput) (*entity.Todo, error)); ok {
		return rf(ctx, ownerID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.CreateTodoInput) *entity.Todo); ok {
		r0 = rf(ctx, ownerID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Todo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *usecase.CreateTodoInput) error); ok {
		r1 = rf(ctx, ownerID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTodoUsecase_CreateTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateTodo'
type MockTodoUsecase_CreateTodo_Call struct {
	*mock.Call
}

// CreateTodo is a helper method to define mock.On call
func (_e *MockTodoUsecase_Expecter) CreateTodo(ctx any, ownerID any, input any) *MockTodoUsecase_CreateTodo_Call {
	return &MockTodoUsecase_CreateTodo_Call{Call: _e.mock.On("CreateTodo", ctx, ownerID, input)}
}

func (_c *MockTodoUsecase_CreateTodo_Call) Run(run func(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTodoInput)) *MockTodoUsecase_CreateTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(*usecase.CreateTodoInput))
	})

	return _c
}

func (_c *MockTodoUsecase_CreateTodo_Call) Return(_a0 *entity.Todo, _a1 error) *MockTodoUsecase_CreateTodo_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTodoUsecase_CreateTodo_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.CreateTodoInput) (*entity.Todo, error)) *MockTodoUsecase_CreateTodo_Call {
	_c.Call.Return(run)

	return _c
}

// ListTodos provides a mock function for the type MockTodoUsecase
func (_m *MockTodoUsecase) ListTodos(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error) {
	ret := _m.Called(ctx, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for ListTodos")
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

// MockTodoUsecase_ListTodos_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListTodos'
type MockTodoUsecase_ListTodos_Call struct {
	*mock.Call
}

// ListTodos is a helper method to define mock.On call
func (_e *MockTodoUsecase_Expecter) ListTodos(ctx any, ownerID any) *MockTodoUsecase_ListTodos_Call {
	return &MockTodoUsecase_ListTodos_Call{Call: _e.mock.On("ListTodos", ctx, ownerID)}
}

func (_c *MockTodoUsecase_ListTodos_Call) Run(run func(ctx context.Context, ownerID uuid.UUID)) *MockTodoUsecase_ListTodos_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})

	return _c
}

func (_c *MockTodoUsecase_ListTodos_Call) Return(_a0 []*entity.Todo, _a1 error) *MockTodoUsecase_ListTodos_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTodoUsecase_ListTodos_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*entity.Todo, error)) *MockTodoUsecase_ListTodos_Call {
	_c.Call.Return(run)

	return _c
}

// GetTodo provides a mock function for the type MockTodoUsecase
func (_m *MockTodoUsecase) GetTodo(ctx context.Context, ownerID uuid.UUID, todoID uuid.UUID) (*entity.Todo, error) {
	ret := _m.Called(ctx, ownerID, todoID)

	if len(ret) == 0 {
		panic("no return value specified for GetTodo")
	}

	var r0 *entity.Todo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*entity.Todo, error)); ok {
		return rf(ctx, ownerID, todoID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *entity.Todo); ok {
		r0 = rf(ctx, ownerID, todoID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Todo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, ownerID, todoID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTodoUsecase_GetTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetTodo'
type MockTodoUsecase_GetTodo_Call struct {
	*mock.Call
}

// GetTodo is a helper method to define mock.On call
func (_e *MockTodoUsecase_Expecter) GetTodo(ctx any, ownerID any, todoID any) *MockTodoUsecase_GetTodo_Call {
	return &MockTodoUsecase_GetTodo_Call{Call: _e.mock.On("GetTodo", ctx, ownerID, todoID)}
}

func (_c *MockTodoUsecase_GetTodo_Call) Run(run func(ctx context.Context, ownerID uuid.UUID, todoID uuid.UUID)) *MockTodoUsecase_GetTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})

	return _c
}

func (_c *MockTodoUsecase_GetTodo_Call) Return(_a0 *entity.Todo, _a1 error) *MockTodoUsecase_GetTodo_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTodoUsecase_GetTodo_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*entity.Todo, error)) *MockTodoUsecase_GetTodo_Call {
	_c.Call.Return(run)

	return _c
}

// UpdateTodo provides a mock function for the type MockTodoUsecase
func (_m *MockTodoUsecase) UpdateTodo(ctx context.Context, ownerID uuid.UUID, todoID uuid.UUID, input *usecase.UpdateTodoInput) (*entity.Todo, error) {
	ret := _m.Called(ctx, ownerID, todoID, input)

	if len(ret) == 0 {
		panic("no return value specified for UpdateTodo")
	}

	var r0 *entity.Todo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.UpdateTodoInput) (*entity.Todo, error)); ok {
		return rf(ctx, ownerID, todoID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.UpdateTodoInput) *entity.Todo); ok {
		r0 = rf(ctx, ownerID, todoID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Todo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.UpdateTodoInput) error); ok {
		r1 = rf(ctx, ownerID, todoID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTodoUsecase_UpdateTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateTodo'
type MockTodoUsecase_UpdateTodo_Call struct {
	*mock.Call
}

// UpdateTodo is a helper method to define mock.On call
func (_e *MockTodoUsecase_Expecter) UpdateTodo(ctx any, ownerID any, todoID any, input any) *MockTodoUsecase_UpdateTodo_Call {
	return &MockTodoUsecase_UpdateTodo_Call{Call: _e.mock.On("UpdateTodo", ctx, ownerID, todoID, input)}
}

func (_c *MockTodoUsecase_UpdateTodo_Call) Run(run func(ctx context.Context, ownerID uuid.UUID, todoID uuid.UUID, input *usecase.UpdateTodoInput)) *MockTodoUsecase_UpdateTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID), args[3].(*usecase.UpdateTodoInput))
	})

	return _c
}

func (_c *MockTodoUsecase_UpdateTodo_Call) Return(_a0 *entity.Todo, _a1 error) *MockTodoUsecase_UpdateTodo_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTodoUsecase_UpdateTodo_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, *usecase.UpdateTodoInput) (*entity.Todo, error)) *MockTodoUsecase_UpdateTodo_Call {
	_c.Call.Return(run)

	return _c
}

// DeleteTodo provides a mock function for the type MockTodoUsecase
func (_m *MockTodoUsecase) DeleteTodo(ctx context.Context, ownerID uuid.UUID, todoID uuid.UUID) error {
	ret := _m.Called(ctx, ownerID, todoID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteTodo")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, ownerID, todoID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTodoUsecase_DeleteTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteTodo'
type MockTodoUsecase_DeleteTodo_Call struct {
	*mock.Call
}

// DeleteTodo is a helper method to define mock.On call
func (_e *MockTodoUsecase_Expecter) DeleteTodo(ctx any, ownerID any, todoID any) *MockTodoUsecase_DeleteTodo_Call {
	return &MockTodoUsecase_DeleteTodo_Call{Call: _e.mock.On("DeleteTodo", ctx, ownerID, todoID)}
}

func (_c *MockTodoUsecase_DeleteTodo_Call) Run(run func(ctx context.Context, ownerID uuid.UUID, todoID uuid.UUID)) *MockTodoUsecase_DeleteTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})

	return _c
}

func (_c *MockTodoUsecase_DeleteTodo_Call) Return(_a0 error) *MockTodoUsecase_DeleteTodo_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockTodoUsecase_DeleteTodo_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) error) *MockTodoUsecase_DeleteTodo_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockTodoUsecase creates a new instance of MockTodoUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTodoUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTodoUsecase {
	m := &MockTodoUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
