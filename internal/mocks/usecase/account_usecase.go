package usecase

import (
	"context"

	"todoapp/internal/domain/entity"
	"todoapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a testify mock of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

type MockAccountUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountUsecase) EXPECT() *MockAccountUsecase_Expecter {
	return &MockAccountUsecase_Expecter{mock: &_m.Mock}
}

// Signup provides a mock function for the type MockAccountUsecase
func (_m *MockAccountUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Signup")
	}

	var r0 *usecase.AuthOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.SignupInput) (*usecase.AuthOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.SignupInput) *usecase.AuthOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.AuthOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.SignupInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUsecase_Signup_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Signup'
type MockAccountUsecase_Signup_Call struct {
	*mock.Call
}

// Signup is a helper method to define mock.On call
func (_e *MockAccountUsecase_Expecter) Signup(ctx any, input any) *MockAccountUsecase_Signup_Call {
	return &MockAccountUsecase_Signup_Call{Call: _e.mock.On("Signup", ctx, input)}
}

func (_c *MockAccountUsecase_Signup_Call) Run(run func(ctx context.Context, input *usecase.SignupInput)) *MockAccountUsecase_Signup_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.SignupInput))
	})

	return _c
}

func (_c *MockAccountUsecase_Signup_Call) Return(_a0 *usecase.AuthOutput, _a1 error) *MockAccountUsecase_Signup_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAccountUsecase_Signup_Call) RunAndReturn(run func(context.Context, *usecase.SignupInput) (*usecase.AuthOutput, error)) *MockAccountUsecase_Signup_Call {
	_c.Call.Return(run)

	return _c
}

// Login provides a mock function for the type MockAccountUsecase
func (_m *MockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 *usecase.AuthOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) (*usecase.AuthOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) *usecase.AuthOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.AuthOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.LoginInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUsecase_Login_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Login'
type MockAccountUsecase_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
func (_e *MockAccountUsecase_Expecter) Login(ctx any, input any) *MockAccountUsecase_Login_Call {
	return &MockAccountUsecase_Login_Call{Call: _e.mock.On("Login", ctx, input)}
}

func (_c *MockAccountUsecase_Login_Call) Run(run func(ctx context.Context, input *usecase.LoginInput)) *MockAccountUsecase_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.LoginInput))
	})

	return _c
}

func (_c *MockAccountUsecase_Login_Call) Return(_a0 *usecase.AuthOutput, _a1 error) *MockAccountUsecase_Login_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAccountUsecase_Login_Call) RunAndReturn(run func(context.Context, *usecase.LoginInput) (*usecase.AuthOutput, error)) *MockAccountUsecase_Login_Call {
	_c.Call.Return(run)

	return _c
}

// Me provides a mock function for the type MockAccountUsecase
func (_m *MockAccountUsecase) Me(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	ret := _m.Called(ctx, accountID)

	if len(ret) == 0 {
		panic("no return value specified for Me")
	}

	var r0 *entity.Account
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Account, error)); ok {
		return rf(ctx, accountID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Account); ok {
		r0 = rf(ctx, accountID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Account)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, accountID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUsecase_Me_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Me'
type MockAccountUsecase_Me_Call struct {
	*mock.Call
}

// Me is a helper method to define mock.On call
func (_e *MockAccountUsecase_Expecter) Me(ctx any, accountID any) *MockAccountUsecase_Me_Call {
	return &MockAccountUsecase_Me_Call{Call: _e.mock.On("Me", ctx, accountID)}
}

func (_c *MockAccountUsecase_Me_Call) Run(run func(ctx context.Context, accountID uuid.UUID)) *MockAccountUsecase_Me_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})

	return _c
}

func (_c *MockAccountUsecase_Me_Call) Return(_a0 *entity.Account, _a1 error) *MockAccountUsecase_Me_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAccountUsecase_Me_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Account, error)) *MockAccountUsecase_Me_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockAccountUsecase creates a new instance of MockAccountUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAccountUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
