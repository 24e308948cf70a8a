package service

import (
	"todoapp/internal/domain/entity"
	"todoapp/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// GenerateToken provides a mock function for the type MockTokenService
func (_m *MockTokenService) GenerateToken(accountID uuid.UUID, email string) (*service.IssuedToken, error) {
	ret := _m.Called(accountID, email)

	if len(ret) == 0 {
		panic("no return value specified for GenerateToken")
	}

	var r0 *service.IssuedToken
	var r1 error
	if rf, ok := ret.Get(0).(func(uuid.UUID, string) (*service.IssuedToken, error)); ok {
		return rf(accountID, email)
	}
	if rf, ok := ret.Get(0).(func(uuid.UUID, string) *service.IssuedToken); ok {
		r0 = rf(accountID, email)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.IssuedToken)
		}
	}

	if rf, ok := ret.Get(1).(func(uuid.UUID, string) error); ok {
		r1 = rf(accountID, email)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_GenerateToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateToken'
type MockTokenService_GenerateToken_Call struct {
	*mock.Call
}

// GenerateToken is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) GenerateToken(accountID any, email any) *MockTokenService_GenerateToken_Call {
	return &MockTokenService_GenerateToken_Call{Call: _e.mock.On("GenerateToken", accountID, email)}
}

func (_c *MockTokenService_GenerateToken_Call) Run(run func(accountID uuid.UUID, email string)) *MockTokenService_GenerateToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(uuid.UUID), args[1].(string))
	})

	return _c
}

func (_c *MockTokenService_GenerateToken_Call) Return(_a0 *service.IssuedToken, _a1 error) *MockTokenService_GenerateToken_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenService_GenerateToken_Call) RunAndReturn(run func(uuid.UUID, string) (*service.IssuedToken, error)) *MockTokenService_GenerateToken_Call {
	_c.Call.Return(run)

	return _c
}

// ValidateToken provides a mock function for the type MockTokenService
func (_m *MockTokenService) ValidateToken(tokenString string) (*entity.Principal, error) {
	ret := _m.Called(tokenString)

	if len(ret) == 0 {
		panic("no return value specified for ValidateToken")
	}

	var r0 *entity.Principal
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*entity.Principal, error)); ok {
		return rf(tokenString)
	}
	if rf, ok := ret.Get(0).(func(string) *entity.Principal); ok {
		r0 = rf(tokenString)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Principal)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(tokenString)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_ValidateToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ValidateToken'
type MockTokenService_ValidateToken_Call struct {
	*mock.Call
}

// ValidateToken is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) ValidateToken(tokenString any) *MockTokenService_ValidateToken_Call {
	return &MockTokenService_ValidateToken_Call{Call: _e.mock.On("ValidateToken", tokenString)}
}

func (_c *MockTokenService_ValidateToken_Call) Run(run func(tokenString string)) *MockTokenService_ValidateToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockTokenService_ValidateToken_Call) Return(_a0 *entity.Principal, _a1 error) *MockTokenService_ValidateToken_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenService_ValidateToken_Call) RunAndReturn(run func(string) (*entity.Principal, error)) *MockTokenService_ValidateToken_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
