package mocks

import (
	context "context"

	models "github.com/blogem/petition-desk/models"
	mock "github.com/stretchr/testify/mock"
)

// MockEntryRepository is a mock type for the EntryRepository type
type MockEntryRepository struct {
	mock.Mock
}

type MockEntryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEntryRepository) EXPECT() *MockEntryRepository_Expecter {
	return &MockEntryRepository_Expecter{mock: &_m.Mock}
}

// Count provides a mock function with given fields: ctx
func (_m *MockEntryRepository) Count(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Count")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (int64, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) int64); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockEntryRepository_Count_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Count'
type MockEntryRepository_Count_Call struct {
	*mock.Call
}

// Count is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockEntryRepository_Expecter) Count(ctx interface{}) *MockEntryRepository_Count_Call {
	return &MockEntryRepository_Count_Call{Call: _e.mock.On("Count", ctx)}
}

func (_c *MockEntryRepository_Count_Call) Run(run func(ctx context.Context)) *MockEntryRepository_Count_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockEntryRepository_Count_Call) Return(_a0 int64, _a1 error) *MockEntryRepository_Count_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockEntryRepository_Count_Call) RunAndReturn(run func(context.Context) (int64, error)) *MockEntryRepository_Count_Call {
	_c.Call.Return(run)
	return _c
}

// CountByFormType provides a mock function with given fields: ctx, formType
func (_m *MockEntryRepository) CountByFormType(ctx context.Context, formType string) (int64, error) {
	ret := _m.Called(ctx, formType)

	if len(ret) == 0 {
		panic("no return value specified for CountByFormType")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (int64, error)); ok {
		return rf(ctx, formType)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, formType)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, formType)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockEntryRepository_CountByFormType_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountByFormType'
type MockEntryRepository_CountByFormType_Call struct {
	*mock.Call
}

// CountByFormType is a helper method to define mock.On call
//   - ctx context.Context
//   - formType string
func (_e *MockEntryRepository_Expecter) CountByFormType(ctx interface{}, formType interface{}) *MockEntryRepository_CountByFormType_Call {
	return &MockEntryRepository_CountByFormType_Call{Call: _e.mock.On("CountByFormType", ctx, formType)}
}

func (_c *MockEntryRepository_CountByFormType_Call) Run(run func(ctx context.Context, formType string)) *MockEntryRepository_CountByFormType_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockEntryRepository_CountByFormType_Call) Return(_a0 int64, _a1 error) *MockEntryRepository_CountByFormType_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockEntryRepository_CountByFormType_Call) RunAndReturn(run func(context.Context, string) (int64, error)) *MockEntryRepository_CountByFormType_Call {
	_c.Call.Return(run)
	return _c
}

// Create provides a mock function with given fields: ctx, entry
func (_m *MockEntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	ret := _m.Called(ctx, entry)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Entry) error); ok {
		r0 = rf(ctx, entry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEntryRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockEntryRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - entry *models.Entry
func (_e *MockEntryRepository_Expecter) Create(ctx interface{}, entry interface{}) *MockEntryRepository_Create_Call {
	return &MockEntryRepository_Create_Call{Call: _e.mock.On("Create", ctx, entry)}
}

func (_c *MockEntryRepository_Create_Call) Run(run func(ctx context.Context, entry *models.Entry)) *MockEntryRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*models.Entry))
	})
	return _c
}

func (_c *MockEntryRepository_Create_Call) Return(_a0 error) *MockEntryRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEntryRepository_Create_Call) RunAndReturn(run func(context.Context, *models.Entry) error) *MockEntryRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// ForEachNewestFirst provides a mock function with given fields: ctx, fn
func (_m *MockEntryRepository) ForEachNewestFirst(ctx context.Context, fn func(*models.Entry) error) error {
	ret := _m.Called(ctx, fn)

	if len(ret) == 0 {
		panic("no return value specified for ForEachNewestFirst")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(*models.Entry) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEntryRepository_ForEachNewestFirst_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ForEachNewestFirst'
type MockEntryRepository_ForEachNewestFirst_Call struct {
	*mock.Call
}

// ForEachNewestFirst is a helper method to define mock.On call
//   - ctx context.Context
//   - fn func(*models.Entry) error
func (_e *MockEntryRepository_Expecter) ForEachNewestFirst(ctx interface{}, fn interface{}) *MockEntryRepository_ForEachNewestFirst_Call {
	return &MockEntryRepository_ForEachNewestFirst_Call{Call: _e.mock.On("ForEachNewestFirst", ctx, fn)}
}

func (_c *MockEntryRepository_ForEachNewestFirst_Call) Run(run func(ctx context.Context, fn func(*models.Entry) error)) *MockEntryRepository_ForEachNewestFirst_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(func(*models.Entry) error))
	})
	return _c
}

func (_c *MockEntryRepository_ForEachNewestFirst_Call) Return(_a0 error) *MockEntryRepository_ForEachNewestFirst_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEntryRepository_ForEachNewestFirst_Call) RunAndReturn(run func(context.Context, func(*models.Entry) error) error) *MockEntryRepository_ForEachNewestFirst_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockEntryRepository creates a new instance of MockEntryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEntryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEntryRepository {
	mock := &MockEntryRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
