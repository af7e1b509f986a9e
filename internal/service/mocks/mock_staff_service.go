package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

type MockStaffService struct {
	mock.Mock
}

func (m *MockStaffService) Create(ctx context.Context, st *model.Staff, password string) (*model.Staff, error) {
	args := m.Called(ctx, st, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffService) Get(ctx context.Context, id string) (*model.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffService) List(ctx context.Context) ([]model.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Staff), args.Error(1)
}

func (m *MockStaffService) Update(ctx context.Context, id string, st *model.Staff, password string) (*model.Staff, error) {
	args := m.Called(ctx, id, st, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStaffService) Login(ctx context.Context, userID, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, userID, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}
