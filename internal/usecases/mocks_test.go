package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"it-short.backend/internal/domain/entities"
)

type MockSystemUserRepository struct {
	mock.Mock
}

func (m *MockSystemUserRepository) Create(ctx context.Context, user *entities.SystemUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockSystemUserRepository) GetByID(ctx context.Context, id string) (*entities.SystemUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SystemUser), args.Error(1)
}

func (m *MockSystemUserRepository) GetByEmail(ctx context.Context, email string) (*entities.SystemUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SystemUser), args.Error(1)
}

func (m *MockSystemUserRepository) ListBrief(ctx context.Context) ([]entities.SystemUserBrief, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SystemUserBrief), args.Error(1)
}

func (m *MockSystemUserRepository) List(ctx context.Context, params entities.ListParams) (*entities.SystemUserList, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SystemUserList), args.Error(1)
}

func (m *MockSystemUserRepository) Update(ctx context.Context, user *entities.SystemUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockSystemUserRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Error(1)
}
