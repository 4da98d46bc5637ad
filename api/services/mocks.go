package services

import (
	"context"

	"github.com/projectpulse/dashboard-services/models"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStore) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) GetUser(ctx context.Context, id string) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (models.User, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) PutUser(ctx context.Context, u models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockStore) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockStore) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Project), args.Error(1)
}

func (m *MockStore) GetProject(ctx context.Context, id string) (models.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Project), args.Error(1)
}

func (m *MockStore) UpdateProject(ctx context.Context, id string, fields map[string]interface{}) (models.Project, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.Project), args.Error(1)
}

func (m *MockStore) PutProject(ctx context.Context, p models.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStore) DeleteProject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) ListMembers(ctx context.Context) ([]models.Member, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Member), args.Error(1)
}

func (m *MockStore) CreateMember(ctx context.Context, mem models.Member) (models.Member, error) {
	args := m.Called(ctx, mem)
	return args.Get(0).(models.Member), args.Error(1)
}

func (m *MockStore) UpdateMember(ctx context.Context, id string, fields map[string]interface{}) (models.Member, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.Member), args.Error(1)
}

func (m *MockStore) PutMember(ctx context.Context, mem models.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MockStore) DeleteMember(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
