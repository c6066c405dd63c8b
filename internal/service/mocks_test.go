package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"anylist/internal/model"
	"anylist/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, roles []model.Role, p repository.Pagination) ([]model.User, error) {
	args := m.Called(ctx, roles, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockItemRepository is a mock implementation of repository.ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*model.Item, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, ownerID *uuid.UUID, p repository.Pagination, s repository.Search) ([]model.Item, error) {
	args := m.Called(ctx, ownerID, p, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockListRepository is a mock implementation of repository.ListRepository.
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*model.List, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListRepository) List(ctx context.Context, ownerID *uuid.UUID, p repository.Pagination, s repository.Search) ([]model.List, error) {
	args := m.Called(ctx, ownerID, p, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.List), args.Error(1)
}

func (m *MockListRepository) Update(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) Delete(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockListItemRepository is a mock implementation of repository.ListItemRepository.
type MockListItemRepository struct {
	mock.Mock
}

func (m *MockListItemRepository) Create(ctx context.Context, listItem *model.ListItem) error {
	args := m.Called(ctx, listItem)
	return args.Error(0)
}

func (m *MockListItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ListItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListItem), args.Error(1)
}

func (m *MockListItemRepository) ListByList(ctx context.Context, listID uuid.UUID, p repository.Pagination, s repository.Search) ([]model.ListItem, error) {
	args := m.Called(ctx, listID, p, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ListItem), args.Error(1)
}

func (m *MockListItemRepository) CountByList(ctx context.Context, listID uuid.UUID) (int64, error) {
	args := m.Called(ctx, listID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListItemRepository) Update(ctx context.Context, listItem *model.ListItem) error {
	args := m.Called(ctx, listItem)
	return args.Error(0)
}

func (m *MockListItemRepository) DeleteByList(ctx context.Context, listID uuid.UUID) error {
	args := m.Called(ctx, listID)
	return args.Error(0)
}

func (m *MockListItemRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockItemService is a mock implementation of ItemService.
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, input CreateItemInput, actor *model.User) (*model.Item, error) {
	args := m.Called(ctx, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemService) FindAll(ctx context.Context, owner *model.User, p repository.Pagination, s repository.Search) ([]model.Item, error) {
	args := m.Called(ctx, owner, p, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemService) FindOne(ctx context.Context, id uuid.UUID, actor *model.User) (*model.Item, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, id uuid.UUID, input UpdateItemInput, actor *model.User) (*model.Item, error) {
	args := m.Called(ctx, id, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemService) Remove(ctx context.Context, id uuid.UUID, actor *model.User) (*model.Item, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemService) CountByOwner(ctx context.Context, owner *model.User) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

// MockListService is a mock implementation of ListService.
type MockListService struct {
	mock.Mock
}

func (m *MockListService) Create(ctx context.Context, input CreateListInput, actor *model.User) (*model.List, error) {
	args := m.Called(ctx, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListService) FindAll(ctx context.Context, owner *model.User, p repository.Pagination, s repository.Search) ([]model.List, error) {
	args := m.Called(ctx, owner, p, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.List), args.Error(1)
}

func (m *MockListService) FindOne(ctx context.Context, id uuid.UUID, actor *model.User) (*model.List, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListService) Update(ctx context.Context, id uuid.UUID, input UpdateListInput, actor *model.User) (*model.List, error) {
	args := m.Called(ctx, id, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListService) Remove(ctx context.Context, id uuid.UUID, actor *model.User) (*model.List, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListService) CountByOwner(ctx context.Context, owner *model.User) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

// MockListItemService is a mock implementation of ListItemService.
type MockListItemService struct {
	mock.Mock
}

func (m *MockListItemService) Create(ctx context.Context, input CreateListItemInput, actor *model.User) (*model.ListItem, error) {
	args := m.Called(ctx, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListItem), args.Error(1)
}

func (m *MockListItemService) FindAllForList(ctx context.Context, listID uuid.UUID, actor *model.User, p repository.Pagination, s repository.Search) ([]model.ListItem, error) {
	args := m.Called(ctx, listID, actor, p, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ListItem), args.Error(1)
}

func (m *MockListItemService) FindOne(ctx context.Context, id uuid.UUID, actor *model.User) (*model.ListItem, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListItem), args.Error(1)
}

func (m *MockListItemService) Update(ctx context.Context, id uuid.UUID, input UpdateListItemInput, actor *model.User) (*model.ListItem, error) {
	args := m.Called(ctx, id, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListItem), args.Error(1)
}

func (m *MockListItemService) CountByList(ctx context.Context, listID uuid.UUID) (int64, error) {
	args := m.Called(ctx, listID)
	return args.Get(0).(int64), args.Error(1)
}
