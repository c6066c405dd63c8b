package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "anylist/internal/errors"
	"anylist/internal/model"
	"anylist/internal/repository"
)

func TestUserService_List_StripsDigests(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	stored := []model.User{
		{ID: uuid.New(), Email: "a@x.com", PasswordHash: "digest-a"},
		{ID: uuid.New(), Email: "b@x.com", PasswordHash: "digest-b"},
	}
	repo.On("List", mock.Anything, []model.Role(nil), repository.Pagination{Limit: 10}).
		Return(stored, nil)

	users, err := service.List(context.Background(), nil, repository.Pagination{Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestUserService_Get(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).
		Return(&model.User{ID: id, Email: "a@x.com", PasswordHash: "digest"}, nil)

	user, err := service.Get(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_Get_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Get(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_Update_MergesAndStampsActor(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	id := uuid.New()
	actor := &model.User{ID: uuid.New(), Roles: model.Roles{model.RoleAdmin}}
	repo.On("FindByID", mock.Anything, id).
		Return(&model.User{ID: id, FullName: "Old Name", Email: "old@x.com", IsActive: true}, nil)

	var saved *model.User
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.User)
		}).
		Return(nil)

	name := "New Name"
	user, err := service.Update(context.Background(), id, UpdateUserInput{FullName: &name}, actor)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", user.FullName)
	// Unsupplied fields survive.
	assert.Equal(t, "old@x.com", user.Email)
	assert.NotNil(t, saved.LastUpdatedByID)
	assert.Equal(t, actor.ID, *saved.LastUpdatedByID)
}

func TestUserService_Update_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&model.User{ID: id}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).
		Return(gorm.ErrDuplicatedKey)

	email := "taken@x.com"
	actor := &model.User{ID: uuid.New()}
	_, err := service.Update(context.Background(), id, UpdateUserInput{Email: &email}, actor)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestUserService_Block(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	id := uuid.New()
	actor := &model.User{ID: uuid.New(), Roles: model.Roles{model.RoleAdmin}}
	repo.On("FindByID", mock.Anything, id).
		Return(&model.User{ID: id, IsActive: true, PasswordHash: "digest"}, nil)

	var saved *model.User
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.User)
		}).
		Return(nil)

	user, err := service.Block(context.Background(), id, actor)
	assert.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.Empty(t, user.PasswordHash)
	assert.False(t, saved.IsActive)
	assert.Equal(t, actor.ID, *saved.LastUpdatedByID)
}

func TestUserService_Block_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Block(context.Background(), id, &model.User{ID: uuid.New()})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
