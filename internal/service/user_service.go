package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anylist/internal/cache"
	apperrors "anylist/internal/errors"
	"anylist/internal/model"
	"anylist/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateUserInput carries optional changes to a user record.
type UpdateUserInput struct {
	FullName *string
	Email    *string
	Roles    []model.Role
	IsActive *bool
}

// UserService exposes the administrative user surface. All operations are
// reached through elevated-role routes only.
type UserService interface {
	List(ctx context.Context, roles []model.Role, p repository.Pagination) ([]model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput, actor *model.User) (*model.User, error)
	Block(ctx context.Context, id uuid.UUID, actor *model.User) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// List returns public views, optionally filtered to users holding at least
// one of the given roles.
func (s *userService) List(ctx context.Context, roles []model.Role, p repository.Pagination) ([]model.User, error) {
	users, err := s.repo.List(ctx, roles, p)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	public := make([]model.User, 0, len(users))
	for i := range users {
		public = append(public, *users[i].Public())
	}
	return public, nil
}

// Get returns one user's public view through a read-through cache.
func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	public := user.Public()
	if payload, err := json.Marshal(public); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return public, nil
}

// Update merges the supplied fields and stamps the acting admin.
func (s *userService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput, actor *model.User) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if len(input.Roles) > 0 {
		user.Roles = model.Roles(input.Roles)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	actorID := actor.ID
	user.LastUpdatedByID = &actorID

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user.Public(), nil
}

// Block disables an account and stamps the acting admin. Blocked users fail
// the access guard on their next request; issued tokens stay unrevoked.
func (s *userService) Block(ctx context.Context, id uuid.UUID, actor *model.User) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user.IsActive = false
	actorID := actor.ID
	user.LastUpdatedByID = &actorID

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("block user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user.Public(), nil
}
