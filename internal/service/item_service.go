package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anylist/internal/auth"
	apperrors "anylist/internal/errors"
	"anylist/internal/model"
	"anylist/internal/repository"
)

// CreateItemInput carries the fields for a new item.
type CreateItemInput struct {
	Name          string
	QuantityUnits string
}

// UpdateItemInput carries optional changes to an item. Nil fields are left
// untouched.
type UpdateItemInput struct {
	Name          *string
	QuantityUnits *string
}

// ItemService exposes ownership-scoped item operations.
type ItemService interface {
	Create(ctx context.Context, input CreateItemInput, actor *model.User) (*model.Item, error)
	FindAll(ctx context.Context, owner *model.User, p repository.Pagination, s repository.Search) ([]model.Item, error)
	FindOne(ctx context.Context, id uuid.UUID, actor *model.User) (*model.Item, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateItemInput, actor *model.User) (*model.Item, error)
	Remove(ctx context.Context, id uuid.UUID, actor *model.User) (*model.Item, error)
	CountByOwner(ctx context.Context, owner *model.User) (int64, error)
}

type itemService struct {
	repo repository.ItemRepository
}

// NewItemService builds an ItemService.
func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

// ownerScope returns the owner filter for an actor: elevated roles query
// unscoped, everyone else only their own records. A foreign record behind
// the scope reads as not-found, so record existence never leaks.
func ownerScope(actor *model.User) *uuid.UUID {
	if auth.Elevated(actor) {
		return nil
	}
	id := actor.ID
	return &id
}

func (s *itemService) Create(ctx context.Context, input CreateItemInput, actor *model.User) (*model.Item, error) {
	item := &model.Item{
		Name:          input.Name,
		QuantityUnits: input.QuantityUnits,
		OwnerID:       actor.ID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// FindAll returns the given owner's items. Listing on behalf of another
// owner is an elevated-role concern handled at the routing layer.
func (s *itemService) FindAll(ctx context.Context, owner *model.User, p repository.Pagination, s2 repository.Search) ([]model.Item, error) {
	return s.repo.List(ctx, &owner.ID, p, s2)
}

func (s *itemService) FindOne(ctx context.Context, id uuid.UUID, actor *model.User) (*model.Item, error) {
	item, err := s.repo.FindByID(ctx, id, ownerScope(actor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

func (s *itemService) Update(ctx context.Context, id uuid.UUID, input UpdateItemInput, actor *model.User) (*model.Item, error) {
	item, err := s.FindOne(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.QuantityUnits != nil {
		item.QuantityUnits = *input.QuantityUnits
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

func (s *itemService) Remove(ctx context.Context, id uuid.UUID, actor *model.User) (*model.Item, error) {
	item, err := s.FindOne(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, item); err != nil {
		return nil, fmt.Errorf("delete item: %w", err)
	}
	return item, nil
}

func (s *itemService) CountByOwner(ctx context.Context, owner *model.User) (int64, error) {
	return s.repo.CountByOwner(ctx, owner.ID)
}
