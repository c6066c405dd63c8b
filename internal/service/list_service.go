package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "anylist/internal/errors"
	"anylist/internal/model"
	"anylist/internal/repository"
)

// CreateListInput carries the fields for a new list.
type CreateListInput struct {
	Name string
}

// UpdateListInput carries optional changes to a list.
type UpdateListInput struct {
	Name *string
}

// ListService exposes ownership-scoped list operations.
type ListService interface {
	Create(ctx context.Context, input CreateListInput, actor *model.User) (*model.List, error)
	FindAll(ctx context.Context, owner *model.User, p repository.Pagination, s repository.Search) ([]model.List, error)
	FindOne(ctx context.Context, id uuid.UUID, actor *model.User) (*model.List, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateListInput, actor *model.User) (*model.List, error)
	Remove(ctx context.Context, id uuid.UUID, actor *model.User) (*model.List, error)
	CountByOwner(ctx context.Context, owner *model.User) (int64, error)
}

type listService struct {
	repo      repository.ListRepository
	listItems repository.ListItemRepository
}

// NewListService builds a ListService. The list-item repository is needed
// for the delete cascade.
func NewListService(repo repository.ListRepository, listItems repository.ListItemRepository) ListService {
	return &listService{repo: repo, listItems: listItems}
}

func (s *listService) Create(ctx context.Context, input CreateListInput, actor *model.User) (*model.List, error) {
	list := &model.List{
		Name:    input.Name,
		OwnerID: actor.ID,
	}
	if err := s.repo.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	return list, nil
}

func (s *listService) FindAll(ctx context.Context, owner *model.User, p repository.Pagination, s2 repository.Search) ([]model.List, error) {
	return s.repo.List(ctx, &owner.ID, p, s2)
}

func (s *listService) FindOne(ctx context.Context, id uuid.UUID, actor *model.User) (*model.List, error) {
	list, err := s.repo.FindByID(ctx, id, ownerScope(actor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find list: %w", err)
	}
	return list, nil
}

func (s *listService) Update(ctx context.Context, id uuid.UUID, input UpdateListInput, actor *model.User) (*model.List, error) {
	list, err := s.FindOne(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		list.Name = *input.Name
	}

	if err := s.repo.Update(ctx, list); err != nil {
		return nil, fmt.Errorf("update list: %w", err)
	}
	return list, nil
}

// Remove deletes a list after removing its entries. Children go first so the
// foreign keys stay satisfied; there is no cross-table transaction, a failure
// between the two deletes leaves an empty list behind.
func (s *listService) Remove(ctx context.Context, id uuid.UUID, actor *model.User) (*model.List, error) {
	list, err := s.FindOne(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if err := s.listItems.DeleteByList(ctx, list.ID); err != nil {
		return nil, fmt.Errorf("delete list items: %w", err)
	}
	if err := s.repo.Delete(ctx, list); err != nil {
		return nil, fmt.Errorf("delete list: %w", err)
	}
	return list, nil
}

func (s *listService) CountByOwner(ctx context.Context, owner *model.User) (int64, error) {
	return s.repo.CountByOwner(ctx, owner.ID)
}
