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

// CreateListItemInput carries the fields for a new list entry.
type CreateListItemInput struct {
	ListID    uuid.UUID
	ItemID    uuid.UUID
	Quantity  int
	Completed bool
}

// UpdateListItemInput carries optional changes to a list entry. ListID and
// ItemID re-point the entry when supplied.
type UpdateListItemInput struct {
	ListID    *uuid.UUID
	ItemID    *uuid.UUID
	Quantity  *int
	Completed *bool
}

// ListItemService exposes list-entry operations. Ownership is derived
// through the parent list on every path.
type ListItemService interface {
	Create(ctx context.Context, input CreateListItemInput, actor *model.User) (*model.ListItem, error)
	FindAllForList(ctx context.Context, listID uuid.UUID, actor *model.User, p repository.Pagination, s repository.Search) ([]model.ListItem, error)
	FindOne(ctx context.Context, id uuid.UUID, actor *model.User) (*model.ListItem, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateListItemInput, actor *model.User) (*model.ListItem, error)
	CountByList(ctx context.Context, listID uuid.UUID) (int64, error)
}

type listItemService struct {
	repo  repository.ListItemRepository
	lists repository.ListRepository
	items repository.ItemRepository
}

// NewListItemService builds a ListItemService.
func NewListItemService(repo repository.ListItemRepository, lists repository.ListRepository, items repository.ItemRepository) ListItemService {
	return &listItemService{repo: repo, lists: lists, items: items}
}

// resolveList loads the parent list under the actor's owner scope. A list
// the actor cannot see reads as not-found.
func (s *listItemService) resolveList(ctx context.Context, listID uuid.UUID, actor *model.User) (*model.List, error) {
	list, err := s.lists.FindByID(ctx, listID, ownerScope(actor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find list: %w", err)
	}
	return list, nil
}

func (s *listItemService) resolveItem(ctx context.Context, itemID uuid.UUID, actor *model.User) (*model.Item, error) {
	item, err := s.items.FindByID(ctx, itemID, ownerScope(actor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

// Create links an item into a list. Both references must resolve under the
// actor's scope before anything is written.
func (s *listItemService) Create(ctx context.Context, input CreateListItemInput, actor *model.User) (*model.ListItem, error) {
	list, err := s.resolveList(ctx, input.ListID, actor)
	if err != nil {
		return nil, err
	}
	item, err := s.resolveItem(ctx, input.ItemID, actor)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity < 0 {
		quantity = 0
	}

	listItem := &model.ListItem{
		ListID:    list.ID,
		ItemID:    item.ID,
		Quantity:  quantity,
		Completed: input.Completed,
	}
	if err := s.repo.Create(ctx, listItem); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateListEntry
		}
		return nil, fmt.Errorf("create list item: %w", err)
	}
	return listItem, nil
}

func (s *listItemService) FindAllForList(ctx context.Context, listID uuid.UUID, actor *model.User, p repository.Pagination, s2 repository.Search) ([]model.ListItem, error) {
	list, err := s.resolveList(ctx, listID, actor)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByList(ctx, list.ID, p, s2)
}

func (s *listItemService) FindOne(ctx context.Context, id uuid.UUID, actor *model.User) (*model.ListItem, error) {
	listItem, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find list item: %w", err)
	}

	// Ownership check rides on the parent list.
	if _, err := s.resolveList(ctx, listItem.ListID, actor); err != nil {
		return nil, err
	}
	return listItem, nil
}

func (s *listItemService) Update(ctx context.Context, id uuid.UUID, input UpdateListItemInput, actor *model.User) (*model.ListItem, error) {
	listItem, err := s.FindOne(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if input.ListID != nil {
		list, err := s.resolveList(ctx, *input.ListID, actor)
		if err != nil {
			return nil, err
		}
		listItem.ListID = list.ID
	}
	if input.ItemID != nil {
		item, err := s.resolveItem(ctx, *input.ItemID, actor)
		if err != nil {
			return nil, err
		}
		listItem.ItemID = item.ID
	}
	if input.Quantity != nil && *input.Quantity >= 0 {
		listItem.Quantity = *input.Quantity
	}
	if input.Completed != nil {
		listItem.Completed = *input.Completed
	}

	// Re-pointing the entry can collide with an existing (list, item) pair.
	if err := s.repo.Update(ctx, listItem); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateListEntry
		}
		return nil, fmt.Errorf("update list item: %w", err)
	}
	return listItem, nil
}

func (s *listItemService) CountByList(ctx context.Context, listID uuid.UUID) (int64, error) {
	return s.repo.CountByList(ctx, listID)
}
