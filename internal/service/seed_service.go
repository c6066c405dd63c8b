package service

import (
	"context"
	"fmt"
	"math/rand"

	apperrors "anylist/internal/errors"
	"anylist/internal/model"
	"anylist/internal/repository"
)

// SeedService wipes and repopulates the database with known test data.
// Gated to non-production environments; there is no cross-table transaction,
// so a failed stage aborts the run and leaves whatever the earlier stages
// produced.
type SeedService interface {
	Execute(ctx context.Context) (bool, error)
}

type seedService struct {
	isProd bool

	users     repository.UserRepository
	itemRepo  repository.ItemRepository
	listRepo  repository.ListRepository
	entryRepo repository.ListItemRepository

	items     ItemService
	lists     ListService
	listItems ListItemService
}

// NewSeedService builds the reseed pipeline. Deletions go through the
// repositories; repopulation goes through the services so created records
// carry the same stamps as user-created ones.
func NewSeedService(
	isProd bool,
	users repository.UserRepository,
	itemRepo repository.ItemRepository,
	listRepo repository.ListRepository,
	entryRepo repository.ListItemRepository,
	items ItemService,
	lists ListService,
	listItems ListItemService,
) SeedService {
	return &seedService{
		isProd:    isProd,
		users:     users,
		itemRepo:  itemRepo,
		listRepo:  listRepo,
		entryRepo: entryRepo,
		items:     items,
		lists:     lists,
		listItems: listItems,
	}
}

// Execute runs the pipeline: guard, delete children-first, load parents-first.
func (s *seedService) Execute(ctx context.Context) (bool, error) {
	if s.isProd {
		return false, apperrors.ErrForbiddenEnvironment
	}

	if err := s.deleteDatabase(ctx); err != nil {
		return false, err
	}

	firstUser, err := s.loadUsers(ctx)
	if err != nil {
		return false, err
	}

	if err := s.loadItems(ctx, firstUser); err != nil {
		return false, err
	}

	firstList, err := s.loadLists(ctx, firstUser)
	if err != nil {
		return false, err
	}

	// Fill the first list with a sample of the freshly created items.
	sample, err := s.items.FindAll(ctx, firstUser, repository.Pagination{Limit: 15}, repository.Search{})
	if err != nil {
		return false, fmt.Errorf("seed: sample items: %w", err)
	}
	if err := s.loadListItems(ctx, firstList, sample, firstUser); err != nil {
		return false, err
	}

	return true, nil
}

// deleteDatabase removes everything in strict reverse dependency order.
func (s *seedService) deleteDatabase(ctx context.Context) error {
	if err := s.entryRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("seed: delete list items: %w", err)
	}
	if err := s.listRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("seed: delete lists: %w", err)
	}
	if err := s.itemRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("seed: delete items: %w", err)
	}
	if err := s.users.DeleteAll(ctx); err != nil {
		return fmt.Errorf("seed: delete users: %w", err)
	}
	return nil
}

// loadUsers creates the seed accounts and returns the first one, which owns
// every other seeded record.
func (s *seedService) loadUsers(ctx context.Context) (*model.User, error) {
	var first *model.User
	for _, su := range seedUsers {
		digest, err := hashPassword(su.Password)
		if err != nil {
			return nil, err
		}
		user := &model.User{
			FullName:     su.FullName,
			Email:        su.Email,
			PasswordHash: digest,
			Roles:        su.Roles,
			IsActive:     su.IsActive,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("seed: create user %s: %w", su.Email, err)
		}
		if first == nil {
			first = user
		}
	}
	return first, nil
}

func (s *seedService) loadItems(ctx context.Context, owner *model.User) error {
	for _, si := range seedItems {
		input := CreateItemInput{Name: si.Name, QuantityUnits: si.QuantityUnits}
		if _, err := s.items.Create(ctx, input, owner); err != nil {
			return fmt.Errorf("seed: create item %s: %w", si.Name, err)
		}
	}
	return nil
}

func (s *seedService) loadLists(ctx context.Context, owner *model.User) (*model.List, error) {
	var first *model.List
	for _, name := range seedLists {
		list, err := s.lists.Create(ctx, CreateListInput{Name: name}, owner)
		if err != nil {
			return nil, fmt.Errorf("seed: create list %s: %w", name, err)
		}
		if first == nil {
			first = list
		}
	}
	return first, nil
}

func (s *seedService) loadListItems(ctx context.Context, list *model.List, items []model.Item, owner *model.User) error {
	for _, item := range items {
		input := CreateListItemInput{
			ListID:    list.ID,
			ItemID:    item.ID,
			Quantity:  rand.Intn(11),
			Completed: rand.Intn(2) == 1,
		}
		if _, err := s.listItems.Create(ctx, input, owner); err != nil {
			return fmt.Errorf("seed: create list item for %s: %w", item.Name, err)
		}
	}
	return nil
}
