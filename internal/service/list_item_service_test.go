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
)

type listItemMocks struct {
	repo  *MockListItemRepository
	lists *MockListRepository
	items *MockItemRepository
}

func newListItemService() (ListItemService, listItemMocks) {
	m := listItemMocks{
		repo:  new(MockListItemRepository),
		lists: new(MockListRepository),
		items: new(MockItemRepository),
	}
	return NewListItemService(m.repo, m.lists, m.items), m
}

func TestListItemService_Create(t *testing.T) {
	service, m := newListItemService()
	actor := plainUser()

	listID := uuid.New()
	itemID := uuid.New()
	m.lists.On("FindByID", mock.Anything, listID, scopedTo(actor.ID)).
		Return(&model.List{ID: listID, OwnerID: actor.ID}, nil)
	m.items.On("FindByID", mock.Anything, itemID, scopedTo(actor.ID)).
		Return(&model.Item{ID: itemID, OwnerID: actor.ID}, nil)
	m.repo.On("Create", mock.Anything, mock.AnythingOfType("*model.ListItem")).Return(nil)

	entry, err := service.Create(context.Background(), CreateListItemInput{
		ListID:   listID,
		ItemID:   itemID,
		Quantity: 3,
	}, actor)
	assert.NoError(t, err)
	assert.Equal(t, listID, entry.ListID)
	assert.Equal(t, itemID, entry.ItemID)
	assert.Equal(t, 3, entry.Quantity)
}

func TestListItemService_Create_DuplicatePair(t *testing.T) {
	service, m := newListItemService()
	actor := plainUser()

	listID := uuid.New()
	itemID := uuid.New()
	m.lists.On("FindByID", mock.Anything, listID, scopedTo(actor.ID)).
		Return(&model.List{ID: listID, OwnerID: actor.ID}, nil)
	m.items.On("FindByID", mock.Anything, itemID, scopedTo(actor.ID)).
		Return(&model.Item{ID: itemID, OwnerID: actor.ID}, nil)
	// The (list, item) pair is unique in the store.
	m.repo.On("Create", mock.Anything, mock.AnythingOfType("*model.ListItem")).
		Return(gorm.ErrDuplicatedKey)

	_, err := service.Create(context.Background(), CreateListItemInput{
		ListID: listID,
		ItemID: itemID,
	}, actor)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateListEntry)
}

func TestListItemService_Create_ForeignList(t *testing.T) {
	service, m := newListItemService()
	actor := plainUser()

	listID := uuid.New()
	m.lists.On("FindByID", mock.Anything, listID, scopedTo(actor.ID)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Create(context.Background(), CreateListItemInput{
		ListID: listID,
		ItemID: uuid.New(),
	}, actor)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	m.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListItemService_Update_DuplicatePair(t *testing.T) {
	service, m := newListItemService()
	actor := plainUser()

	entryID := uuid.New()
	listID := uuid.New()
	otherItem := uuid.New()
	m.repo.On("FindByID", mock.Anything, entryID).
		Return(&model.ListItem{ID: entryID, ListID: listID, ItemID: uuid.New()}, nil)
	m.lists.On("FindByID", mock.Anything, listID, scopedTo(actor.ID)).
		Return(&model.List{ID: listID, OwnerID: actor.ID}, nil)
	m.items.On("FindByID", mock.Anything, otherItem, scopedTo(actor.ID)).
		Return(&model.Item{ID: otherItem, OwnerID: actor.ID}, nil)
	// Re-pointing onto an item already on the list hits the unique pair.
	m.repo.On("Update", mock.Anything, mock.AnythingOfType("*model.ListItem")).
		Return(gorm.ErrDuplicatedKey)

	_, err := service.Update(context.Background(), entryID, UpdateListItemInput{
		ItemID: &otherItem,
	}, actor)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateListEntry)
}

func TestListItemService_FindOne_ForeignParentList(t *testing.T) {
	service, m := newListItemService()
	actor := plainUser()

	entryID := uuid.New()
	listID := uuid.New()
	m.repo.On("FindByID", mock.Anything, entryID).
		Return(&model.ListItem{ID: entryID, ListID: listID}, nil)
	m.lists.On("FindByID", mock.Anything, listID, scopedTo(actor.ID)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := service.FindOne(context.Background(), entryID, actor)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
