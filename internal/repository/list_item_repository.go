package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anylist/internal/model"
)

// ListItemRepository defines list-item persistence operations. List items
// carry no owner column; callers enforce ownership through the parent list.
type ListItemRepository interface {
	Create(ctx context.Context, listItem *model.ListItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ListItem, error)
	ListByList(ctx context.Context, listID uuid.UUID, p Pagination, s Search) ([]model.ListItem, error)
	CountByList(ctx context.Context, listID uuid.UUID) (int64, error)
	Update(ctx context.Context, listItem *model.ListItem) error
	DeleteByList(ctx context.Context, listID uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type listItemRepository struct {
	db *gorm.DB
}

// NewListItemRepository builds a GORM-backed repository.
func NewListItemRepository(db *gorm.DB) ListItemRepository {
	return &listItemRepository{db: db}
}

func (r *listItemRepository) Create(ctx context.Context, listItem *model.ListItem) error {
	return r.db.WithContext(ctx).Create(listItem).Error
}

func (r *listItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ListItem, error) {
	var listItem model.ListItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listItem).Error; err != nil {
		return nil, err
	}
	return &listItem, nil
}

// ListByList returns the entries of one list. Name search joins against the
// items table because the searchable name lives on the referenced item.
func (r *listItemRepository) ListByList(ctx context.Context, listID uuid.UUID, p Pagination, s Search) ([]model.ListItem, error) {
	q := r.db.WithContext(ctx).Model(&model.ListItem{}).
		Joins("INNER JOIN items ON items.id = list_items.item_id").
		Where("list_items.list_id = ?", listID)
	if s.Term != "" {
		q = q.Where("LOWER(items.name) LIKE ?", "%"+strings.ToLower(s.Term)+"%")
	}

	limit, offset := p.normalized()
	var listItems []model.ListItem
	err := q.Order("list_items.created_at ASC, list_items.id ASC").
		Limit(limit).Offset(offset).Find(&listItems).Error
	if err != nil {
		return nil, err
	}
	return listItems, nil
}

func (r *listItemRepository) CountByList(ctx context.Context, listID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ListItem{}).Where("list_id = ?", listID).Count(&count).Error
	return count, err
}

func (r *listItemRepository) Update(ctx context.Context, listItem *model.ListItem) error {
	return r.db.WithContext(ctx).Save(listItem).Error
}

// DeleteByList removes every entry of one list, ahead of deleting the list.
func (r *listItemRepository) DeleteByList(ctx context.Context, listID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("list_id = ?", listID).Delete(&model.ListItem{}).Error
}

// DeleteAll removes every list item. Used by the seed pipeline only.
func (r *listItemRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ListItem{}).Error
}
