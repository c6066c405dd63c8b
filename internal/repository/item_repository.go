package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anylist/internal/model"
)

// ItemRepository defines item persistence operations. Methods taking an
// optional ownerID scope the query to that owner; nil leaves it unscoped.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*model.Item, error)
	List(ctx context.Context, ownerID *uuid.UUID, p Pagination, s Search) ([]model.Item, error)
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, item *model.Item) error
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository builds a GORM-backed repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*model.Item, error) {
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	}
	var item model.Item
	if err := q.First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List applies the owner scope, optional case-insensitive name search and
// paging. Ordering by creation time then id keeps pagination deterministic.
func (r *itemRepository) List(ctx context.Context, ownerID *uuid.UUID, p Pagination, s Search) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Model(&model.Item{})
	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	}
	if s.Term != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s.Term)+"%")
	}

	limit, offset := p.normalized()
	var items []model.Item
	if err := q.Order("created_at ASC, id ASC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Update(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

func (r *itemRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// DeleteAll removes every item. Used by the seed pipeline only.
func (r *itemRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Item{}).Error
}
