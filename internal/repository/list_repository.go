package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anylist/internal/model"
)

// ListRepository defines list persistence operations.
type ListRepository interface {
	Create(ctx context.Context, list *model.List) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*model.List, error)
	List(ctx context.Context, ownerID *uuid.UUID, p Pagination, s Search) ([]model.List, error)
	Update(ctx context.Context, list *model.List) error
	Delete(ctx context.Context, list *model.List) error
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) error
}

type listRepository struct {
	db *gorm.DB
}

// NewListRepository builds a GORM-backed repository.
func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) Create(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *listRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*model.List, error) {
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	}
	var list model.List
	if err := q.First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepository) List(ctx context.Context, ownerID *uuid.UUID, p Pagination, s Search) ([]model.List, error) {
	q := r.db.WithContext(ctx).Model(&model.List{})
	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	}
	if s.Term != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s.Term)+"%")
	}

	limit, offset := p.normalized()
	var lists []model.List
	if err := q.Order("created_at ASC, id ASC").Limit(limit).Offset(offset).Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *listRepository) Update(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *listRepository) Delete(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Delete(list).Error
}

func (r *listRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.List{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// DeleteAll removes every list. Used by the seed pipeline only.
func (r *listRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.List{}).Error
}
