package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anylist/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, roles []model.Role, p Pagination) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	DeleteAll(ctx context.Context) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users, optionally narrowed to those whose role set intersects
// the given roles. The roles column is a JSON array, so the intersection is
// expressed as OR-ed JSON_CONTAINS terms.
func (r *userRepository) List(ctx context.Context, roles []model.Role, p Pagination) ([]model.User, error) {
	q := r.db.WithContext(ctx).Model(&model.User{})

	if len(roles) > 0 {
		clauses := make([]string, 0, len(roles))
		args := make([]interface{}, 0, len(roles))
		for _, role := range roles {
			clauses = append(clauses, "JSON_CONTAINS(roles, JSON_QUOTE(?))")
			args = append(args, string(role))
		}
		q = q.Where(strings.Join(clauses, " OR "), args...)
	}

	limit, offset := p.normalized()
	var users []model.User
	if err := q.Order("created_at ASC, id ASC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// DeleteAll removes every user. Used by the seed pipeline only.
func (r *userRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.User{}).Error
}
