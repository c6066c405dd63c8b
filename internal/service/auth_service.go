package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"anylist/internal/auth"
	apperrors "anylist/internal/errors"
	"anylist/internal/model"
	"anylist/internal/repository"
)

const bcryptCost = 10

// SignupInput carries the fields needed to create an account.
type SignupInput struct {
	Email    string
	Password string
	FullName string
	Roles    []model.Role
}

// AuthService handles authentication operations.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Revalidate(user *model.User) (token string, out *model.User, err error)
	ValidateUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Signup creates a new user with a hashed password and issues a token for it.
// A duplicate email is not pre-checked: the store's uniqueness constraint
// surfaces it. Self-assigned roles are capped at user; promotion happens
// through an admin update.
func (s *authService) Signup(ctx context.Context, input SignupInput) (string, *model.User, error) {
	digest, err := hashPassword(input.Password)
	if err != nil {
		return "", nil, err
	}

	var roles model.Roles
	for _, role := range input.Roles {
		if role == model.RoleUser {
			roles = append(roles, role)
		}
	}

	user := &model.User{
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: digest,
		Roles:        roles,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, apperrors.ErrDuplicateEmail
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.Generate(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user.Public(), nil
}

// Login authenticates a user by email and password and issues a token.
// An absent email reads as not-found; a digest mismatch as bad credentials.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrNotFound
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	// Account state is only disclosed once the password checks out.
	if !user.IsActive {
		return "", nil, apperrors.ErrAccountDisabled
	}

	token, err := s.jwtService.Generate(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user.Public(), nil
}

// Revalidate re-issues a token for an identity that already passed the access
// guard. No password re-check.
func (s *authService) Revalidate(user *model.User) (string, *model.User, error) {
	token, err := s.jwtService.Generate(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user.Public(), nil
}

// ValidateUser resolves a token subject for the access guard: the account
// must exist and be active. Returns the public projection.
func (s *authService) ValidateUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return user.Public(), nil
}

// hashPassword is the shared password primitive: plain -> bcrypt digest.
func hashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}
