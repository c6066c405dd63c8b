package auth

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "anylist/internal/errors"
	"anylist/internal/model"
)

// ContextUserKey is the echo context key holding the resolved current user.
const ContextUserKey = "currentUser"

// UserValidator resolves a token subject to an active account.
type UserValidator interface {
	ValidateUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// LoadUser runs after the echo-jwt middleware: it reads the verified claims,
// loads the subject and rejects unknown or disabled accounts. Attaching the
// resolved user (digest already stripped) to the context is its only side
// effect.
func LoadUser(validator UserValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return unauthenticated(apperrors.ErrUnauthenticated)
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return unauthenticated(apperrors.ErrUnauthenticated)
			}
			subject, err := claims.Subject()
			if err != nil {
				return unauthenticated(apperrors.ErrUnauthenticated)
			}

			user, err := validator.ValidateUser(c.Request().Context(), subject)
			if err != nil {
				return unauthenticated(err)
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireRoles rejects requests whose current user holds none of the given
// roles. Must be mounted after LoadUser. An empty role list admits any
// authenticated user.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := CurrentUser(c)
			if err != nil {
				return unauthenticated(err)
			}
			if !HasAnyRole(user, roles...) {
				he := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
				return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user attached by LoadUser.
func CurrentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	if !ok || user == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return user, nil
}

func unauthenticated(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	if he.StatusCode != http.StatusUnauthorized {
		// Any guard failure reads as a 401, never as store detail.
		he = apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
	}
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
