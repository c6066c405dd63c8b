package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"anylist/internal/auth"
	"anylist/internal/model"
	"anylist/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	FullName string   `json:"full_name" validate:"required"`
	Roles    []string `json:"roles,omitempty" validate:"omitempty,dive,oneof=user"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Signup godoc
// @Summary Sign up a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	roles := make([]model.Role, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, model.Role(r))
	}

	token, user, err := h.authService.Signup(c.Request().Context(), service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Roles:    roles,
	})
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Absent email and wrong password are deliberately distinguishable
	// (NOT_FOUND vs INVALID_CREDENTIALS).
	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

// Revalidate godoc
// @Summary Re-issue a token for the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /auth/revalidate [get]
func (h *AuthHandler) Revalidate(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}

	token, out, err := h.authService.Revalidate(user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: out})
}
