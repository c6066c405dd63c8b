package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"anylist/internal/auth"
	"anylist/internal/model"
	"anylist/internal/service"
)

// UserHandler handles the administrative user endpoints. Every route is
// registered behind admin/superUser role checks.
type UserHandler struct {
	users service.UserService
	items service.ItemService
	lists service.ListService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService, items service.ItemService, lists service.ListService) *UserHandler {
	return &UserHandler{users: users, items: items, lists: lists}
}

// UpdateUserRequest represents a user update request.
type UpdateUserRequest struct {
	FullName *string  `json:"full_name,omitempty" validate:"omitempty,min=1"`
	Email    *string  `json:"email,omitempty" validate:"omitempty,email"`
	Roles    []string `json:"roles,omitempty" validate:"omitempty,dive,oneof=user admin superUser"`
	IsActive *bool    `json:"is_active,omitempty"`
}

// UserDetailResponse is a user plus resource counts.
type UserDetailResponse struct {
	*model.User
	ItemCount int64 `json:"item_count"`
	ListCount int64 `json:"list_count"`
}

// List godoc
// @Summary List users, optionally filtered by role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param roles query []string false "Role filter" collectionFormat(multi)
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var roles []model.Role
	for _, r := range c.QueryParams()["roles"] {
		role := model.Role(r)
		if !role.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid role: "+r)
		}
		roles = append(roles, role)
	}

	users, err := h.users.List(c.Request().Context(), roles, paginationFromRequest(c))
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary Get one user with item and list counts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} UserDetailResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}

	itemCount, err := h.items.CountByOwner(c.Request().Context(), user)
	if err != nil {
		return httpError(c, err)
	}
	listCount, err := h.lists.CountByOwner(c.Request().Context(), user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, UserDetailResponse{
		User:      user,
		ItemCount: itemCount,
		ListCount: listCount,
	})
}

// Update godoc
// @Summary Update a user record
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Changed fields"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
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

	user, err := h.users.Update(c.Request().Context(), id, service.UpdateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Roles:    roles,
		IsActive: req.IsActive,
	}, actor)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// Block godoc
// @Summary Disable a user account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/block [post]
func (h *UserHandler) Block(c echo.Context) error {
	actor, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	user, err := h.users.Block(c.Request().Context(), id, actor)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// Items godoc
// @Summary List one user's items (admin view)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {array} model.Item
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/items [get]
func (h *UserHandler) Items(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	owner, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}

	items, err := h.items.FindAll(c.Request().Context(), owner, paginationFromRequest(c), searchFromRequest(c))
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

// Lists godoc
// @Summary List one user's lists (admin view)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {array} model.List
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/lists [get]
func (h *UserHandler) Lists(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	owner, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}

	lists, err := h.lists.FindAll(c.Request().Context(), owner, paginationFromRequest(c), searchFromRequest(c))
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, lists)
}
