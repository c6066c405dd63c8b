package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"anylist/internal/auth"
	"anylist/internal/model"
	"anylist/internal/service"
)

// ListHandler handles list endpoints.
type ListHandler struct {
	lists     service.ListService
	listItems service.ListItemService
}

// NewListHandler creates a new list handler.
func NewListHandler(lists service.ListService, listItems service.ListItemService) *ListHandler {
	return &ListHandler{lists: lists, listItems: listItems}
}

// CreateListRequest represents a list creation request.
type CreateListRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateListRequest represents a list update request.
type UpdateListRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

// ListDetailResponse is a list plus its entry count.
type ListDetailResponse struct {
	*model.List
	TotalItems int64 `json:"total_items"`
}

// Create godoc
// @Summary Create a list owned by the current user
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateListRequest true "List payload"
// @Success 201 {object} model.List
// @Failure 400 {object} errors.ErrorResponse
// @Router /lists [post]
func (h *ListHandler) Create(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}

	var req CreateListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	list, err := h.lists.Create(c.Request().Context(), service.CreateListInput{Name: req.Name}, user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusCreated, list)
}

// List godoc
// @Summary List the current user's lists
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {array} model.List
// @Router /lists [get]
func (h *ListHandler) List(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}

	lists, err := h.lists.FindAll(c.Request().Context(), user, paginationFromRequest(c), searchFromRequest(c))
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, lists)
}

// Get godoc
// @Summary Get one list with its entry count
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Success 200 {object} ListDetailResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /lists/{id} [get]
func (h *ListHandler) Get(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	list, err := h.lists.FindOne(c.Request().Context(), id, user)
	if err != nil {
		return httpError(c, err)
	}

	total, err := h.listItems.CountByList(c.Request().Context(), list.ID)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, ListDetailResponse{List: list, TotalItems: total})
}

// Update godoc
// @Summary Update one list
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Param request body UpdateListRequest true "Changed fields"
// @Success 200 {object} model.List
// @Failure 404 {object} errors.ErrorResponse
// @Router /lists/{id} [put]
func (h *ListHandler) Update(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req UpdateListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	list, err := h.lists.Update(c.Request().Context(), id, service.UpdateListInput{Name: req.Name}, user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

// Remove godoc
// @Summary Delete one list and its entries
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Success 200 {object} model.List
// @Failure 404 {object} errors.ErrorResponse
// @Router /lists/{id} [delete]
func (h *ListHandler) Remove(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	list, err := h.lists.Remove(c.Request().Context(), id, user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

// Items godoc
// @Summary List the entries of one list
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Param search query string false "Case-insensitive item name filter"
// @Success 200 {array} model.ListItem
// @Failure 404 {object} errors.ErrorResponse
// @Router /lists/{id}/items [get]
func (h *ListHandler) Items(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	entries, err := h.listItems.FindAllForList(c.Request().Context(), id, user, paginationFromRequest(c), searchFromRequest(c))
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}
