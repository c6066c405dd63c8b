package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"anylist/internal/auth"
	"anylist/internal/service"
)

// ItemHandler handles item endpoints.
type ItemHandler struct {
	items service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(items service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

// CreateItemRequest represents an item creation request.
type CreateItemRequest struct {
	Name          string `json:"name" validate:"required"`
	QuantityUnits string `json:"quantity_units,omitempty"`
}

// UpdateItemRequest represents an item update request.
type UpdateItemRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1"`
	QuantityUnits *string `json:"quantity_units,omitempty"`
}

// Create godoc
// @Summary Create an item owned by the current user
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item payload"
// @Success 201 {object} model.Item
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.items.Create(c.Request().Context(), service.CreateItemInput{
		Name:          req.Name,
		QuantityUnits: req.QuantityUnits,
	}, user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// List godoc
// @Summary List the current user's items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {array} model.Item
// @Failure 401 {object} errors.ErrorResponse
// @Router /items [get]
func (h *ItemHandler) List(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}

	items, err := h.items.FindAll(c.Request().Context(), user, paginationFromRequest(c), searchFromRequest(c))
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get one item by id
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} model.Item
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	item, err := h.items.FindOne(c.Request().Context(), id, user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Update godoc
// @Summary Update one item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body UpdateItemRequest true "Changed fields"
// @Success 200 {object} model.Item
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.items.Update(c.Request().Context(), id, service.UpdateItemInput{
		Name:          req.Name,
		QuantityUnits: req.QuantityUnits,
	}, user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Remove godoc
// @Summary Delete one item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} model.Item
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) Remove(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	item, err := h.items.Remove(c.Request().Context(), id, user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}
