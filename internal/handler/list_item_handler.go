package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"anylist/internal/auth"
	"anylist/internal/service"
)

// ListItemHandler handles list-entry endpoints.
type ListItemHandler struct {
	listItems service.ListItemService
}

// NewListItemHandler creates a new list-item handler.
func NewListItemHandler(listItems service.ListItemService) *ListItemHandler {
	return &ListItemHandler{listItems: listItems}
}

// CreateListItemRequest represents a list-entry creation request.
type CreateListItemRequest struct {
	ListID    uuid.UUID `json:"list_id" validate:"required"`
	ItemID    uuid.UUID `json:"item_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
	Completed bool      `json:"completed"`
}

// UpdateListItemRequest represents a list-entry update request.
type UpdateListItemRequest struct {
	ListID    *uuid.UUID `json:"list_id,omitempty"`
	ItemID    *uuid.UUID `json:"item_id,omitempty"`
	Quantity  *int       `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Completed *bool      `json:"completed,omitempty"`
}

// Create godoc
// @Summary Add an item to a list
// @Tags list-items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateListItemRequest true "List entry payload"
// @Success 201 {object} model.ListItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /list-items [post]
func (h *ListItemHandler) Create(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}

	var req CreateListItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listItem, err := h.listItems.Create(c.Request().Context(), service.CreateListItemInput{
		ListID:    req.ListID,
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		Completed: req.Completed,
	}, user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusCreated, listItem)
}

// Get godoc
// @Summary Get one list entry
// @Tags list-items
// @Produce json
// @Security BearerAuth
// @Param id path string true "List entry ID"
// @Success 200 {object} model.ListItem
// @Failure 404 {object} errors.ErrorResponse
// @Router /list-items/{id} [get]
func (h *ListItemHandler) Get(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	listItem, err := h.listItems.FindOne(c.Request().Context(), id, user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, listItem)
}

// Update godoc
// @Summary Update one list entry
// @Tags list-items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "List entry ID"
// @Param request body UpdateListItemRequest true "Changed fields"
// @Success 200 {object} model.ListItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /list-items/{id} [put]
func (h *ListItemHandler) Update(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return httpError(c, err)
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req UpdateListItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listItem, err := h.listItems.Update(c.Request().Context(), id, service.UpdateListItemInput{
		ListID:    req.ListID,
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		Completed: req.Completed,
	}, user)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, listItem)
}
