package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"anylist/internal/service"
)

// SeedHandler exposes the reseed pipeline.
type SeedHandler struct {
	seed service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seed service.SeedService) *SeedHandler {
	return &SeedHandler{seed: seed}
}

// SeedResponse represents the seed acknowledgment.
type SeedResponse struct {
	Executed bool   `json:"executed"`
	Message  string `json:"message"`
}

// Run godoc
// @Summary Reset and reseed the database (non-production only)
// @Tags seed
// @Produce json
// @Success 200 {object} SeedResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed [post]
func (h *SeedHandler) Run(c echo.Context) error {
	executed, err := h.seed.Execute(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, SeedResponse{
		Executed: executed,
		Message:  "seed executed successfully",
	})
}
