package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "anylist/internal/errors"
	"anylist/internal/repository"
)

// httpError maps a domain error to the transport. Unclassified errors are
// logged in full server-side and returned as a generic internal error.
func httpError(c echo.Context, err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	if he.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// idParam parses the :id path parameter.
func idParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return id, nil
}

// paginationFromRequest reads limit/offset query parameters; bad or absent
// values fall back to the defaults.
func paginationFromRequest(c echo.Context) repository.Pagination {
	p := repository.Pagination{Limit: repository.DefaultLimit}
	if v := c.QueryParam("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			p.Limit = limit
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil && offset >= 0 {
			p.Offset = offset
		}
	}
	return p
}

// searchFromRequest reads the optional search query parameter.
func searchFromRequest(c echo.Context) repository.Search {
	return repository.Search{Term: c.QueryParam("search")}
}
