package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no valid identity can be resolved
	// from the request token.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrAccountDisabled is returned when the resolved account is inactive.
	ErrAccountDisabled = errors.New("account is inactive, talk with an admin")
	// ErrForbidden is returned when the identity lacks a required role.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrNotFound is returned when no record exists at the given id or email.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when the store rejects a non-unique email.
	ErrDuplicateEmail = errors.New("email is already registered")
	// ErrInvalidCredentials is returned on a login password mismatch.
	ErrInvalidCredentials = errors.New("email / password do not match")
	// ErrDuplicateListEntry is returned when an item is already on the list.
	ErrDuplicateListEntry = errors.New("item is already on the list")
	// ErrForbiddenEnvironment is returned when the seed pipeline runs in prod.
	ErrForbiddenEnvironment = errors.New("cannot run seed on a production environment")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unclassified errors map
// to a generic internal error so store detail never reaches the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrAccountDisabled):
		return NewHTTPError(http.StatusUnauthorized, ErrAccountDisabled.Error(), "ACCOUNT_DISABLED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrForbiddenEnvironment):
		return NewHTTPError(http.StatusForbidden, ErrForbiddenEnvironment.Error(), "FORBIDDEN_ENVIRONMENT")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, ErrDuplicateEmail.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrDuplicateListEntry):
		return NewHTTPError(http.StatusConflict, ErrDuplicateListEntry.Error(), "DUPLICATE_LIST_ITEM")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
