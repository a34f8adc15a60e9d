package http

import (
	"errors"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain errors onto HTTP status codes. Unknown errors are
// treated as internal to avoid leaking details.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, err error) error {
	code := statusFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
