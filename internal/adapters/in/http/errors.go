package http

import (
	"errors"
	"log/slog"
	"net/http"

	"waiter/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status matching err. Internal errors are logged and their
// message is not exposed.
func writeError(c echo.Context, logger *slog.Logger, err error, internalMessage string) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), internalMessage, "error", err)
		return c.JSON(status, Error{Code: status, Message: internalMessage})
	}

	return c.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
