package http

import (
	"errors"
	"log/slog"
	"net/http"

	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the error envelope returned by every endpoint.
type errorResponse struct {
	Text string `json:"text"`
}

// respondError translates domain errors to HTTP statuses: validation
// and state violations are the caller's fault (400), missing
// references are 404, everything else is a 500 with the detail kept
// out of the response body.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Text: err.Error()})
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: err.Error()})
	default:
		slog.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Text: "internal server error"})
	}
}
