package handler

import (
	"errors"
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// usecaseのエラー種類をHTTPステータスへ
func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	status := statusOf(err)
	if ae, ok := usecase.AsAppError(err); ok && status != http.StatusInternalServerError {
		return c.JSON(status, ErrorResponse{Error: ae.Message})
	}

	//500 は原因をRequestLoggerへ渡し、応答は固定文言
	cause := err
	if ae, ok := usecase.AsAppError(err); ok && ae.Err != nil {
		cause = ae.Err
	}
	middleware.SetErrorCause(c, cause)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getUserIDFromContext(c echo.Context) (string, bool) {
	id := middleware.UserID(c)
	return id, id != ""
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}
