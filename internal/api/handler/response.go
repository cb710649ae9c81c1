package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// response is the canonical envelope for every API response.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, response{Success: true, Message: message, Data: data})
}

func respondFail(c echo.Context, status int, message string) error {
	return c.JSON(status, response{Success: false, Message: message})
}

// respondError maps domain errors to their HTTP status and user-facing
// message. Unexpected errors get the endpoint's fallback message; the real
// cause is logged at the service layer, never echoed to the client.
func respondError(c echo.Context, err error, fallback string) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return respondFail(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return respondFail(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, domain.ErrUserExists):
		return respondFail(c, http.StatusConflict, "User already exists. Please login")
	case errors.Is(err, domain.ErrUserNotFound):
		return respondFail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrTaskNotFound):
		return respondFail(c, http.StatusNotFound, "Todo not found")
	}
	return respondFail(c, http.StatusInternalServerError, fallback)
}
