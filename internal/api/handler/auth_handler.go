package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-system/internal/api/metrics"
	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password"`
	Picture   string `json:"picture,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the account view returned by register and login: the
// password hash is never serialised, the freshly issued token always is.
type userResponse struct {
	ID        string `json:"_id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	Picture   string `json:"picture,omitempty"`
	Token     string `json:"token"`
}

func newUserResponse(user *domain.User, token string) userResponse {
	return userResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Picture:   user.Picture,
		Token:     token,
	}
}

// Register creates a new user account and issues a session token.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  response{data=userResponse}
// @Failure      400   {object}  response
// @Failure      409   {object}  response
// @Failure      500   {object}  response
// @Router       /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "Invalid payload")
	}
	// Emails arrive padded from some clients; trim before the format
	// check so a valid address is not rejected for its whitespace.
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Picture:   req.Picture,
	})
	if err != nil {
		return respondError(c, err, "Server error during registration")
	}

	metrics.UsersRegisteredTotal.Inc()

	return respond(c, http.StatusCreated, "User registered successfully", newUserResponse(result.User, result.Token))
}

// Login authenticates a user and returns a fresh session token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  response{data=userResponse}
// @Failure      400   {object}  response
// @Failure      500   {object}  response
// @Router       /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "Invalid payload")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return respondError(c, err, "Server error during login")
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return respond(c, http.StatusOK, "Login successful", newUserResponse(result.User, result.Token))
}
