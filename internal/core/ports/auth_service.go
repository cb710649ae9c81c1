package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account.
// Picture is optional; everything else is required.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Picture   string
}

// AuthResult is returned by both Register and Login: the account (password
// hash never serialised) plus a freshly signed session token.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
