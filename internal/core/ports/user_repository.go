package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateToken caches the last-issued session token on the user record.
	UpdateToken(ctx context.Context, id, token string) error
}
