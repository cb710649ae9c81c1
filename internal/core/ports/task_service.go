package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// TaskService defines use-case operations for tasks. Every owner-scoped
// operation verifies the owner exists before touching the tasks collection.
type TaskService interface {
	List(ctx context.Context, ownerID string) ([]*domain.Task, error)
	Create(ctx context.Context, ownerID, text string) (*domain.Task, error)
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	// Delete removes a single task and returns its id.
	Delete(ctx context.Context, id string) (string, error)
	// DeleteAll removes every task for the owner and returns the count.
	DeleteAll(ctx context.Context, ownerID string) (int64, error)
}
