package ports

import (
	"context"
	"time"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// UpdateTaskInput carries a partial update. Nil pointers mean "leave the
// field untouched". SetCompletedTime distinguishes an explicit null (clear
// the timestamp) from an absent field.
type UpdateTaskInput struct {
	Task             *string
	Completed        *bool
	CompletedTime    *time.Time
	SetCompletedTime bool
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// FindByOwner returns the owner's tasks ordered by creation time
	// descending (newest first).
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	// Update applies the provided fields and refreshes updated_at,
	// returning the updated document.
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	// DeleteByOwner removes every task for the owner and reports how many
	// documents were removed.
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
