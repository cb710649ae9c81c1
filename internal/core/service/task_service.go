package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

// TaskService implements task CRUD scoped per owner. Owner existence is
// verified through the user repository; there is no relational constraint
// between the two collections.
type TaskService struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, logger: logger}
}

// List returns all of the owner's tasks, newest first.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	if err := s.verifyOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.tasks.FindByOwner(ctx, ownerID)
}

// Create persists a new task with trimmed text and completed=false.
func (s *TaskService) Create(ctx context.Context, ownerID, text string) (*domain.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.Invalid("Task is required")
	}
	if len(text) > domain.MaxTaskLength {
		return nil, domain.Invalid("Task must be 500 characters or fewer")
	}
	if err := s.verifyOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Task:      text,
		UserID:    ownerID,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", ownerID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("user_id", ownerID).Msg("task created")
	return created, nil
}

// Update applies only the fields explicitly provided and refreshes
// updated_at. Absent fields are left untouched, not reset.
func (s *TaskService) Update(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	if id == "" {
		return nil, domain.Invalid("Todo ID is required")
	}
	if input.Task != nil {
		text := strings.TrimSpace(*input.Task)
		if text == "" {
			return nil, domain.Invalid("Task is required")
		}
		if len(text) > domain.MaxTaskLength {
			return nil, domain.Invalid("Task must be 500 characters or fewer")
		}
		input.Task = &text
	}

	updated, err := s.tasks.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", id).Msg("task updated")
	return updated, nil
}

// Delete removes a single task permanently and returns its id.
func (s *TaskService) Delete(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", domain.Invalid("Todo ID is required")
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return "", err
	}

	s.logger.Info().Str("task_id", id).Msg("task deleted")
	return id, nil
}

// DeleteAll removes every task belonging to the owner and reports the
// count removed, which may be zero.
func (s *TaskService) DeleteAll(ctx context.Context, ownerID string) (int64, error) {
	if err := s.verifyOwner(ctx, ownerID); err != nil {
		return 0, err
	}

	count, err := s.tasks.DeleteByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("user_id", ownerID).Int64("count", count).Msg("all tasks deleted")
	return count, nil
}

func (s *TaskService) verifyOwner(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return domain.Invalid("User ID is required")
	}
	_, err := s.users.FindByID(ctx, ownerID)
	return err
}
