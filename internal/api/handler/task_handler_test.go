package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

type stubTaskService struct {
	listFn      func(ctx context.Context, ownerID string) ([]*domain.Task, error)
	createFn    func(ctx context.Context, ownerID, text string) (*domain.Task, error)
	updateFn    func(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error)
	deleteFn    func(ctx context.Context, id string) (string, error)
	deleteAllFn func(ctx context.Context, ownerID string) (int64, error)
}

func (s *stubTaskService) List(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubTaskService) Create(ctx context.Context, ownerID, text string) (*domain.Task, error) {
	return s.createFn(ctx, ownerID, text)
}

func (s *stubTaskService) Update(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubTaskService) Delete(ctx context.Context, id string) (string, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubTaskService) DeleteAll(ctx context.Context, ownerID string) (int64, error) {
	return s.deleteAllFn(ctx, ownerID)
}

func TestTaskHandler_List_Success(t *testing.T) {
	stub := &stubTaskService{
		listFn: func(ctx context.Context, ownerID string) ([]*domain.Task, error) {
			if ownerID != "user_1" {
				t.Fatalf("unexpected owner id: %s", ownerID)
			}
			return []*domain.Task{
				{ID: "task_2", Task: "newer", UserID: ownerID},
				{ID: "task_1", Task: "older", UserID: ownerID},
			}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/todos?userId=user_1", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("expected 2 tasks in data: %+v", resp["data"])
	}
}

func TestTaskHandler_List_UserNotFound(t *testing.T) {
	stub := &stubTaskService{
		listFn: func(ctx context.Context, ownerID string) ([]*domain.Task, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/todos?userId=ghost", "")
	_ = handler.List(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "User not found" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestTaskHandler_List_MissingUserID(t *testing.T) {
	stub := &stubTaskService{
		listFn: func(ctx context.Context, ownerID string) ([]*domain.Task, error) {
			return nil, domain.Invalid("User ID is required")
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/todos", "")
	_ = handler.List(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTaskHandler_Create_Success(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, ownerID, text string) (*domain.Task, error) {
			if ownerID != "user_1" || text != "buy milk" {
				t.Fatalf("unexpected args: %s %q", ownerID, text)
			}
			return &domain.Task{ID: "task_1", Task: text, UserID: ownerID}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/todos?userId=user_1", `{"task":"buy milk"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Todo created successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestTaskHandler_Create_MissingTask(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, ownerID, text string) (*domain.Task, error) {
			return nil, domain.Invalid("Task is required")
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/todos?userId=user_1", `{}`)
	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Task is required" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestTaskHandler_Update_PartialFields(t *testing.T) {
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
			if id != "task_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.Task != nil {
				t.Fatalf("task field should be absent")
			}
			if input.Completed == nil || !*input.Completed {
				t.Fatalf("expected completed=true")
			}
			if input.SetCompletedTime {
				t.Fatalf("completed_time was not provided")
			}
			return &domain.Task{ID: id, Task: "buy milk", Completed: true}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/todos/task_1", `{"completed":true}`)
	c.SetParamNames("id")
	c.SetParamValues("task_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTaskHandler_Update_NullCompletedTimeClears(t *testing.T) {
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
			if !input.SetCompletedTime {
				t.Fatalf("expected SetCompletedTime for explicit null")
			}
			if input.CompletedTime != nil {
				t.Fatalf("expected nil completed_time for explicit null")
			}
			return &domain.Task{ID: id}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/todos/task_1", `{"completed_time":null}`)
	c.SetParamNames("id")
	c.SetParamValues("task_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTaskHandler_Update_CompletedTimeValue(t *testing.T) {
	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
			if !input.SetCompletedTime || input.CompletedTime == nil {
				t.Fatalf("expected completed_time to be provided")
			}
			if !input.CompletedTime.Equal(when) {
				t.Fatalf("unexpected completed_time: %v", input.CompletedTime)
			}
			return &domain.Task{ID: id, CompletedTime: input.CompletedTime}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/todos/task_1", `{"completed_time":"2025-06-01T12:00:00Z"}`)
	c.SetParamNames("id")
	c.SetParamValues("task_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTaskHandler_Update_NotFound(t *testing.T) {
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrTaskNotFound
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/todos/missing", `{"completed":true}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Todo not found" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestTaskHandler_Delete_Success(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, id string) (string, error) {
			return id, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/todos/task_1", "")
	c.SetParamNames("id")
	c.SetParamValues("task_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	data, ok := resp["data"].(map[string]any)
	if !ok || data["deletedId"] != "task_1" {
		t.Fatalf("expected deletedId in data: %+v", resp["data"])
	}
}

func TestTaskHandler_DeleteAll_ReportsCount(t *testing.T) {
	stub := &stubTaskService{
		deleteAllFn: func(ctx context.Context, ownerID string) (int64, error) {
			if ownerID != "user_1" {
				t.Fatalf("unexpected owner id: %s", ownerID)
			}
			return 3, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/todos/delete/all?userId=user_1", "")
	if err := handler.DeleteAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	data, ok := resp["data"].(map[string]any)
	if !ok || data["deletedCount"] != float64(3) {
		t.Fatalf("expected deletedCount in data: %+v", resp["data"])
	}
}
