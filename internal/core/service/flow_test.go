package service

import (
	"context"
	"testing"
	"time"

	"github.com/taskhub/todo-system/internal/core/ports"
)

// Exercises the whole per-user lifecycle across both services: register,
// create two tasks, list newest-first, delete one, bulk-delete the rest.
func TestUserTaskLifecycle(t *testing.T) {
	users := newStubUserRepo()
	tasks := newStubTaskRepo()
	auth := newTestAuthService(users, time.Hour)
	svc := newTestTaskService(tasks, users)
	ctx := context.Background()

	registered, err := auth.Register(ctx, ports.RegisterInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "pass123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	owner := registered.User.ID

	first, err := svc.Create(ctx, owner, "first task")
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	// Distinct creation instants so the ordering assertion is meaningful.
	time.Sleep(5 * time.Millisecond)
	second, err := svc.Create(ctx, owner, "second task")
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	listed, err := svc.List(ctx, owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(listed))
	}
	if listed[0].ID != second.ID || listed[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s then %s", listed[0].ID, listed[1].ID)
	}

	if _, err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	listed, err = svc.List(ctx, owner)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 task after delete, got %d", len(listed))
	}

	count, err := svc.DeleteAll(ctx, owner)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected deletedCount 1, got %d", count)
	}

	listed, err = svc.List(ctx, owner)
	if err != nil {
		t.Fatalf("final list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty list, got %d tasks", len(listed))
	}
}
