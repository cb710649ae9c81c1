package handler

import "time"

// Request / response types for the task endpoints. Kept separate from the
// domain types so the JSON contract is not coupled to internal changes.

type createTaskRequest struct {
	Task string `json:"task" validate:"omitempty,max=500"`
}

// updateTaskRequest is a partial update: nil fields were not provided and
// must be left untouched. completed_time may be explicitly null to clear
// the timestamp; the handler detects that from the raw body.
type updateTaskRequest struct {
	Task          *string    `json:"task" validate:"omitempty,max=500"`
	Completed     *bool      `json:"completed"`
	CompletedTime *time.Time `json:"completed_time"`
}

type deleteTaskResponse struct {
	DeletedID string `json:"deletedId"`
}

type deleteAllTasksResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
