package domain

import (
	"errors"
	"time"
)

// MaxTaskLength caps the task text after trimming.
const MaxTaskLength = 500

var ErrTaskNotFound = errors.New("task not found")

// Task is a single to-do item owned by a user. UserID references an
// existing User, verified at creation time; there is no relational
// constraint and deleting a user leaves their tasks in place.
type Task struct {
	ID            string     `json:"_id"`
	Task          string     `json:"task"`
	UserID        string     `json:"userId"`
	Completed     bool       `json:"completed"`
	CompletedTime *time.Time `json:"completed_time"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
