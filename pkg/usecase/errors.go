package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	// Not found errors
	ErrProjectNotFound      = errors.New("project not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// Input errors
	ErrInvalidInput = errors.New("invalid input")
)

// Context keys for error values
const (
	ProjectIDKey = "project_id"
	TaskIDKey    = "task_id"
	ActorIDKey   = "actor_id"
)
