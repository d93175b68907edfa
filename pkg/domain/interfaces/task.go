package interfaces

import (
	"context"

	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

// TaskRepository defines the interface for Task data access
type TaskRepository interface {
	// Create creates a new task with auto-generated ID
	Create(ctx context.Context, t *model.Task) (*model.Task, error)

	// Get retrieves a task by ID
	Get(ctx context.Context, id types.TaskID) (*model.Task, error)

	// List retrieves all tasks
	List(ctx context.Context) ([]*model.Task, error)

	// ListByProject retrieves tasks belonging to one project
	ListByProject(ctx context.Context, projectID types.ProjectID) ([]*model.Task, error)

	// Update overwrites an existing task
	Update(ctx context.Context, t *model.Task) (*model.Task, error)
}
