package interfaces

import (
	"context"

	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

// ProjectRepository defines the interface for Project data access
type ProjectRepository interface {
	// Create creates a new project with auto-generated ID
	Create(ctx context.Context, p *model.Project) (*model.Project, error)

	// Get retrieves a project by ID
	Get(ctx context.Context, id types.ProjectID) (*model.Project, error)

	// List retrieves all projects
	List(ctx context.Context) ([]*model.Project, error)

	// Update overwrites an existing project
	Update(ctx context.Context, p *model.Project) (*model.Project, error)
}
