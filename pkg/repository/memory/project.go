package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

type projectRepository struct {
	mu       sync.RWMutex
	projects map[types.ProjectID]*model.Project
}

func newProjectRepository() *projectRepository {
	return &projectRepository{
		projects: make(map[types.ProjectID]*model.Project),
	}
}

// copyProject creates a copy so callers never share the stored document.
func copyProject(p *model.Project) *model.Project {
	copied := *p
	return &copied
}

func (r *projectRepository) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyProject(p)
	if created.ID == "" {
		created.ID = types.NewProjectID()
	}
	created.Status = created.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.projects[created.ID] = created
	return copyProject(created), nil
}

func (r *projectRepository) Get(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.projects[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
	}

	return copyProject(p), nil
}

func (r *projectRepository) List(ctx context.Context) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]*model.Project, 0, len(r.projects))
	for _, p := range r.projects {
		projects = append(projects, copyProject(p))
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.projects[p.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", p.ID))
	}

	updated := copyProject(p)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.projects[updated.ID] = updated
	return copyProject(updated), nil
}
