package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

type taskRepository struct {
	mu    sync.RWMutex
	tasks map[types.TaskID]*model.Task
}

func newTaskRepository() *taskRepository {
	return &taskRepository{
		tasks: make(map[types.TaskID]*model.Task),
	}
}

func copyTask(t *model.Task) *model.Task {
	copied := *t
	return &copied
}

func (r *taskRepository) Create(ctx context.Context, t *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyTask(t)
	if created.ID == "" {
		created.ID = types.NewTaskID()
	}
	created.Status = created.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.tasks[created.ID] = created
	return copyTask(created), nil
}

func (r *taskRepository) Get(ctx context.Context, id types.TaskID) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.tasks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
	}

	return copyTask(t), nil
}

func (r *taskRepository) List(ctx context.Context) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, copyTask(t))
	}

	return tasks, nil
}

func (r *taskRepository) ListByProject(ctx context.Context, projectID types.ProjectID) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*model.Task, 0)
	for _, t := range r.tasks {
		if t.Project == projectID {
			tasks = append(tasks, copyTask(t))
		}
	}

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, t *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.tasks[t.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", t.ID))
	}

	updated := copyTask(t)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.tasks[updated.ID] = updated
	return copyTask(updated), nil
}
