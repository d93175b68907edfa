package board

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/client"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

// Column is one lane of the kanban board.
type Column struct {
	Status types.Status
	Tasks  []model.TaskWithProject
}

// Board maintains a client-side working set of tasks grouped by status.
// The set holds only server-confirmed state: a drop that fails on the
// server leaves the board exactly as it was.
type Board struct {
	client *client.Client

	mu     sync.RWMutex
	tasks  map[types.TaskID]model.TaskWithProject
	filter types.ProjectID
}

func New(c *client.Client) *Board {
	return &Board{
		client: c,
		tasks:  make(map[types.TaskID]model.TaskWithProject),
	}
}

// Load replaces the working set with the server's current task list.
func (b *Board) Load(ctx context.Context) error {
	tasks, err := b.client.ListTasks(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load board")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tasks = make(map[types.TaskID]model.TaskWithProject, len(tasks))
	for _, t := range tasks {
		b.tasks[t.ID] = t
	}

	return nil
}

// DropTask moves a task into the target column. A task not in the
// working set is a no-op and issues no request. The local copy is
// replaced only with the server-confirmed result; on error the board
// is unchanged.
func (b *Board) DropTask(ctx context.Context, id types.TaskID, target types.Status) error {
	if !target.IsValid() {
		return goerr.New("invalid target status", goerr.V("status", target))
	}

	b.mu.RLock()
	current, ok := b.tasks[id]
	b.mu.RUnlock()
	if !ok {
		return nil
	}

	updated, err := b.client.UpdateTask(ctx, id, client.TaskUpdate{
		Status: target.String(),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to move task", goerr.V("task_id", id))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	confirmed := model.TaskWithProject{
		Task:         updated,
		ProjectTitle: current.ProjectTitle,
	}
	b.tasks[id] = confirmed

	return nil
}

// FilterProject restricts Columns to one project's tasks. A zero ID
// clears the filter.
func (b *Board) FilterProject(id types.ProjectID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.filter = id
}

// Columns returns the board's lanes in workflow order. Every status gets
// a column even when empty.
func (b *Board) Columns() []Column {
	b.mu.RLock()
	defer b.mu.RUnlock()

	byStatus := make(map[types.Status][]model.TaskWithProject)
	for _, t := range b.tasks {
		if b.filter != "" && t.Project != b.filter {
			continue
		}
		status := t.Status.Normalize()
		byStatus[status] = append(byStatus[status], t)
	}

	columns := make([]Column, 0, len(types.AllStatuses()))
	for _, status := range types.AllStatuses() {
		columns = append(columns, Column{
			Status: status,
			Tasks:  byStatus[status],
		})
	}

	return columns
}

// Task returns the working-set copy of one task.
func (b *Board) Task(id types.TaskID) (model.TaskWithProject, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	t, ok := b.tasks[id]
	return t, ok
}
