package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/interfaces"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/repository"
)

// TaskUseCase mutates tasks. Unlike projects, task status transitions
// never emit a notification; only the update activity is recorded.
type TaskUseCase struct {
	repo     interfaces.Repository
	activity *ActivityUseCase
}

func NewTaskUseCase(repo interfaces.Repository, activity *ActivityUseCase) *TaskUseCase {
	return &TaskUseCase{
		repo:     repo,
		activity: activity,
	}
}

// withProjectTitle annotates a task with its project's title. A project
// that no longer resolves leaves the title blank.
func (uc *TaskUseCase) withProjectTitle(ctx context.Context, t *model.Task) (*model.TaskWithProject, error) {
	annotated := &model.TaskWithProject{Task: *t}
	if t.Project != "" {
		project, err := uc.repo.Project().Get(ctx, t.Project)
		if err == nil {
			annotated.ProjectTitle = project.Title
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to resolve project", goerr.V(TaskIDKey, t.ID))
		}
	}
	return annotated, nil
}

// ListTasks returns all tasks with project titles populated and records
// the fetch as an activity.
func (uc *TaskUseCase) ListTasks(ctx context.Context, actor types.UserID) ([]*model.TaskWithProject, error) {
	tasks, err := uc.repo.Task().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tasks")
	}

	result := make([]*model.TaskWithProject, 0, len(tasks))
	for _, t := range tasks {
		annotated, err := uc.withProjectTitle(ctx, t)
		if err != nil {
			return nil, err
		}
		result = append(result, annotated)
	}

	if _, err := uc.activity.Record(ctx, actor, "retrieved all tasks", fmt.Sprintf("Fetched %d tasks.", len(result))); err != nil {
		return nil, err
	}

	return result, nil
}

// GetTask returns one task with its project title populated. A missing
// task yields ErrTaskNotFound with no activity written; a successful
// fetch is recorded.
func (uc *TaskUseCase) GetTask(ctx context.Context, actor types.UserID, id types.TaskID) (*model.TaskWithProject, error) {
	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V(TaskIDKey, id))
	}

	annotated, err := uc.withProjectTitle(ctx, task)
	if err != nil {
		return nil, err
	}

	if _, err := uc.activity.Record(ctx, actor, "retrieved a task by ID", fmt.Sprintf("Fetched task with title: %s", task.Title)); err != nil {
		return nil, err
	}

	return annotated, nil
}

// CreateTask creates a task and records the creation activity.
func (uc *TaskUseCase) CreateTask(ctx context.Context, actor types.UserID, title, description string, projectID types.ProjectID) (*model.Task, error) {
	created, err := uc.repo.Task().Create(ctx, &model.Task{
		Title:       title,
		Description: description,
		Project:     projectID,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create task")
	}

	if _, err := uc.activity.Record(ctx, actor, "created a task", fmt.Sprintf("Created task with title: %s", created.Title)); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateTask applies a partial update with the same merge rule as
// projects. The recorded details include the post-merge status.
func (uc *TaskUseCase) UpdateTask(ctx context.Context, actor types.UserID, id types.TaskID, patch model.TaskPatch) (*model.Task, error) {
	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V(TaskIDKey, id))
	}

	patch.Apply(task)

	updated, err := uc.repo.Task().Update(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V(TaskIDKey, id))
	}

	details := fmt.Sprintf("Updated task with title: %s, new status: %s", updated.Title, updated.Status)
	if _, err := uc.activity.Record(ctx, actor, "updated a task", details); err != nil {
		return nil, err
	}

	return updated, nil
}
