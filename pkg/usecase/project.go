package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/interfaces"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/repository"
)

// ProjectUseCase mutates projects and orchestrates their side effects:
// one activity per operation, then the Done-transition notification
// check, in that fixed order, after the project itself is persisted.
type ProjectUseCase struct {
	repo     interfaces.Repository
	activity *ActivityUseCase
	notifier *NotificationUseCase
}

func NewProjectUseCase(repo interfaces.Repository, activity *ActivityUseCase, notifier *NotificationUseCase) *ProjectUseCase {
	return &ProjectUseCase{
		repo:     repo,
		activity: activity,
		notifier: notifier,
	}
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, goerr.Wrap(ErrInvalidInput, "invalid date", goerr.V("date", s))
	}
	return t, nil
}

// ListProjects returns all projects with their developer's username
// populated. Developers that no longer resolve are left blank.
func (uc *ProjectUseCase) ListProjects(ctx context.Context) ([]*model.ProjectWithDeveloper, error) {
	projects, err := uc.repo.Project().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list projects")
	}

	result := make([]*model.ProjectWithDeveloper, 0, len(projects))
	for _, p := range projects {
		annotated := &model.ProjectWithDeveloper{Project: *p}
		if p.Developer != "" {
			user, err := uc.repo.User().Get(ctx, p.Developer)
			if err == nil {
				annotated.DeveloperName = user.Username
			} else if !errors.Is(err, repository.ErrNotFound) {
				return nil, goerr.Wrap(err, "failed to resolve developer", goerr.V(ProjectIDKey, p.ID))
			}
		}
		result = append(result, annotated)
	}

	return result, nil
}

// CreateProject creates a project owned by the actor and records the
// creation activity before returning.
func (uc *ProjectUseCase) CreateProject(ctx context.Context, actor types.UserID, title, description, startDate, endDate string) (*model.Project, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.Project().Create(ctx, &model.Project{
		Title:       title,
		Description: description,
		StartDate:   start,
		EndDate:     end,
		Owner:       actor,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create project")
	}

	if _, err := uc.activity.Record(ctx, actor, "created a project", fmt.Sprintf("Project: %s", created.Title)); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateProject applies a partial update. Fields absent from the patch
// keep their stored values. A developer ID that does not resolve to a
// user is silently ignored. When the merged status moves into Done from
// a non-Done status, the owner is notified after the update activity is
// recorded.
func (uc *ProjectUseCase) UpdateProject(ctx context.Context, actor types.UserID, id types.ProjectID, patch model.ProjectPatch) (*model.Project, error) {
	project, err := uc.repo.Project().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(ErrProjectNotFound, "project not found", goerr.V(ProjectIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get project", goerr.V(ProjectIDKey, id))
	}

	previousStatus := project.Status
	patch.Apply(project)

	if patch.DeveloperID != "" {
		developer, err := uc.repo.User().Get(ctx, patch.DeveloperID)
		if err == nil {
			project.Developer = developer.ID
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to resolve developer", goerr.V(ProjectIDKey, id))
		}
		// Unknown developer IDs are dropped without an error.
	}

	updated, err := uc.repo.Project().Update(ctx, project)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update project", goerr.V(ProjectIDKey, id))
	}

	if _, err := uc.activity.Record(ctx, actor, "updated a project", fmt.Sprintf("Project: %s", updated.Title)); err != nil {
		return nil, err
	}

	if _, err := uc.notifier.NotifyIfDone(ctx, previousStatus, updated.Status, updated.Owner, updated.Title); err != nil {
		return nil, err
	}

	return updated, nil
}

// ListProjectTasks returns the tasks belonging to one project.
func (uc *ProjectUseCase) ListProjectTasks(ctx context.Context, projectID types.ProjectID) ([]*model.Task, error) {
	tasks, err := uc.repo.Task().ListByProject(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list project tasks", goerr.V(ProjectIDKey, projectID))
	}

	return tasks, nil
}
