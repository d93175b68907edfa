package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/repository/memory"
	"github.com/taskdeck-io/taskdeck/pkg/usecase"
)

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	actor := types.NewUserID()

	project, err := uc.Project.CreateProject(ctx, actor, "Website Redesign", "New marketing site", "2026-01-10", "2026-03-31")
	gt.NoError(t, err).Required()
	gt.Value(t, project.Title).Equal("Website Redesign")
	gt.Value(t, project.Owner).Equal(actor)
	gt.Value(t, project.Status).Equal(types.StatusBacklog)
	gt.Bool(t, project.ID != "").True()
	gt.Bool(t, project.CreatedAt.IsZero()).False()
	gt.Value(t, project.StartDate.Format("2006-01-02")).Equal("2026-01-10")

	activities, err := uc.Activity.ListActivities(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, activities).Length(1)
	gt.Value(t, activities[0].User).Equal(actor)
	gt.Value(t, activities[0].Action).Equal("created a project")
	gt.Value(t, activities[0].Details).Equal("Project: Website Redesign")
}

func TestCreateProjectInvalidDate(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	_, err := uc.Project.CreateProject(ctx, types.NewUserID(), "X", "", "not-a-date", "2026-03-31")
	gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()

	// Nothing persisted and no activity on failure.
	activities, err := uc.Activity.ListActivities(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, activities).Length(0)
}

func TestUpdateProjectPartialMerge(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	actor := types.NewUserID()

	project, err := uc.Project.CreateProject(ctx, actor, "P1", "original description", "2026-01-01", "2026-06-30")
	gt.NoError(t, err).Required()

	updated, err := uc.Project.UpdateProject(ctx, actor, project.ID, model.ProjectPatch{
		Status: types.StatusInProgress,
	})
	gt.NoError(t, err).Required()

	gt.Value(t, updated.Status).Equal(types.StatusInProgress)
	gt.Value(t, updated.Title).Equal("P1")
	gt.Value(t, updated.Description).Equal("original description")
	gt.Value(t, updated.CreatedAt).Equal(project.CreatedAt)
}

func TestUpdateProjectNotFound(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	_, err := uc.Project.UpdateProject(ctx, types.NewUserID(), types.NewProjectID(), model.ProjectPatch{Title: "x"})
	gt.Bool(t, errors.Is(err, usecase.ErrProjectNotFound)).True()
}

func TestUpdateProjectDeveloperAssignment(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)
	actor := types.NewUserID()

	dev := &model.User{ID: types.NewUserID(), Username: "alice", Email: "alice@example.com"}
	gt.NoError(t, repo.User().Put(ctx, dev))

	project, err := uc.Project.CreateProject(ctx, actor, "P1", "", "2026-01-01", "2026-06-30")
	gt.NoError(t, err).Required()

	updated, err := uc.Project.UpdateProject(ctx, actor, project.ID, model.ProjectPatch{
		DeveloperID: dev.ID,
	})
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Developer).Equal(dev.ID)

	// An unknown developer ID is ignored; the assignment stays.
	updated, err = uc.Project.UpdateProject(ctx, actor, project.ID, model.ProjectPatch{
		DeveloperID: types.NewUserID(),
	})
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Developer).Equal(dev.ID)

	projects, err := uc.Project.ListProjects(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, projects).Length(1)
	gt.Value(t, projects[0].DeveloperName).Equal("alice")

	// Both updates recorded their activity, resolved developer or not.
	activities, err := uc.Activity.ListActivities(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, activities).Length(3)
	gt.Value(t, activities[0].Action).Equal("updated a project")
	gt.Value(t, activities[1].Action).Equal("updated a project")
}

func TestUpdateProjectDoneNotification(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	actor := types.NewUserID()

	project, err := uc.Project.CreateProject(ctx, actor, "P1", "", "2026-01-01", "2026-06-30")
	gt.NoError(t, err).Required()
	owner := project.Owner

	// Backlog -> Done notifies the owner.
	_, err = uc.Project.UpdateProject(ctx, actor, project.ID, model.ProjectPatch{Status: types.StatusDone})
	gt.NoError(t, err).Required()

	notifications, err := uc.Notification.ListNotifications(ctx, owner)
	gt.NoError(t, err).Required()
	gt.Array(t, notifications).Length(1)
	gt.Bool(t, strings.Contains(notifications[0].Message, `"P1"`)).True()
	gt.Bool(t, notifications[0].Read).False()

	// Done -> Review does not notify.
	_, err = uc.Project.UpdateProject(ctx, actor, project.ID, model.ProjectPatch{Status: types.StatusReview})
	gt.NoError(t, err).Required()
	notifications, err = uc.Notification.ListNotifications(ctx, owner)
	gt.NoError(t, err).Required()
	gt.Array(t, notifications).Length(1)

	// Review -> Done notifies again.
	_, err = uc.Project.UpdateProject(ctx, actor, project.ID, model.ProjectPatch{Status: types.StatusDone})
	gt.NoError(t, err).Required()
	notifications, err = uc.Notification.ListNotifications(ctx, owner)
	gt.NoError(t, err).Required()
	gt.Array(t, notifications).Length(2)

	// A Done -> Done update is not a transition.
	_, err = uc.Project.UpdateProject(ctx, actor, project.ID, model.ProjectPatch{Title: "P1 renamed", Status: types.StatusDone})
	gt.NoError(t, err).Required()
	notifications, err = uc.Notification.ListNotifications(ctx, owner)
	gt.NoError(t, err).Required()
	gt.Array(t, notifications).Length(2)
}

func TestListProjectsNoActivity(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	actor := types.NewUserID()

	_, err := uc.Project.CreateProject(ctx, actor, "P1", "", "2026-01-01", "2026-06-30")
	gt.NoError(t, err).Required()
	before, err := uc.Activity.ListActivities(ctx)
	gt.NoError(t, err).Required()

	_, err = uc.Project.ListProjects(ctx)
	gt.NoError(t, err).Required()

	after, err := uc.Activity.ListActivities(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, after).Length(len(before))
}

func TestListProjectTasks(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	actor := types.NewUserID()

	p1, err := uc.Project.CreateProject(ctx, actor, "P1", "", "2026-01-01", "2026-06-30")
	gt.NoError(t, err).Required()
	p2, err := uc.Project.CreateProject(ctx, actor, "P2", "", "2026-01-01", "2026-06-30")
	gt.NoError(t, err).Required()

	for _, tc := range []struct {
		title   string
		project types.ProjectID
	}{
		{"t1", p1.ID},
		{"t2", p2.ID},
		{"t3", p1.ID},
	} {
		_, err := uc.Task.CreateTask(ctx, actor, tc.title, "", tc.project)
		gt.NoError(t, err).Required()
	}

	tasks, err := uc.Project.ListProjectTasks(ctx, p1.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, tasks).Length(2)
	for _, task := range tasks {
		gt.Value(t, task.Project).Equal(p1.ID)
	}
}
