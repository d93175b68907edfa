package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/repository/memory"
	"github.com/taskdeck-io/taskdeck/pkg/usecase"
)

func TestDashboardAnalyticsEmpty(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	analytics, err := uc.Dashboard.Analytics(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, analytics.TotalProjects).Equal(0)
	gt.Number(t, analytics.TotalTasks).Equal(0)
	gt.Number(t, analytics.CompletionPercentage).Equal(0)
}

func TestDashboardAnalytics(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	actor := types.NewUserID()

	project, err := uc.Project.CreateProject(ctx, actor, "P1", "", "2026-01-01", "2026-06-30")
	gt.NoError(t, err).Required()
	_, err = uc.Project.CreateProject(ctx, actor, "P2", "", "2026-01-01", "2026-06-30")
	gt.NoError(t, err).Required()

	statuses := []types.Status{
		types.StatusDone,
		types.StatusInProgress,
		types.StatusInProgress,
		types.StatusBacklog,
	}
	for _, status := range statuses {
		task, err := uc.Task.CreateTask(ctx, actor, "t", "", project.ID)
		gt.NoError(t, err).Required()
		_, err = uc.Task.UpdateTask(ctx, actor, task.ID, model.TaskPatch{Status: status})
		gt.NoError(t, err).Required()
	}

	analytics, err := uc.Dashboard.Analytics(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, analytics.TotalProjects).Equal(2)
	gt.Number(t, analytics.TotalTasks).Equal(4)
	gt.Number(t, analytics.CompletedTasks).Equal(1)
	gt.Number(t, analytics.InProgressTasks).Equal(2)
	gt.Number(t, analytics.CompletionPercentage).Equal(25)
}
