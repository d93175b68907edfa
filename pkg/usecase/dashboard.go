package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/interfaces"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

// DashboardUseCase aggregates project and task counts for the
// dashboard view.
type DashboardUseCase struct {
	repo interfaces.Repository
}

func NewDashboardUseCase(repo interfaces.Repository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Analytics fetches projects and tasks concurrently and computes the
// summary counts. Completion percentage is 0 when there are no tasks.
func (uc *DashboardUseCase) Analytics(ctx context.Context) (*model.DashboardAnalytics, error) {
	var (
		projects []*model.Project
		tasks    []*model.Task
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		resp, err := uc.repo.Project().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to list projects")
		}
		projects = resp
		return nil
	})
	eg.Go(func() error {
		resp, err := uc.repo.Task().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to list tasks")
		}
		tasks = resp
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	analytics := &model.DashboardAnalytics{
		TotalProjects: len(projects),
		TotalTasks:    len(tasks),
	}
	for _, t := range tasks {
		switch t.Status {
		case types.StatusDone:
			analytics.CompletedTasks++
		case types.StatusInProgress:
			analytics.InProgressTasks++
		}
	}
	if analytics.TotalTasks > 0 {
		analytics.CompletionPercentage = float64(analytics.CompletedTasks) / float64(analytics.TotalTasks) * 100
	}

	return analytics, nil
}
