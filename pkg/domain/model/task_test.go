package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

func TestTaskPatch_Apply(t *testing.T) {
	base := func() model.Task {
		return model.Task{
			ID:          "task-1",
			Title:       "Wire the login form",
			Description: "original description",
			Project:     "proj-1",
			Status:      types.StatusBacklog,
			TimeSpent:   4.5,
			AssignedTo:  "u-dev",
		}
	}

	t.Run("only provided fields are replaced", func(t *testing.T) {
		task := base()
		patch := model.TaskPatch{Status: types.StatusReview}
		patch.Apply(&task)

		gt.Value(t, task.Status).Equal(types.StatusReview)
		gt.Value(t, task.Title).Equal("Wire the login form")
		gt.Value(t, task.Description).Equal("original description")
		gt.Number(t, task.TimeSpent).Equal(4.5)
	})

	t.Run("applying the same patch twice is idempotent", func(t *testing.T) {
		once := base()
		twice := base()
		patch := model.TaskPatch{Title: "Renamed", TimeSpent: 6}

		patch.Apply(&once)
		patch.Apply(&twice)
		patch.Apply(&twice)

		gt.Value(t, twice).Equal(once)
	})

	t.Run("zero time spent keeps the stored value", func(t *testing.T) {
		task := base()
		patch := model.TaskPatch{TimeSpent: 0}
		patch.Apply(&task)

		gt.Number(t, task.TimeSpent).Equal(4.5)
	})

	t.Run("empty strings keep stored values", func(t *testing.T) {
		task := base()
		patch := model.TaskPatch{Title: "", Description: "", AssignedTo: ""}
		patch.Apply(&task)

		gt.Value(t, task).Equal(base())
	})

	t.Run("dates replace only when set", func(t *testing.T) {
		task := base()
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		patch := model.TaskPatch{StartDate: start}
		patch.Apply(&task)

		gt.Value(t, task.StartDate).Equal(start)
		gt.B(t, task.EndDate.IsZero()).True()
	})
}

func TestProjectPatch_Apply(t *testing.T) {
	project := model.Project{
		ID:          "proj-1",
		Title:       "P1",
		Description: "desc",
		Status:      types.StatusBacklog,
		Developer:   "u-dev",
		Owner:       "u-owner",
	}

	patch := model.ProjectPatch{Status: types.StatusDone}
	patch.Apply(&project)

	gt.Value(t, project.Status).Equal(types.StatusDone)
	gt.Value(t, project.Title).Equal("P1")
	// Apply never touches the developer reference; that resolution
	// happens in the use case.
	gt.Value(t, project.Developer).Equal(types.UserID("u-dev"))
}
