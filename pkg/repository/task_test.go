package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskdeck-io/taskdeck/pkg/domain/interfaces"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/repository"
	"github.com/taskdeck-io/taskdeck/pkg/repository/firestore"
	"github.com/taskdeck-io/taskdeck/pkg/repository/memory"
)

func runTaskRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and defaults status to Backlog", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Task().Create(ctx, &model.Task{
			Title:   "Write migration script",
			Project: "proj-1",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(types.TaskID(""))
		gt.Value(t, created.Status).Equal(types.StatusBacklog)
		gt.B(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("ListByProject filters tasks", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		projectA := types.NewProjectID()
		projectB := types.NewProjectID()

		for i := 0; i < 3; i++ {
			_, err := repo.Task().Create(ctx, &model.Task{Title: "A task", Project: projectA})
			gt.NoError(t, err).Required()
		}
		_, err := repo.Task().Create(ctx, &model.Task{Title: "B task", Project: projectB})
		gt.NoError(t, err).Required()

		tasks, err := repo.Task().ListByProject(ctx, projectA)
		gt.NoError(t, err).Required()
		gt.Number(t, len(tasks)).Equal(3)
		for _, task := range tasks {
			gt.Value(t, task.Project).Equal(projectA)
		}
	})

	t.Run("Get returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Task().Get(ctx, types.NewTaskID())
		gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
	})

	t.Run("Update overwrites the stored document", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Task().Create(ctx, &model.Task{
			Title:   "Review PR",
			Project: "proj-1",
		})
		gt.NoError(t, err).Required()

		created.Status = types.StatusInProgress
		created.TimeSpent = 2.5

		updated, err := repo.Task().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.StatusInProgress)
		gt.Number(t, updated.TimeSpent).Equal(2.5)
		gt.B(t, updated.CreatedAt.Equal(created.CreatedAt)).True()
	})

	t.Run("Update returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Task().Update(ctx, &model.Task{ID: types.NewTaskID(), Title: "Ghost"})
		gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
	})
}

func TestTaskRepository_Memory(t *testing.T) {
	runTaskRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestTaskRepository_Firestore(t *testing.T) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}

	runTaskRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, "")
		gt.NoError(t, err).Required()
		return repo
	})
}
