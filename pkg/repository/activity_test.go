package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/repository/memory"
)

func TestActivityRepository_Memory(t *testing.T) {
	t.Run("Create assigns ID and timestamp", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()

		created, err := repo.Activity().Create(ctx, &model.Activity{
			User:    "u-1",
			Action:  "created a project",
			Details: "Project: P1",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(types.ActivityID(""))
		gt.B(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("List returns newest first", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()

		for _, action := range []string{"first", "second", "third"} {
			_, err := repo.Activity().Create(ctx, &model.Activity{User: "u-1", Action: action})
			gt.NoError(t, err).Required()
			time.Sleep(time.Millisecond)
		}

		activities, err := repo.Activity().List(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, len(activities)).Equal(3)
		gt.Value(t, activities[0].Action).Equal("third")
		gt.Value(t, activities[2].Action).Equal("first")
	})
}
