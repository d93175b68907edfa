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

func runUserRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put and Get round trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		user := &model.User{
			ID:       types.NewUserID(),
			Username: "alice",
			Email:    "alice@example.com",
		}
		gt.NoError(t, repo.User().Put(ctx, user)).Required()

		retrieved, err := repo.User().Get(ctx, user.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Username).Equal("alice")
		gt.Value(t, retrieved.Email).Equal("alice@example.com")
	})

	t.Run("Put overwrites existing user", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		user := &model.User{ID: types.NewUserID(), Username: "alice"}
		gt.NoError(t, repo.User().Put(ctx, user)).Required()

		user.Username = "alice-renamed"
		gt.NoError(t, repo.User().Put(ctx, user)).Required()

		retrieved, err := repo.User().Get(ctx, user.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Username).Equal("alice-renamed")
	})

	t.Run("Get returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.User().Get(ctx, types.NewUserID())
		gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
	})

	t.Run("Put rejects empty ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.Error(t, repo.User().Put(ctx, &model.User{Username: "noid"}))
	})

	t.Run("List returns all users", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"carol", "alice", "bob"} {
			gt.NoError(t, repo.User().Put(ctx, &model.User{
				ID:       types.NewUserID(),
				Username: name,
			})).Required()
		}

		users, err := repo.User().List(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, len(users)).GreaterOrEqual(3)
	})
}

func TestUserRepository_Memory(t *testing.T) {
	runUserRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestUserRepository_Firestore(t *testing.T) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}

	runUserRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, "")
		gt.NoError(t, err).Required()
		return repo
	})
}
