package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/interfaces"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
)

// UserUseCase serves the read-only user roster.
type UserUseCase struct {
	repo interfaces.Repository
}

func NewUserUseCase(repo interfaces.Repository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ListUsers returns the roster sorted by username.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := uc.repo.User().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}

	return users, nil
}
