package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/interfaces"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

// ActivityUseCase appends audit records for user actions. Record is
// awaited inline by the mutators before they return, so a record
// failure fails the triggering request.
type ActivityUseCase struct {
	repo interfaces.Repository
}

func NewActivityUseCase(repo interfaces.Repository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// Record appends one activity attributed to the actor.
func (uc *ActivityUseCase) Record(ctx context.Context, actor types.UserID, action, details string) (*model.Activity, error) {
	created, err := uc.repo.Activity().Create(ctx, &model.Activity{
		User:    actor,
		Action:  action,
		Details: details,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to record activity",
			goerr.V(ActorIDKey, actor),
			goerr.V("action", action))
	}

	return created, nil
}

// ListActivities returns all activities, newest first.
func (uc *ActivityUseCase) ListActivities(ctx context.Context) ([]*model.Activity, error) {
	activities, err := uc.repo.Activity().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list activities")
	}

	return activities, nil
}
