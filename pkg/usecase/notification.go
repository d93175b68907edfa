package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/interfaces"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/repository"
)

// NotificationUseCase emits owner notifications for qualifying status
// transitions and serves the notification list.
type NotificationUseCase struct {
	repo interfaces.Repository
}

func NewNotificationUseCase(repo interfaces.Repository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// NotifyIfDone creates a notification iff the status moved into Done
// from a non-Done value. Any other transition, including Done to
// non-Done, returns nil without a write. This is the only conditional
// side effect in the system.
func (uc *NotificationUseCase) NotifyIfDone(ctx context.Context, prev, next types.Status, recipient types.UserID, title string) (*model.Notification, error) {
	if prev == types.StatusDone || next != types.StatusDone {
		return nil, nil
	}

	created, err := uc.repo.Notification().Create(ctx, &model.Notification{
		User:    recipient,
		Message: fmt.Sprintf("The project %q has been marked as done.", title),
		Read:    false,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create notification",
			goerr.V("recipient", recipient),
			goerr.V("title", title))
	}

	return created, nil
}

// ListNotifications returns the recipient's notifications, newest first.
func (uc *NotificationUseCase) ListNotifications(ctx context.Context, userID types.UserID) ([]*model.Notification, error) {
	notifications, err := uc.repo.Notification().ListByUser(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notifications", goerr.V("user_id", userID))
	}

	return notifications, nil
}

// MarkNotificationRead flips the read flag of one notification.
func (uc *NotificationUseCase) MarkNotificationRead(ctx context.Context, id types.NotificationID) (*model.Notification, error) {
	notification, err := uc.repo.Notification().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotificationNotFound, "notification not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get notification", goerr.V("id", id))
	}

	notification.Read = true

	updated, err := uc.repo.Notification().Update(ctx, notification)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to mark notification as read", goerr.V("id", id))
	}

	return updated, nil
}
