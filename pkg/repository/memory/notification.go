package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

type notificationRepository struct {
	mu            sync.RWMutex
	notifications map[types.NotificationID]*model.Notification
}

func newNotificationRepository() *notificationRepository {
	return &notificationRepository{
		notifications: make(map[types.NotificationID]*model.Notification),
	}
}

func copyNotification(n *model.Notification) *model.Notification {
	copied := *n
	return &copied
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyNotification(n)
	if created.ID == "" {
		created.ID = types.NewNotificationID()
	}
	created.Timestamp = time.Now().UTC()

	r.notifications[created.ID] = created
	return copyNotification(created), nil
}

func (r *notificationRepository) Get(ctx context.Context, id types.NotificationID) (*model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, exists := r.notifications[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "notification not found", goerr.V("id", id))
	}

	return copyNotification(n), nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID types.UserID) ([]*model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notifications := make([]*model.Notification, 0)
	for _, n := range r.notifications {
		if n.User == userID {
			notifications = append(notifications, copyNotification(n))
		}
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})

	return notifications, nil
}

func (r *notificationRepository) Update(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.notifications[n.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "notification not found", goerr.V("id", n.ID))
	}

	updated := copyNotification(n)
	updated.Timestamp = existing.Timestamp

	r.notifications[updated.ID] = updated
	return copyNotification(updated), nil
}
