package interfaces

import (
	"context"

	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

// NotificationRepository defines the interface for Notification data access
type NotificationRepository interface {
	// Create appends a new notification with auto-generated ID
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)

	// Get retrieves a notification by ID
	Get(ctx context.Context, id types.NotificationID) (*model.Notification, error)

	// ListByUser retrieves notifications for one recipient, newest first
	ListByUser(ctx context.Context, userID types.UserID) ([]*model.Notification, error)

	// Update overwrites an existing notification (used to mark as read)
	Update(ctx context.Context, n *model.Notification) (*model.Notification, error)
}
