package interfaces

import (
	"context"

	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
)

// ActivityRepository defines the interface for Activity data access.
// Activities are append-only.
type ActivityRepository interface {
	// Create appends a new activity with auto-generated ID
	Create(ctx context.Context, a *model.Activity) (*model.Activity, error)

	// List retrieves all activities, newest first
	List(ctx context.Context) ([]*model.Activity, error)
}
