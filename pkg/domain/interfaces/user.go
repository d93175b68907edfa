package interfaces

import (
	"context"

	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

// UserRepository defines the interface for User data access. Users are
// seeded from the roster; this service never creates them through a
// request path.
type UserRepository interface {
	// Put stores or replaces a user
	Put(ctx context.Context, u *model.User) error

	// Get retrieves a user by ID
	Get(ctx context.Context, id types.UserID) (*model.User, error)

	// List retrieves all users
	List(ctx context.Context) ([]*model.User, error)
}
