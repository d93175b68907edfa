package model

import (
	"time"

	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

// Notification is a user-facing message produced when a project
// transitions into Done. The recipient is the project owner, not the
// actor who triggered the transition. Read starts false and is flipped
// through the mark-read endpoint.
type Notification struct {
	ID        types.NotificationID `json:"id"`
	User      types.UserID         `json:"user"` // the recipient
	Message   string               `json:"message"`
	Read      bool                 `json:"read"`
	Timestamp time.Time            `json:"timestamp"`
}
