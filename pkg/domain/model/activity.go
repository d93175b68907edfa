package model

import (
	"time"

	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

// Activity is an immutable audit record of one user action. Exactly one
// is written, synchronously, for every successful mutating or fetching
// operation. Activities are never updated or deleted.
type Activity struct {
	ID        types.ActivityID `json:"id"`
	User      types.UserID     `json:"user"`   // the actor
	Action    string           `json:"action"` // short verb phrase, e.g. "created a project"
	Details   string           `json:"details"`
	CreatedAt time.Time        `json:"createdAt"`
}
