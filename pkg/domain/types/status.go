package types

import "github.com/m-mizutani/goerr/v2"

// Status is the shared workflow status vocabulary for projects and tasks.
// Every transition between any two statuses is permitted; the only
// distinguished edge is a project moving into StatusDone, which triggers
// an owner notification.
type Status string

const (
	StatusBacklog    Status = "Backlog"
	StatusInProgress Status = "In_Progress"
	StatusReview     Status = "Review"
	StatusDone       Status = "Done"
)

// AllStatuses returns every valid status in board column order.
func AllStatuses() []Status {
	return []Status{
		StatusBacklog,
		StatusInProgress,
		StatusReview,
		StatusDone,
	}
}

// IsValid checks if the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusBacklog,
		StatusInProgress,
		StatusReview,
		StatusDone:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as StatusBacklog.
func (s Status) Normalize() Status {
	if s == "" {
		return StatusBacklog
	}
	return s
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", goerr.New("invalid status", goerr.V("status", s))
	}
	return status, nil
}
