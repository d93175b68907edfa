package model

import (
	"time"

	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

// Task represents a unit of work inside a project.
type Task struct {
	ID          types.TaskID    `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Project     types.ProjectID `json:"project"`
	Status      types.Status    `json:"status"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	TimeSpent   float64         `json:"timeSpent"` // hours
	AssignedTo  types.UserID    `json:"assignedTo,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TaskWithProject is a Task annotated with its project's title for list
// and detail responses.
type TaskWithProject struct {
	Task
	ProjectTitle string `json:"projectTitle,omitempty"`
}

// TaskPatch is a partial update for a Task with the same
// zero-value-means-keep merge rule as ProjectPatch. TimeSpent = 0 keeps
// the stored value; there is no way to reset a field through a patch.
type TaskPatch struct {
	Title       string
	Description string
	Project     types.ProjectID
	Status      types.Status
	StartDate   time.Time
	EndDate     time.Time
	TimeSpent   float64
	AssignedTo  types.UserID
}

// Apply merges the patch into t, field by field.
func (patch TaskPatch) Apply(t *Task) {
	if patch.Title != "" {
		t.Title = patch.Title
	}
	if patch.Description != "" {
		t.Description = patch.Description
	}
	if patch.Project != "" {
		t.Project = patch.Project
	}
	if patch.Status != "" {
		t.Status = patch.Status
	}
	if !patch.StartDate.IsZero() {
		t.StartDate = patch.StartDate
	}
	if !patch.EndDate.IsZero() {
		t.EndDate = patch.EndDate
	}
	if patch.TimeSpent != 0 {
		t.TimeSpent = patch.TimeSpent
	}
	if patch.AssignedTo != "" {
		t.AssignedTo = patch.AssignedTo
	}
}
