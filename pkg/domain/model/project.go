package model

import (
	"time"

	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

// Project represents a tracked project.
type Project struct {
	ID          types.ProjectID `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	Status      types.Status    `json:"status"`
	Developer   types.UserID    `json:"developer,omitempty"`
	Owner       types.UserID    `json:"owner"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProjectWithDeveloper is a Project annotated with its developer's
// display name for list responses.
type ProjectWithDeveloper struct {
	Project
	DeveloperName string `json:"developerName,omitempty"`
}

// ProjectPatch is a partial update for a Project. A zero-valued field
// keeps the stored value; only non-zero fields replace it. Note that this
// makes an empty string indistinguishable from "not provided", which is
// the contract callers rely on.
type ProjectPatch struct {
	Title       string
	Description string
	DeveloperID types.UserID
	Status      types.Status
}

// Apply merges the patch into p, field by field. The developer reference
// is resolved by the caller and is not touched here.
func (patch ProjectPatch) Apply(p *Project) {
	if patch.Title != "" {
		p.Title = patch.Title
	}
	if patch.Description != "" {
		p.Description = patch.Description
	}
	if patch.Status != "" {
		p.Status = patch.Status
	}
}
