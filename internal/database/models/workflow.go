package models

import (
	"github.com/google/uuid"
)

// Workflow holds the moderation settings of a team, optionally narrowed to one team video
type Workflow struct {
	BaseModel
	TeamID         uuid.UUID       `json:"team_id" gorm:"type:uuid;not null;index"`
	TeamVideoID    *uuid.UUID      `json:"team_video_id,omitempty" gorm:"type:uuid;index"`
	ReviewAllowed  ModerationLevel `json:"review_allowed" gorm:"not null;default:0"`
	ApproveAllowed ModerationLevel `json:"approve_allowed" gorm:"not null;default:0"`

	// AllowsTasks mirrors Team.WorkflowEnabled and is filled in by the repository
	AllowsTasks bool `json:"allows_tasks" gorm:"-"`
}

// TableName returns the table name for Workflow
func (Workflow) TableName() string {
	return "workflows"
}

// ReviewEnabled reports whether the workflow has a review step
func (w *Workflow) ReviewEnabled() bool {
	return w.ReviewAllowed != ModerationNone
}

// ApproveEnabled reports whether the workflow has an approve step
func (w *Workflow) ApproveEnabled() bool {
	return w.ApproveAllowed != ModerationNone
}
