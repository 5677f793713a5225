package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of team work on one language of a team video.
// An empty Language means the task is not bound to a specific language yet.
type Task struct {
	BaseModel
	TeamID            uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index"`
	TeamVideoID       uuid.UUID  `json:"team_video_id" gorm:"type:uuid;not null;index"`
	Language          string     `json:"language" gorm:"size:16;not null;default:'';index"`
	Type              TaskType   `json:"type" gorm:"not null"`
	SubtitleVersionID *uuid.UUID `json:"subtitle_version_id,omitempty" gorm:"type:uuid"`
	AssigneeID        *uuid.UUID `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Deleted           bool       `json:"deleted" gorm:"not null;default:false"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
