package models

import (
	"github.com/google/uuid"
)

// Team is a managed group that owns videos and moderates their subtitles
type Team struct {
	BaseModel
	Name            string `json:"name" gorm:"size:64;not null;uniqueIndex" validate:"required,min=1,max=64"`
	Description     string `json:"description" gorm:"size:200"`
	WorkflowEnabled bool   `json:"workflow_enabled" gorm:"not null;default:false"`

	// Relationships
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember links a user to a team with a role
type TeamMember struct {
	BaseModel
	TeamID uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_member"`
	UserID uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_member"`
	Role   MemberRole `json:"role" gorm:"size:20;not null;default:contributor"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// TeamVideo marks a video as owned by a team
type TeamVideo struct {
	BaseModel
	TeamID  uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	VideoID uuid.UUID `json:"video_id" gorm:"type:uuid;not null;uniqueIndex"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for TeamVideo
func (TeamVideo) TableName() string {
	return "team_videos"
}
