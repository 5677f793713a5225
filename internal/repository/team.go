package repository

import (
	"subtitles-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams, their members, videos and workflows
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// AddMember adds a user to a team
func (r *TeamRepository) AddMember(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetMember retrieves the membership of a user in a team
func (r *TeamRepository) GetMember(teamID, userID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// AddVideo puts a video under a team
func (r *TeamRepository) AddVideo(teamVideo *models.TeamVideo) error {
	return r.db.Omit("Team").Create(teamVideo).Error
}

// GetTeamVideoByVideoID returns the team wrapper of a video with its team loaded.
// A video that no team owns yields (nil, nil).
func (r *TeamRepository) GetTeamVideoByVideoID(videoID uuid.UUID) (*models.TeamVideo, error) {
	var teamVideos []models.TeamVideo
	err := r.db.Preload("Team").Where("video_id = ?", videoID).Limit(1).Find(&teamVideos).Error
	if err != nil {
		return nil, err
	}
	if len(teamVideos) == 0 {
		return nil, nil
	}
	return &teamVideos[0], nil
}

// SaveWorkflow creates or updates a workflow
func (r *TeamRepository) SaveWorkflow(workflow *models.Workflow) error {
	return r.db.Save(workflow).Error
}

// GetWorkflow returns the workflow that applies to a team video. A workflow bound to the
// team video wins over the team-wide one; without either, review and approve are disabled.
// AllowsTasks is taken from the team.
func (r *TeamRepository) GetWorkflow(teamVideo *models.TeamVideo) (*models.Workflow, error) {
	team := teamVideo.Team
	if team == nil {
		var loaded models.Team
		if err := r.db.First(&loaded, "id = ?", teamVideo.TeamID).Error; err != nil {
			return nil, err
		}
		team = &loaded
	}

	var workflows []models.Workflow
	err := r.db.
		Where("team_id = ? AND (team_video_id = ? OR team_video_id IS NULL)", teamVideo.TeamID, teamVideo.ID).
		Order("team_video_id IS NULL").
		Limit(1).
		Find(&workflows).Error
	if err != nil {
		return nil, err
	}

	workflow := &models.Workflow{TeamID: teamVideo.TeamID}
	if len(workflows) > 0 {
		workflow = &workflows[0]
	}
	workflow.AllowsTasks = team.WorkflowEnabled
	return workflow, nil
}
