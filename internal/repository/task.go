package repository

import (
	"subtitles-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for team tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) incomplete(teamVideoID uuid.UUID, languages []string) *gorm.DB {
	return r.db.Model(&models.Task{}).
		Where("team_video_id = ? AND completed_at IS NULL AND deleted = ?", teamVideoID, false).
		Where("language IN ?", languages)
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindIncomplete retrieves open tasks of a team video in the given languages, oldest first.
// A limit of 0 means no limit.
func (r *TaskRepository) FindIncomplete(teamVideoID uuid.UUID, languages []string, limit int) ([]models.Task, error) {
	var tasks []models.Task
	query := r.incomplete(teamVideoID, languages).Order("created_at")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&tasks).Error
	return tasks, err
}

// ExistsIncomplete reports whether any open task matches
func (r *TaskRepository) ExistsIncomplete(teamVideoID uuid.UUID, languages []string) (bool, error) {
	var count int64
	err := r.incomplete(teamVideoID, languages).Count(&count).Error
	return count > 0, err
}

// RepointIncomplete moves every matching open task onto a version and language in one UPDATE
func (r *TaskRepository) RepointIncomplete(teamVideoID uuid.UUID, languages []string, versionID uuid.UUID, language string) (int64, error) {
	result := r.incomplete(teamVideoID, languages).UpdateColumns(map[string]interface{}{
		"subtitle_version_id": versionID,
		"language":            language,
	})
	return result.RowsAffected, result.Error
}

// FindPreviousAssignee returns the assignee of the most recently completed task of the
// given type for the language, or nil when nobody has done one
func (r *TaskRepository) FindPreviousAssignee(teamVideoID uuid.UUID, language string, taskType models.TaskType) (*uuid.UUID, error) {
	var tasks []models.Task
	err := r.db.
		Where("team_video_id = ? AND language = ? AND type = ?", teamVideoID, language, taskType).
		Where("completed_at IS NOT NULL AND deleted = ? AND assignee_id IS NOT NULL", false).
		Order("completed_at DESC").
		Limit(1).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, nil
	}
	return tasks[0].AssigneeID, nil
}

// ListByTeamVideo retrieves all tasks of a team video, oldest first
func (r *TaskRepository) ListByTeamVideo(teamVideoID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("team_video_id = ?", teamVideoID).Order("created_at").Find(&tasks).Error
	return tasks, err
}
