package repository

import (
	"subtitles-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoRepository handles database operations for videos
type VideoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create creates a new video
func (r *VideoRepository) Create(video *models.Video) error {
	return r.db.Create(video).Error
}

// GetByID retrieves a video by ID
func (r *VideoRepository) GetByID(id uuid.UUID) (*models.Video, error) {
	var video models.Video
	err := r.db.First(&video, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}
