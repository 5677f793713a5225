package repository

import (
	"subtitles-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubtitleLanguageRepository handles database operations for subtitle languages
type SubtitleLanguageRepository struct {
	db *gorm.DB
}

// NewSubtitleLanguageRepository creates a new subtitle language repository
func NewSubtitleLanguageRepository(db *gorm.DB) *SubtitleLanguageRepository {
	return &SubtitleLanguageRepository{db: db}
}

// Create creates a new subtitle language
func (r *SubtitleLanguageRepository) Create(language *models.SubtitleLanguage) error {
	return r.db.Create(language).Error
}

// CreateIfAbsent inserts the language unless the video already has one with that code.
// On conflict nothing is written and the caller has to read the existing row back.
func (r *SubtitleLanguageRepository) CreateIfAbsent(language *models.SubtitleLanguage) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_id"}, {Name: "language_code"}},
		DoNothing: true,
	}).Create(language).Error
}

// Save inserts or updates a subtitle language
func (r *SubtitleLanguageRepository) Save(language *models.SubtitleLanguage) error {
	return r.db.Save(language).Error
}

// GetByVideoAndCode retrieves the language of a video by code
func (r *SubtitleLanguageRepository) GetByVideoAndCode(videoID uuid.UUID, languageCode string) (*models.SubtitleLanguage, error) {
	var language models.SubtitleLanguage
	err := r.db.First(&language, "video_id = ? AND language_code = ?", videoID, languageCode).Error
	if err != nil {
		return nil, err
	}
	return &language, nil
}

// GetByVideoAndCodeForUpdate is GetByVideoAndCode with a row lock held until the
// surrounding transaction ends. The lock is skipped on drivers without SELECT ... FOR UPDATE.
func (r *SubtitleLanguageRepository) GetByVideoAndCodeForUpdate(videoID uuid.UUID, languageCode string) (*models.SubtitleLanguage, error) {
	query := r.db
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var language models.SubtitleLanguage
	err := query.First(&language, "video_id = ? AND language_code = ?", videoID, languageCode).Error
	if err != nil {
		return nil, err
	}
	return &language, nil
}

// ListByVideo retrieves all languages of a video ordered by code
func (r *SubtitleLanguageRepository) ListByVideo(videoID uuid.UUID) ([]models.SubtitleLanguage, error) {
	var languages []models.SubtitleLanguage
	err := r.db.Where("video_id = ?", videoID).Order("language_code").Find(&languages).Error
	return languages, err
}
