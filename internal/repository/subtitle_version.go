package repository

import (
	"subtitles-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// publicCondition matches versions that are visible to everyone, honouring the override
const publicCondition = "(visibility_override = 'public' OR (visibility_override = '' AND visibility = 'public'))"

// SubtitleVersionRepository handles database operations for subtitle versions
type SubtitleVersionRepository struct {
	db *gorm.DB
}

// NewSubtitleVersionRepository creates a new subtitle version repository
func NewSubtitleVersionRepository(db *gorm.DB) *SubtitleVersionRepository {
	return &SubtitleVersionRepository{db: db}
}

// Create inserts a version and its ordered parent links
func (r *SubtitleVersionRepository) Create(version *models.SubtitleVersion, parentIDs []uuid.UUID) error {
	if err := r.db.Create(version).Error; err != nil {
		return err
	}
	if len(parentIDs) == 0 {
		return nil
	}

	links := make([]models.SubtitleVersionParent, 0, len(parentIDs))
	for i, parentID := range parentIDs {
		links = append(links, models.SubtitleVersionParent{
			VersionID: version.ID,
			ParentID:  parentID,
			Position:  i,
		})
	}
	return r.db.Create(&links).Error
}

// GetByVideoAndID retrieves a version by ID, scoped to a video
func (r *SubtitleVersionRepository) GetByVideoAndID(videoID, id uuid.UUID) (*models.SubtitleVersion, error) {
	var version models.SubtitleVersion
	err := r.db.First(&version, "video_id = ? AND id = ?", videoID, id).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// GetByCoordinate retrieves a version by (video, language code, version number)
func (r *SubtitleVersionRepository) GetByCoordinate(videoID uuid.UUID, languageCode string, versionNumber int) (*models.SubtitleVersion, error) {
	var version models.SubtitleVersion
	err := r.db.First(&version, "video_id = ? AND language_code = ? AND version_number = ?",
		videoID, languageCode, versionNumber).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// GetTip returns the highest-numbered version of a language, or nil when it has none
func (r *SubtitleVersionRepository) GetTip(languageID uuid.UUID) (*models.SubtitleVersion, error) {
	var versions []models.SubtitleVersion
	err := r.db.Where("subtitle_language_id = ?", languageID).
		Order("version_number DESC").
		Limit(1).
		Find(&versions).Error
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, nil
	}
	return &versions[0], nil
}

// MaxVersionNumber returns the highest version number of a language, 0 when it has none
func (r *SubtitleVersionRepository) MaxVersionNumber(languageID uuid.UUID) (int, error) {
	var maxNumber int
	err := r.db.Model(&models.SubtitleVersion{}).
		Where("subtitle_language_id = ?", languageID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&maxNumber).Error
	return maxNumber, err
}

// ListByLanguage retrieves the full sibling set of a language in version order
func (r *SubtitleVersionRepository) ListByLanguage(languageID uuid.UUID) ([]models.SubtitleVersion, error) {
	var versions []models.SubtitleVersion
	err := r.db.Where("subtitle_language_id = ?", languageID).Order("version_number").Find(&versions).Error
	return versions, err
}

// GetParents retrieves the parents of a version in their recorded order
func (r *SubtitleVersionRepository) GetParents(id uuid.UUID) ([]models.SubtitleVersion, error) {
	var parents []models.SubtitleVersion
	err := r.db.
		Select("subtitle_versions.*").
		Joins("JOIN subtitle_version_parents p ON p.parent_id = subtitle_versions.id").
		Where("p.version_id = ?", id).
		Order("p.position").
		Find(&parents).Error
	return parents, err
}

// HasPublicSibling reports whether any other version of the language is public
func (r *SubtitleVersionRepository) HasPublicSibling(languageID, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.SubtitleVersion{}).
		Where("subtitle_language_id = ? AND id <> ?", languageID, excludeID).
		Where(publicCondition).
		Count(&count).Error
	return count > 0, err
}

// AnyPublic reports whether any version of the language is public
func (r *SubtitleVersionRepository) AnyPublic(languageID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.SubtitleVersion{}).
		Where("subtitle_language_id = ?", languageID).
		Where(publicCondition).
		Count(&count).Error
	return count > 0, err
}

// UpdateVisibility changes only the visibility column of a version
func (r *SubtitleVersionRepository) UpdateVisibility(id uuid.UUID, visibility models.Visibility) error {
	return r.db.Model(&models.SubtitleVersion{}).
		Where("id = ?", id).
		UpdateColumn("visibility", visibility).Error
}

// SetWorkflowOrigin records the origin only if none is recorded yet.
// It reports whether the row was changed.
func (r *SubtitleVersionRepository) SetWorkflowOrigin(id uuid.UUID, origin models.WorkflowOrigin) (bool, error) {
	result := r.db.Model(&models.SubtitleVersion{}).
		Where("id = ? AND workflow_origin = ''", id).
		UpdateColumn("workflow_origin", origin)
	return result.RowsAffected > 0, result.Error
}
