package service

import (
	"errors"
	"fmt"

	"subtitles-backend/internal/database/models"
	apperrors "subtitles-backend/internal/errors"
	"subtitles-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type parentKind int

const (
	parentInvalid parentKind = iota
	parentByVersion
	parentByCoordinate
)

// ParentRef identifies an extra parent of a new version, either by version id or by
// (language code, version number). The zero ParentRef is invalid.
type ParentRef struct {
	kind          parentKind
	versionID     uuid.UUID
	languageCode  string
	versionNumber int
}

// ParentByVersion references a version of the same video by id
func ParentByVersion(id uuid.UUID) ParentRef {
	return ParentRef{kind: parentByVersion, versionID: id}
}

// ParentByCoordinate references a version of the same video by language and number
func ParentByCoordinate(languageCode string, versionNumber int) ParentRef {
	return ParentRef{kind: parentByCoordinate, languageCode: languageCode, versionNumber: versionNumber}
}

func (r ParentRef) String() string {
	switch r.kind {
	case parentByVersion:
		return "version " + r.versionID.String()
	case parentByCoordinate:
		return fmt.Sprintf("%s/%d", r.languageCode, r.versionNumber)
	}
	return "invalid parent"
}

func (r ParentRef) validate() error {
	switch r.kind {
	case parentByVersion:
		if r.versionID == uuid.Nil {
			return apperrors.NewValidationError("parents", "version id must not be empty")
		}
	case parentByCoordinate:
		if r.languageCode == "" || r.versionNumber < 1 {
			return apperrors.NewValidationError("parents", "language code and a positive version number are required")
		}
	default:
		return apperrors.NewValidationError("parents", "cannot look up a version from this parent reference")
	}
	return nil
}

// resolve loads the referenced version. A version of another video counts as missing.
func (r ParentRef) resolve(versions repository.SubtitleVersionRepositoryInterface, videoID uuid.UUID) (*models.SubtitleVersion, error) {
	var (
		version *models.SubtitleVersion
		err     error
	)
	switch r.kind {
	case parentByVersion:
		version, err = versions.GetByVideoAndID(videoID, r.versionID)
	case parentByCoordinate:
		version, err = versions.GetByCoordinate(videoID, r.languageCode, r.versionNumber)
	default:
		return nil, r.validate()
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrSubtitleVersionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load parent %s: %w", r, err)
	}
	return version, nil
}
