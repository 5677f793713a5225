package service

import (
	"errors"
	"fmt"
	"time"

	"subtitles-backend/internal/database/models"
	apperrors "subtitles-backend/internal/errors"
	"subtitles-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubtitleQueryService serves read-only views of videos, languages and versions
type SubtitleQueryService struct {
	store       repository.StoreInterface
	permissions PermissionCheckerInterface
}

// NewSubtitleQueryService creates a new subtitle query service
func NewSubtitleQueryService(store repository.StoreInterface, permissions PermissionCheckerInterface) *SubtitleQueryService {
	return &SubtitleQueryService{
		store:       store,
		permissions: permissions,
	}
}

// SubtitleLanguageResponse represents a language of a video
type SubtitleLanguageResponse struct {
	ID                uuid.UUID `json:"id"`
	VideoID           uuid.UUID `json:"video_id"`
	LanguageCode      string    `json:"language_code"`
	SubtitlesComplete bool      `json:"subtitles_complete"`
	CreatedAt         string    `json:"created_at"`
}

// SubtitleVersionResponse represents one version of a language
type SubtitleVersionResponse struct {
	ID                      uuid.UUID    `json:"id"`
	VideoID                 uuid.UUID    `json:"video_id"`
	LanguageCode            string       `json:"language_code" example:"en"`
	VersionNumber           int          `json:"version_number" example:"1"`
	Subtitles               []models.Cue `json:"subtitles"`
	Title                   string       `json:"title"`
	Description             string       `json:"description"`
	AuthorID                *uuid.UUID   `json:"author_id,omitempty"`
	Visibility              string       `json:"visibility" example:"public"`
	VisibilityOverride      string       `json:"visibility_override" example:""`
	Public                  bool         `json:"public"`
	RollbackOfVersionNumber *int         `json:"rollback_of_version_number,omitempty"`
	WorkflowOrigin          string       `json:"workflow_origin,omitempty"`
	ParentIDs               []uuid.UUID  `json:"parent_ids"`
	CreatedAt               string       `json:"created_at"`
}

// VideoPermissionsResponse lists what a user may do with a video
type VideoPermissionsResponse struct {
	VideoID          uuid.UUID `json:"video_id"`
	CanEditVideoURLs bool      `json:"can_edit_video_urls"`
}

// NewSubtitleVersionResponse converts a version into its API form
func NewSubtitleVersionResponse(version *models.SubtitleVersion) (*SubtitleVersionResponse, error) {
	cues, err := version.Cues()
	if err != nil {
		return nil, err
	}
	parentIDs := version.ParentIDs
	if parentIDs == nil {
		parentIDs = []uuid.UUID{}
	}
	return &SubtitleVersionResponse{
		ID:                      version.ID,
		VideoID:                 version.VideoID,
		LanguageCode:            version.LanguageCode,
		VersionNumber:           version.VersionNumber,
		Subtitles:               cues,
		Title:                   version.Title,
		Description:             version.Description,
		AuthorID:                version.AuthorID,
		Visibility:              string(version.Visibility),
		VisibilityOverride:      string(version.VisibilityOverride),
		Public:                  version.IsPublic(),
		RollbackOfVersionNumber: version.RollbackOfVersionNumber,
		WorkflowOrigin:          string(version.WorkflowOrigin),
		ParentIDs:               parentIDs,
		CreatedAt:               version.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ListLanguages lists the languages of a video ordered by code
func (s *SubtitleQueryService) ListLanguages(videoID uuid.UUID) ([]SubtitleLanguageResponse, error) {
	if _, err := loadVideo(s.store, videoID); err != nil {
		return nil, err
	}

	languages, err := s.store.Languages().ListByVideo(videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subtitle languages: %w", err)
	}

	responses := make([]SubtitleLanguageResponse, len(languages))
	for i, language := range languages {
		responses[i] = SubtitleLanguageResponse{
			ID:                language.ID,
			VideoID:           language.VideoID,
			LanguageCode:      language.LanguageCode,
			SubtitlesComplete: language.SubtitlesComplete,
			CreatedAt:         language.CreatedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

// ListVersions lists every version of a language, oldest first
func (s *SubtitleQueryService) ListVersions(videoID uuid.UUID, languageCode string) ([]SubtitleVersionResponse, error) {
	language, err := s.store.Languages().GetByVideoAndCode(videoID, languageCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrSubtitleLanguageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load subtitle language: %w", err)
	}

	versions, err := s.store.Versions().ListByLanguage(language.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subtitle versions: %w", err)
	}

	responses := make([]SubtitleVersionResponse, 0, len(versions))
	for i := range versions {
		response, err := NewSubtitleVersionResponse(&versions[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

// GetVersion returns one version with its parents
func (s *SubtitleQueryService) GetVersion(videoID uuid.UUID, languageCode string, versionNumber int) (*SubtitleVersionResponse, error) {
	version, err := s.store.Versions().GetByCoordinate(videoID, languageCode, versionNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrSubtitleVersionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load subtitle version: %w", err)
	}

	parents, err := s.store.Versions().GetParents(version.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load parents: %w", err)
	}
	version.ParentIDs = make([]uuid.UUID, len(parents))
	for i, parent := range parents {
		version.ParentIDs[i] = parent.ID
	}

	return NewSubtitleVersionResponse(version)
}

// GetVideoPermissions reports what userID may do with a video. A nil user is anonymous.
func (s *SubtitleQueryService) GetVideoPermissions(videoID uuid.UUID, userID *uuid.UUID) (*VideoPermissionsResponse, error) {
	video, err := loadVideo(s.store, videoID)
	if err != nil {
		return nil, err
	}

	canEdit, err := s.permissions.CanUserEditVideoURLs(s.store.Teams(), video, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check video permissions: %w", err)
	}
	return &VideoPermissionsResponse{VideoID: video.ID, CanEditVideoURLs: canEdit}, nil
}
