package service

import (
	"context"

	"subtitles-backend/internal/database/models"
	"subtitles-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PermissionCheckerInterface answers the team permission questions the pipeline and
// the read side need. Checks run against the given team repository so they can see
// writes of an open transaction.
type PermissionCheckerInterface interface {
	CanPublishEditsImmediately(teams repository.TeamRepositoryInterface, teamVideo *models.TeamVideo, userID *uuid.UUID, languageCode string) (bool, error)
	CanUserEditVideoURLs(teams repository.TeamRepositoryInterface, video *models.Video, userID *uuid.UUID) (bool, error)
}

// SubtitlePipelineInterface defines the write path for subtitle versions
type SubtitlePipelineInterface interface {
	AddSubtitles(ctx context.Context, req *AddSubtitlesRequest) (*models.SubtitleVersion, error)
	UnsafeAddSubtitles(ctx context.Context, req *AddSubtitlesRequest) (*models.SubtitleVersion, error)
	RollbackTo(ctx context.Context, req *RollbackRequest) (*models.SubtitleVersion, error)
	UnsafeRollbackTo(ctx context.Context, req *RollbackRequest) (*models.SubtitleVersion, error)
}

// SubtitleQueryServiceInterface defines the read side for subtitles
type SubtitleQueryServiceInterface interface {
	ListLanguages(videoID uuid.UUID) ([]SubtitleLanguageResponse, error)
	ListVersions(videoID uuid.UUID, languageCode string) ([]SubtitleVersionResponse, error)
	GetVersion(videoID uuid.UUID, languageCode string, versionNumber int) (*SubtitleVersionResponse, error)
	GetVideoPermissions(videoID uuid.UUID, userID *uuid.UUID) (*VideoPermissionsResponse, error)
}
