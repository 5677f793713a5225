package repository

import (
	"context"

	"subtitles-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// VideoRepositoryInterface defines the interface for video repository operations
type VideoRepositoryInterface interface {
	Create(video *models.Video) error
	GetByID(id uuid.UUID) (*models.Video, error)
}

// TeamRepositoryInterface defines the interface for team, membership and workflow operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByName(name string) (*models.Team, error)
	AddMember(member *models.TeamMember) error
	GetMember(teamID, userID uuid.UUID) (*models.TeamMember, error)
	AddVideo(teamVideo *models.TeamVideo) error
	GetTeamVideoByVideoID(videoID uuid.UUID) (*models.TeamVideo, error)
	SaveWorkflow(workflow *models.Workflow) error
	GetWorkflow(teamVideo *models.TeamVideo) (*models.Workflow, error)
}

// SubtitleLanguageRepositoryInterface defines the interface for subtitle language operations
type SubtitleLanguageRepositoryInterface interface {
	Create(language *models.SubtitleLanguage) error
	CreateIfAbsent(language *models.SubtitleLanguage) error
	Save(language *models.SubtitleLanguage) error
	GetByVideoAndCode(videoID uuid.UUID, languageCode string) (*models.SubtitleLanguage, error)
	GetByVideoAndCodeForUpdate(videoID uuid.UUID, languageCode string) (*models.SubtitleLanguage, error)
	ListByVideo(videoID uuid.UUID) ([]models.SubtitleLanguage, error)
}

// SubtitleVersionRepositoryInterface defines the interface for subtitle version operations
type SubtitleVersionRepositoryInterface interface {
	Create(version *models.SubtitleVersion, parentIDs []uuid.UUID) error
	GetByVideoAndID(videoID, id uuid.UUID) (*models.SubtitleVersion, error)
	GetByCoordinate(videoID uuid.UUID, languageCode string, versionNumber int) (*models.SubtitleVersion, error)
	GetTip(languageID uuid.UUID) (*models.SubtitleVersion, error)
	MaxVersionNumber(languageID uuid.UUID) (int, error)
	ListByLanguage(languageID uuid.UUID) ([]models.SubtitleVersion, error)
	GetParents(id uuid.UUID) ([]models.SubtitleVersion, error)
	HasPublicSibling(languageID, excludeID uuid.UUID) (bool, error)
	AnyPublic(languageID uuid.UUID) (bool, error)
	UpdateVisibility(id uuid.UUID, visibility models.Visibility) error
	SetWorkflowOrigin(id uuid.UUID, origin models.WorkflowOrigin) (bool, error)
}

// TaskRepositoryInterface defines the interface for team task operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	FindIncomplete(teamVideoID uuid.UUID, languages []string, limit int) ([]models.Task, error)
	ExistsIncomplete(teamVideoID uuid.UUID, languages []string) (bool, error)
	RepointIncomplete(teamVideoID uuid.UUID, languages []string, versionID uuid.UUID, language string) (int64, error)
	FindPreviousAssignee(teamVideoID uuid.UUID, language string, taskType models.TaskType) (*uuid.UUID, error)
	ListByTeamVideo(teamVideoID uuid.UUID) ([]models.Task, error)
}

// StoreInterface groups the repositories behind one transaction boundary.
// Repositories returned from the store passed to fn share the transaction.
type StoreInterface interface {
	Users() UserRepositoryInterface
	Videos() VideoRepositoryInterface
	Teams() TeamRepositoryInterface
	Languages() SubtitleLanguageRepositoryInterface
	Versions() SubtitleVersionRepositoryInterface
	Tasks() TaskRepositoryInterface
	Transaction(ctx context.Context, fn func(tx StoreInterface) error) error
}
