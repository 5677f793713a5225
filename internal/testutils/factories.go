package testutils

import (
	"time"

	"subtitles-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique username
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username: "user-" + id.String()[:8],
		FullName: "Test User",
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// VideoFactory provides methods to create test Video data
type VideoFactory struct{}

// NewVideoFactory creates a new VideoFactory
func NewVideoFactory() *VideoFactory {
	return &VideoFactory{}
}

// Create creates a test Video whose primary audio language is English
func (f *VideoFactory) Create() *models.Video {
	return &models.Video{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:                    "Test Video",
		VideoURL:                 "http://www.youtube.com/watch?v=jbgWSF65aE0",
		PrimaryAudioLanguageCode: "en",
		AllowVideoURLsEdit:       true,
	}
}

// WithPrimaryLanguage sets the primary audio language of the video
func (f *VideoFactory) WithPrimaryLanguage(code string) *models.Video {
	video := f.Create()
	video.PrimaryAudioLanguageCode = code
	return video
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with tasks enabled
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "team-" + id.String()[:8],
		Description:     "A test team",
		WorkflowEnabled: true,
	}
}

// WithoutTasks creates a test Team whose workflow does not allow tasks
func (f *TeamFactory) WithoutTasks() *models.Team {
	team := f.Create()
	team.WorkflowEnabled = false
	return team
}

// TeamVideo wraps a video into a team, with the team attached
func (f *TeamFactory) TeamVideo(team *models.Team, video *models.Video) *models.TeamVideo {
	return &models.TeamVideo{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    team.ID,
		VideoID:   video.ID,
		Team:      team,
	}
}

// Member creates a membership of user in team with the given role
func (f *TeamFactory) Member(team *models.Team, user *models.User, role models.MemberRole) *models.TeamMember {
	return &models.TeamMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    team.ID,
		UserID:    user.ID,
		Role:      role,
	}
}

// Workflow creates a team-wide workflow with the given review and approve levels
func (f *TeamFactory) Workflow(team *models.Team, review, approve models.ModerationLevel) *models.Workflow {
	return &models.Workflow{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		TeamID:         team.ID,
		ReviewAllowed:  review,
		ApproveAllowed: approve,
		AllowsTasks:    team.WorkflowEnabled,
	}
}

// SubtitleFactory provides methods to create test subtitle languages and versions
type SubtitleFactory struct{}

// NewSubtitleFactory creates a new SubtitleFactory
func NewSubtitleFactory() *SubtitleFactory {
	return &SubtitleFactory{}
}

// Cues returns a small, well-formed cue list
func (f *SubtitleFactory) Cues() []models.Cue {
	return []models.Cue{
		{StartMs: 0, EndMs: 1500, Text: "Hello"},
		{StartMs: 1500, EndMs: 3000, Text: "world"},
	}
}

// Language creates an unsaved language of a video
func (f *SubtitleFactory) Language(video *models.Video, code string) *models.SubtitleLanguage {
	return &models.SubtitleLanguage{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		VideoID:      video.ID,
		LanguageCode: code,
	}
}

// Version creates an unsaved version of a language
func (f *SubtitleFactory) Version(language *models.SubtitleLanguage, number int, visibility models.Visibility) *models.SubtitleVersion {
	payload, _ := models.EncodeCues(f.Cues())
	return &models.SubtitleVersion{
		BaseModel:          models.BaseModel{ID: uuid.New()},
		VideoID:            language.VideoID,
		SubtitleLanguageID: language.ID,
		LanguageCode:       language.LanguageCode,
		VersionNumber:      number,
		Subtitles:          payload,
		Visibility:         visibility,
	}
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates an open task for a team video
func (f *TaskFactory) Create(teamVideo *models.TeamVideo, language string, taskType models.TaskType) *models.Task {
	return &models.Task{
		BaseModel:   models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		TeamID:      teamVideo.TeamID,
		TeamVideoID: teamVideo.ID,
		Language:    language,
		Type:        taskType,
	}
}

// Completed creates a task completed by assignee at the given time
func (f *TaskFactory) Completed(teamVideo *models.TeamVideo, language string, taskType models.TaskType, assignee uuid.UUID, at time.Time) *models.Task {
	task := f.Create(teamVideo, language, taskType)
	task.AssigneeID = &assignee
	task.CompletedAt = &at
	return task
}

// FactorySet provides access to all factories
type FactorySet struct {
	User     *UserFactory
	Video    *VideoFactory
	Team     *TeamFactory
	Subtitle *SubtitleFactory
	Task     *TaskFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Video:    NewVideoFactory(),
		Team:     NewTeamFactory(),
		Subtitle: NewSubtitleFactory(),
		Task:     NewTaskFactory(),
	}
}
