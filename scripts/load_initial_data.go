package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"subtitles-backend/internal/config"
	"subtitles-backend/internal/database"
	"subtitles-backend/internal/database/models"
	apperrors "subtitles-backend/internal/errors"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Username string `yaml:"username"`
	FullName string `yaml:"full_name"`
}

type MemberData struct {
	Username string `yaml:"username"`
	Role     string `yaml:"role"`
}

type WorkflowData struct {
	ReviewAllowed  string `yaml:"review_allowed"`
	ApproveAllowed string `yaml:"approve_allowed"`
}

type TeamData struct {
	Name            string        `yaml:"name"`
	Description     string        `yaml:"description"`
	WorkflowEnabled bool          `yaml:"workflow_enabled"`
	Workflow        *WorkflowData `yaml:"workflow,omitempty"`
	Members         []MemberData  `yaml:"members,omitempty"`
}

type VideoData struct {
	Title                    string `yaml:"title"`
	VideoURL                 string `yaml:"video_url"`
	PrimaryAudioLanguageCode string `yaml:"primary_audio_language_code"`
	AllowVideoURLsEdit       *bool  `yaml:"allow_video_urls_edit,omitempty"`
	TeamName                 string `yaml:"team_name,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type VideosFile struct {
	Videos []VideoData `yaml:"videos"`
}

var moderationLevels = map[string]models.ModerationLevel{
	"":        models.ModerationNone,
	"none":    models.ModerationNone,
	"peer":    models.ModerationPeer,
	"manager": models.ModerationManager,
	"admin":   models.ModerationAdmin,
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var users []UserData
	if err := walkYAML(dataDir, "users", func(f UsersFile) { users = append(users, f.Users...) }); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var teams []TeamData
	if err := walkYAML(dataDir, "teams", func(f TeamsFile) { teams = append(teams, f.Teams...) }); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	var videos []VideoData
	if err := walkYAML(dataDir, "videos", func(f VideosFile) { videos = append(videos, f.Videos...) }); err != nil {
		return fmt.Errorf("failed to load videos: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		userMap := make(map[string]*models.User)
		userCreated := 0
		for _, userData := range users {
			user, created, err := createUser(tx, userData)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
			}
			userMap[userData.Username] = user
			if created {
				userCreated++
			}
		}
		log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

		teamMap := make(map[string]*models.Team)
		teamCreated := 0
		for _, teamData := range teams {
			team, created, err := createTeam(tx, teamData, userMap)
			if err != nil {
				return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
			}
			teamMap[teamData.Name] = team
			if created {
				teamCreated++
			}
		}
		log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

		videoCreated := 0
		for _, videoData := range videos {
			created, err := createVideo(tx, videoData, teamMap)
			if err != nil {
				return fmt.Errorf("failed to create video %s: %w", videoData.VideoURL, err)
			}
			if created {
				videoCreated++
			}
		}
		log.Printf("📋 Videos: %d created, %d total", videoCreated, len(videos))

		return nil
	})
}

// walkYAML decodes every .yaml file under dataDir whose path mentions kind
func walkYAML[F any](dataDir, kind string, collect func(F)) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file F
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		collect(file)
		return nil
	})
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	err := db.Where("username = ?", userData.Username).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	user = models.User{Username: userData.Username, FullName: userData.FullName}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

func createTeam(db *gorm.DB, teamData TeamData, userMap map[string]*models.User) (*models.Team, bool, error) {
	var team models.Team
	created := false
	err := db.Where("name = ?", teamData.Name).First(&team).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		team = models.Team{
			Name:            teamData.Name,
			Description:     teamData.Description,
			WorkflowEnabled: teamData.WorkflowEnabled,
		}
		if err := db.Create(&team).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create team: %w", err)
		}
		created = true
	case err != nil:
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	for _, memberData := range teamData.Members {
		if err := addMember(db, &team, memberData, userMap); err != nil {
			return nil, false, err
		}
	}
	if teamData.Workflow != nil {
		if err := ensureWorkflow(db, &team, *teamData.Workflow); err != nil {
			return nil, false, err
		}
	}
	return &team, created, nil
}

func addMember(db *gorm.DB, team *models.Team, memberData MemberData, userMap map[string]*models.User) error {
	user := userMap[memberData.Username]
	if user == nil {
		return fmt.Errorf("member %s of team %s: %w", memberData.Username, team.Name, apperrors.ErrUserNotFound)
	}
	role := models.MemberRole(memberData.Role)
	if role == "" {
		role = models.MemberRoleContributor
	}
	if !role.IsValid() {
		return fmt.Errorf("invalid role %q for %s", memberData.Role, memberData.Username)
	}

	var member models.TeamMember
	err := db.Where("team_id = ? AND user_id = ?", team.ID, user.ID).First(&member).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to query team member: %w", err)
	}
	member = models.TeamMember{TeamID: team.ID, UserID: user.ID, Role: role}
	if err := db.Create(&member).Error; err != nil {
		return fmt.Errorf("failed to add %s to team %s: %w", memberData.Username, team.Name, err)
	}
	return nil
}

func ensureWorkflow(db *gorm.DB, team *models.Team, workflowData WorkflowData) error {
	review, ok := moderationLevels[workflowData.ReviewAllowed]
	if !ok {
		return fmt.Errorf("invalid review level %q for team %s", workflowData.ReviewAllowed, team.Name)
	}
	approve, ok := moderationLevels[workflowData.ApproveAllowed]
	if !ok {
		return fmt.Errorf("invalid approve level %q for team %s", workflowData.ApproveAllowed, team.Name)
	}

	var workflow models.Workflow
	err := db.Where("team_id = ? AND team_video_id IS NULL", team.ID).First(&workflow).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to query workflow: %w", err)
	}
	workflow = models.Workflow{TeamID: team.ID, ReviewAllowed: review, ApproveAllowed: approve}
	if err := db.Create(&workflow).Error; err != nil {
		return fmt.Errorf("failed to create workflow for team %s: %w", team.Name, err)
	}
	return nil
}

func createVideo(db *gorm.DB, videoData VideoData, teamMap map[string]*models.Team) (bool, error) {
	var video models.Video
	created := false
	err := db.Where("video_url = ?", videoData.VideoURL).First(&video).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		allowEdit := true
		if videoData.AllowVideoURLsEdit != nil {
			allowEdit = *videoData.AllowVideoURLsEdit
		}
		video = models.Video{
			Title:                    videoData.Title,
			VideoURL:                 videoData.VideoURL,
			PrimaryAudioLanguageCode: videoData.PrimaryAudioLanguageCode,
			AllowVideoURLsEdit:       allowEdit,
		}
		if err := db.Create(&video).Error; err != nil {
			return false, fmt.Errorf("failed to create video: %w", err)
		}
		created = true
	case err != nil:
		return false, fmt.Errorf("failed to query video: %w", err)
	}

	if videoData.TeamName == "" {
		return created, nil
	}
	team := teamMap[videoData.TeamName]
	if team == nil {
		return false, fmt.Errorf("team %s of video %s: %w", videoData.TeamName, videoData.VideoURL, apperrors.ErrTeamNotFound)
	}

	var teamVideo models.TeamVideo
	err = db.Where("video_id = ?", video.ID).First(&teamVideo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		teamVideo = models.TeamVideo{TeamID: team.ID, VideoID: video.ID}
		if err := db.Create(&teamVideo).Error; err != nil {
			return false, fmt.Errorf("failed to add video to team %s: %w", team.Name, err)
		}
		return created, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query team video: %w", err)
	}
	return created, nil
}
