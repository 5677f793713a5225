// Package permissions holds the team rules that decide who may publish subtitles
// and who may change a video's URLs.
package permissions

import (
	"errors"
	"fmt"

	"subtitles-backend/internal/database/models"
	"subtitles-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Checker evaluates permissions against team membership and workflow settings
type Checker struct{}

// NewChecker creates a new permission checker
func NewChecker() *Checker {
	return &Checker{}
}

// CanPublishEditsImmediately reports whether edits by userID go live without review.
// A nil user is a trusted caller and always may. Otherwise the member's role has to
// meet the approve level when approval is required, else the review level when
// review is required; with neither, every member may publish.
func (c *Checker) CanPublishEditsImmediately(teams repository.TeamRepositoryInterface, teamVideo *models.TeamVideo,
	userID *uuid.UUID, languageCode string) (bool, error) {
	if userID == nil {
		return true, nil
	}

	member, err := c.member(teams, teamVideo.TeamID, *userID)
	if err != nil || member == nil {
		return false, err
	}

	workflow, err := teams.GetWorkflow(teamVideo)
	if err != nil {
		return false, fmt.Errorf("failed to load workflow: %w", err)
	}

	switch {
	case workflow.ApproveEnabled():
		return workflow.ApproveAllowed.Permits(member.Role), nil
	case workflow.ReviewEnabled():
		return workflow.ReviewAllowed.Permits(member.Role), nil
	}
	return true, nil
}

// CanUserEditVideoURLs reports whether userID may add or change URLs of a video.
// Videos outside any team follow their own flag; team videos need a manager.
func (c *Checker) CanUserEditVideoURLs(teams repository.TeamRepositoryInterface, video *models.Video, userID *uuid.UUID) (bool, error) {
	teamVideo, err := teams.GetTeamVideoByVideoID(video.ID)
	if err != nil {
		return false, fmt.Errorf("failed to load team video: %w", err)
	}
	if teamVideo == nil {
		return video.AllowVideoURLsEdit, nil
	}
	if userID == nil {
		return false, nil
	}

	member, err := c.member(teams, teamVideo.TeamID, *userID)
	if err != nil || member == nil {
		return false, err
	}
	return member.Role.AtLeast(models.MemberRoleManager), nil
}

// member returns nil without error when the user is not in the team
func (c *Checker) member(teams repository.TeamRepositoryInterface, teamID, userID uuid.UUID) (*models.TeamMember, error) {
	member, err := teams.GetMember(teamID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load team member: %w", err)
	}
	return member, nil
}
