package service

import (
	"context"
	"fmt"

	"subtitles-backend/internal/database/models"
	"subtitles-backend/internal/logger"
	"subtitles-backend/internal/repository"

	"github.com/google/uuid"
)

// anyLanguage is the language of tasks that are not bound to one yet
const anyLanguage = ""

// workflowState is everything the visibility and task decision depends on
type workflowState struct {
	AllowsTasks         bool
	ReviewEnabled       bool
	ApproveEnabled      bool
	CanBypassModeration bool
	HasOutstandingTasks bool
	VersionPublic       bool
	Complete            bool
	PrimaryLanguage     bool
}

// workflowPlan lists the writes the reconciler performs. A zero CreateTask means no task.
type workflowPlan struct {
	MakePrivate  bool
	RepointTasks bool
	CreateTask   models.TaskType
}

// planWorkflow is the decision table for team videos. Outstanding tasks follow the
// version only when it is not public after the visibility step.
func planWorkflow(s workflowState) workflowPlan {
	var plan workflowPlan
	if !s.AllowsTasks {
		return plan
	}

	if !s.CanBypassModeration && (s.ReviewEnabled || s.ApproveEnabled) {
		plan.MakePrivate = true
	}
	public := s.VersionPublic && !plan.MakePrivate

	if s.HasOutstandingTasks {
		plan.RepointTasks = !public
		return plan
	}
	if s.CanBypassModeration {
		return plan
	}

	switch {
	case s.Complete && s.ReviewEnabled:
		plan.CreateTask = models.TaskTypeReview
	case s.Complete && s.ApproveEnabled:
		plan.CreateTask = models.TaskTypeApprove
	case s.Complete:
		// complete and unmoderated, nothing to do
	case s.PrimaryLanguage:
		plan.CreateTask = models.TaskTypeSubtitle
	default:
		plan.CreateTask = models.TaskTypeTranslate
	}
	return plan
}

// reconcileWorkflow applies team moderation to a freshly written version.
// It does nothing for videos that no team owns.
func (p *Pipeline) reconcileWorkflow(ctx context.Context, tx repository.StoreInterface, video *models.Video,
	language *models.SubtitleLanguage, version *models.SubtitleVersion, committer Optional[uuid.UUID], complete Optional[bool]) error {
	teamVideo, err := tx.Teams().GetTeamVideoByVideoID(video.ID)
	if err != nil {
		return fmt.Errorf("failed to load team video: %w", err)
	}
	if teamVideo == nil {
		return nil
	}

	if err := recordWorkflowOrigin(tx.Tasks(), tx.Versions(), teamVideo, version); err != nil {
		return err
	}

	workflow, err := tx.Teams().GetWorkflow(teamVideo)
	if err != nil {
		return fmt.Errorf("failed to load workflow: %w", err)
	}
	if !workflow.AllowsTasks {
		return nil
	}

	canBypass, err := p.canBypassModeration(tx, teamVideo, language, version, committer)
	if err != nil {
		return err
	}
	outstanding, err := tx.Tasks().ExistsIncomplete(teamVideo.ID, []string{language.LanguageCode, anyLanguage})
	if err != nil {
		return fmt.Errorf("failed to check outstanding tasks: %w", err)
	}

	state := workflowState{
		AllowsTasks:         workflow.AllowsTasks,
		ReviewEnabled:       workflow.ReviewEnabled(),
		ApproveEnabled:      workflow.ApproveEnabled(),
		CanBypassModeration: canBypass,
		HasOutstandingTasks: outstanding,
		VersionPublic:       version.Visibility == models.VisibilityPublic,
		Complete:            complete.OrElse(false),
		PrimaryLanguage:     language.LanguageCode == video.PrimaryAudioLanguageCode,
	}
	plan := planWorkflow(state)

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_video_id":  teamVideo.ID,
		"language":       language.LanguageCode,
		"version_number": version.VersionNumber,
	})
	log.Debugf("Workflow plan %+v for state %+v", plan, state)

	return applyWorkflowPlan(tx, log, plan, teamVideo, version, committer)
}

// recordWorkflowOrigin tags the version with the type of the task that is open for its
// language. An origin that is already recorded is never replaced.
func recordWorkflowOrigin(tasks repository.TaskRepositoryInterface, versions repository.SubtitleVersionRepositoryInterface,
	teamVideo *models.TeamVideo, version *models.SubtitleVersion) error {
	if version.WorkflowOrigin != models.WorkflowOriginNone {
		return nil
	}

	open, err := tasks.FindIncomplete(teamVideo.ID, []string{version.LanguageCode}, 1)
	if err != nil {
		return fmt.Errorf("failed to find open tasks: %w", err)
	}
	if len(open) == 0 {
		return nil
	}
	origin := open[0].Type.WorkflowOrigin()
	if origin == models.WorkflowOriginNone {
		return nil
	}

	changed, err := versions.SetWorkflowOrigin(version.ID, origin)
	if err != nil {
		return fmt.Errorf("failed to record workflow origin: %w", err)
	}
	if changed {
		version.WorkflowOrigin = origin
	}
	return nil
}

// canBypassModeration holds for complete subtitles that were already published once,
// edited by someone allowed to publish directly
func (p *Pipeline) canBypassModeration(tx repository.StoreInterface, teamVideo *models.TeamVideo,
	language *models.SubtitleLanguage, version *models.SubtitleVersion, committer Optional[uuid.UUID]) (bool, error) {
	if !language.SubtitlesComplete {
		return false, nil
	}

	postPublishEdit, err := tx.Versions().HasPublicSibling(language.ID, version.ID)
	if err != nil {
		return false, fmt.Errorf("failed to check public versions: %w", err)
	}
	if !postPublishEdit {
		return false, nil
	}

	allowed, err := p.permissions.CanPublishEditsImmediately(tx.Teams(), teamVideo, committer.Ptr(), language.LanguageCode)
	if err != nil {
		return false, fmt.Errorf("failed to check publish permission: %w", err)
	}
	return allowed, nil
}

func applyWorkflowPlan(tx repository.StoreInterface, log *logger.Logger, plan workflowPlan, teamVideo *models.TeamVideo,
	version *models.SubtitleVersion, committer Optional[uuid.UUID]) error {
	if plan.MakePrivate {
		if err := tx.Versions().UpdateVisibility(version.ID, models.VisibilityPrivate); err != nil {
			return fmt.Errorf("failed to hide subtitle version: %w", err)
		}
		version.Visibility = models.VisibilityPrivate
		log.Info("Subtitle version held back for moderation")
	}

	if plan.RepointTasks {
		n, err := tx.Tasks().RepointIncomplete(teamVideo.ID, []string{version.LanguageCode, anyLanguage}, version.ID, version.LanguageCode)
		if err != nil {
			return fmt.Errorf("failed to update outstanding tasks: %w", err)
		}
		log.Infof("Moved %d outstanding tasks to the new version", n)
	}

	if plan.CreateTask == 0 {
		return nil
	}

	task := &models.Task{
		TeamID:            teamVideo.TeamID,
		TeamVideoID:       teamVideo.ID,
		Language:          version.LanguageCode,
		Type:              plan.CreateTask,
		SubtitleVersionID: &version.ID,
	}
	switch plan.CreateTask {
	case models.TaskTypeSubtitle, models.TaskTypeTranslate:
		task.AssigneeID = committer.Ptr()
	default:
		assignee, err := tx.Tasks().FindPreviousAssignee(teamVideo.ID, version.LanguageCode, plan.CreateTask)
		if err != nil {
			return fmt.Errorf("failed to find previous assignee: %w", err)
		}
		task.AssigneeID = assignee
	}

	if err := tx.Tasks().Create(task); err != nil {
		return fmt.Errorf("failed to create %s task: %w", plan.CreateTask, err)
	}
	log.WithField("task_type", plan.CreateTask.String()).Info("Created task for subtitle version")
	return nil
}
