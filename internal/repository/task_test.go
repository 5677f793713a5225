//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"subtitles-backend/internal/database/models"
	"subtitles-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TaskRepositoryTestSuite tests the TaskRepository
type TaskRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *Store
	factories     *testutils.FactorySet
	teamVideo     *models.TeamVideo
}

// SetupSuite runs before all tests in the suite
func (suite *TaskRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TaskRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest creates a team video before each test
func (suite *TaskRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.store.Teams().Create(team))
	video := suite.factories.Video.Create()
	suite.Require().NoError(suite.store.Videos().Create(video))
	suite.teamVideo = suite.factories.Team.TeamVideo(team, video)
	suite.Require().NoError(suite.store.Teams().AddVideo(suite.teamVideo))
}

// TearDownTest runs after each test
func (suite *TaskRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TaskRepositoryTestSuite) createTask(task *models.Task) *models.Task {
	suite.Require().NoError(suite.store.Tasks().Create(task))
	return task
}

// TestIncompleteFilters tests that completed and deleted tasks are not open
func (suite *TaskRepositoryTestSuite) TestIncompleteFilters() {
	open := suite.createTask(suite.factories.Task.Create(suite.teamVideo, "en", models.TaskTypeReview))
	suite.createTask(suite.factories.Task.Completed(suite.teamVideo, "en", models.TaskTypeReview, uuid.New(), time.Now()))
	deleted := suite.factories.Task.Create(suite.teamVideo, "en", models.TaskTypeApprove)
	deleted.Deleted = true
	suite.createTask(deleted)
	suite.createTask(suite.factories.Task.Create(suite.teamVideo, "fr", models.TaskTypeTranslate))

	tasks, err := suite.store.Tasks().FindIncomplete(suite.teamVideo.ID, []string{"en"}, 0)
	suite.NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(open.ID, tasks[0].ID)

	exists, err := suite.store.Tasks().ExistsIncomplete(suite.teamVideo.ID, []string{"en", ""})
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.store.Tasks().ExistsIncomplete(suite.teamVideo.ID, []string{"de"})
	suite.NoError(err)
	suite.False(exists)
}

// TestFindIncompleteLimit tests the oldest-first order and the limit
func (suite *TaskRepositoryTestSuite) TestFindIncompleteLimit() {
	older := suite.factories.Task.Create(suite.teamVideo, "", models.TaskTypeSubtitle)
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.createTask(older)
	suite.createTask(suite.factories.Task.Create(suite.teamVideo, "en", models.TaskTypeReview))

	tasks, err := suite.store.Tasks().FindIncomplete(suite.teamVideo.ID, []string{"en", ""}, 1)
	suite.NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(older.ID, tasks[0].ID)
}

// TestRepointIncomplete tests moving open tasks onto a version
func (suite *TaskRepositoryTestSuite) TestRepointIncomplete() {
	unbound := suite.createTask(suite.factories.Task.Create(suite.teamVideo, "", models.TaskTypeSubtitle))
	done := suite.createTask(suite.factories.Task.Completed(suite.teamVideo, "en", models.TaskTypeSubtitle, uuid.New(), time.Now()))
	versionID := uuid.New()

	affected, err := suite.store.Tasks().RepointIncomplete(suite.teamVideo.ID, []string{"en", ""}, versionID, "en")
	suite.NoError(err)
	suite.Equal(int64(1), affected)

	task, err := suite.store.Tasks().GetByID(unbound.ID)
	suite.NoError(err)
	suite.Equal("en", task.Language)
	suite.Require().NotNil(task.SubtitleVersionID)
	suite.Equal(versionID, *task.SubtitleVersionID)

	task, err = suite.store.Tasks().GetByID(done.ID)
	suite.NoError(err)
	suite.Nil(task.SubtitleVersionID)
}

// TestFindPreviousAssignee tests that the latest completed task decides the assignee
func (suite *TaskRepositoryTestSuite) TestFindPreviousAssignee() {
	assignee, err := suite.store.Tasks().FindPreviousAssignee(suite.teamVideo.ID, "en", models.TaskTypeSubtitle)
	suite.NoError(err)
	suite.Nil(assignee)

	first, second := uuid.New(), uuid.New()
	suite.createTask(suite.factories.Task.Completed(suite.teamVideo, "en", models.TaskTypeSubtitle, first, time.Now().Add(-time.Hour)))
	suite.createTask(suite.factories.Task.Completed(suite.teamVideo, "en", models.TaskTypeSubtitle, second, time.Now()))
	suite.createTask(suite.factories.Task.Completed(suite.teamVideo, "en", models.TaskTypeReview, uuid.New(), time.Now().Add(time.Hour)))

	assignee, err = suite.store.Tasks().FindPreviousAssignee(suite.teamVideo.ID, "en", models.TaskTypeSubtitle)
	suite.NoError(err)
	suite.Require().NotNil(assignee)
	suite.Equal(second, *assignee)

	tasks, err := suite.store.Tasks().ListByTeamVideo(suite.teamVideo.ID)
	suite.NoError(err)
	suite.Len(tasks, 3)
}

// TestTaskRepositoryTestSuite runs the test suite
func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}
