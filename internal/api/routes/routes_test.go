package routes_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"subtitles-backend/internal/api/middleware"
	"subtitles-backend/internal/api/routes"
	"subtitles-backend/internal/config"
	"subtitles-backend/internal/database"
	"subtitles-backend/internal/database/models"
	"subtitles-backend/internal/repository"
	"subtitles-backend/internal/service"
	"subtitles-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{Driver: database.DriverSQLite})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestSubtitleRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupDB(t)
	router := routes.SetupRoutes(db, &config.Config{AllowedOrigins: []string{"http://localhost:3000"}})
	httpSuite := &testutils.HTTPTestSuite{Router: router}

	factories := testutils.NewFactorySet()
	video := factories.Video.Create()
	require.NoError(t, repository.NewStore(db).Videos().Create(video))
	base := "/api/v1/videos/" + video.ID.String()
	user := testutils.AsUser(uuid.New())

	var first service.SubtitleVersionResponse
	recorder := httpSuite.MakeRequestWithHeaders(http.MethodPost, base+"/languages/en/subtitles",
		map[string]interface{}{"subtitles": factories.Subtitle.Cues(), "title": "Intro"}, user)
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &first)
	assert.Equal(t, 1, first.VersionNumber)
	assert.NotEmpty(t, recorder.Header().Get(middleware.RequestIDHeader))

	var second service.SubtitleVersionResponse
	recorder = httpSuite.MakeRequestWithHeaders(http.MethodPost, base+"/languages/en/subtitles",
		map[string]interface{}{"subtitles": []interface{}{}}, user)
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &second)
	assert.Equal(t, 2, second.VersionNumber)
	assert.Equal(t, []uuid.UUID{first.ID}, second.ParentIDs)

	var rollback service.SubtitleVersionResponse
	recorder = httpSuite.MakeRequestWithHeaders(http.MethodPost, base+"/languages/en/rollback",
		map[string]interface{}{"version_number": 1}, user)
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &rollback)
	assert.Equal(t, 3, rollback.VersionNumber)
	assert.Equal(t, "Intro", rollback.Title)
	assert.Equal(t, factories.Subtitle.Cues(), rollback.Subtitles)

	var versions []service.SubtitleVersionResponse
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, base+"/languages/en/versions", nil), http.StatusOK, &versions)
	assert.Len(t, versions, 3)

	var version service.SubtitleVersionResponse
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, base+"/languages/en/versions/3", nil), http.StatusOK, &version)
	assert.Equal(t, []uuid.UUID{second.ID}, version.ParentIDs)

	var permissions service.VideoPermissionsResponse
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, base+"/permissions", nil), http.StatusOK, &permissions)
	assert.True(t, permissions.CanEditVideoURLs)

	recorder = httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/videos/"+uuid.NewString()+"/languages/en/subtitles",
		map[string]interface{}{"subtitles": []interface{}{}}, user)
	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "video not found")

	recorder = httpSuite.MakeRequestWithHeaders(http.MethodGet, base+"/permissions", nil,
		map[string]string{middleware.UserIDHeader: "nobody"})
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, middleware.UserIDHeader)

	testutils.AssertErrorResponse(t, httpSuite.MakeRequest(http.MethodGet, "/api/v2/unknown", nil), http.StatusNotFound, "Endpoint not found")
}

func TestAnonymousWritesAreRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupDB(t)
	router := routes.SetupRoutes(db, &config.Config{})
	httpSuite := &testutils.HTTPTestSuite{Router: router}
	store := repository.NewStore(db)
	factories := testutils.NewFactorySet()

	// a team that reviews every contributor edit
	video := factories.Video.Create()
	require.NoError(t, store.Videos().Create(video))
	team := factories.Team.Create()
	require.NoError(t, store.Teams().Create(team))
	teamVideo := factories.Team.TeamVideo(team, video)
	require.NoError(t, store.Teams().AddVideo(teamVideo))
	require.NoError(t, store.Teams().SaveWorkflow(factories.Team.Workflow(team, models.ModerationManager, models.ModerationNone)))
	contributor := factories.User.Create()
	require.NoError(t, store.Users().Create(contributor))
	require.NoError(t, store.Teams().AddMember(factories.Team.Member(team, contributor, models.MemberRoleContributor)))

	base := "/api/v1/videos/" + video.ID.String() + "/languages/en"
	asContributor := testutils.AsUser(contributor.ID)

	var first service.SubtitleVersionResponse
	recorder := httpSuite.MakeRequestWithHeaders(http.MethodPost, base+"/subtitles",
		map[string]interface{}{"subtitles": factories.Subtitle.Cues(), "complete": true}, asContributor)
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &first)

	// publish v1 and close its task, so the language is complete with a public version
	require.NoError(t, store.Versions().UpdateVisibility(first.ID, models.VisibilityPublic))
	tasks, err := store.Tasks().ListByTeamVideo(teamVideo.ID)
	require.NoError(t, err)
	for i := range tasks {
		now := time.Now()
		tasks[i].CompletedAt = &now
		require.NoError(t, store.DB().Save(&tasks[i]).Error)
	}

	edit := map[string]interface{}{"subtitles": []interface{}{}, "complete": true}
	var moderated service.SubtitleVersionResponse
	recorder = httpSuite.MakeRequestWithHeaders(http.MethodPost, base+"/subtitles", edit, asContributor)
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &moderated)
	assert.False(t, moderated.Public)

	recorder = httpSuite.MakeRequest(http.MethodPost, base+"/subtitles", edit)
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, middleware.UserIDHeader)
	recorder = httpSuite.MakeRequest(http.MethodPost, base+"/rollback", map[string]interface{}{"version_number": 1})
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, middleware.UserIDHeader)

	var versions []service.SubtitleVersionResponse
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, base+"/versions", nil), http.StatusOK, &versions)
	assert.Len(t, versions, 2)
}

func TestSetupHealthRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	httpSuite := &testutils.HTTPTestSuite{Router: routes.SetupHealthRoutes(setupDB(t))}

	testutils.AssertSuccessResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK)
	testutils.AssertSuccessResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK)
}
