package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"subtitles-backend/internal/api/handlers"
	"subtitles-backend/internal/api/middleware"
	"subtitles-backend/internal/database/models"
	apperrors "subtitles-backend/internal/errors"
	"subtitles-backend/internal/mocks"
	"subtitles-backend/internal/service"
	"subtitles-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SubtitleHandlerTestSuite defines the test suite for SubtitleHandler
type SubtitleHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPipeline *mocks.MockSubtitlePipelineInterface
	mockQuery    *mocks.MockSubtitleQueryServiceInterface
	handler      *handlers.SubtitleHandler
	httpSuite    *testutils.HTTPTestSuite
	factories    *testutils.FactorySet
	video        *models.Video
	language     *models.SubtitleLanguage
}

// SetupTest sets up the test suite
func (suite *SubtitleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPipeline = mocks.NewMockSubtitlePipelineInterface(suite.ctrl)
	suite.mockQuery = mocks.NewMockSubtitleQueryServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSubtitleHandler(suite.mockPipeline, suite.mockQuery)
	suite.factories = testutils.NewFactorySet()
	suite.video = suite.factories.Video.Create()
	suite.language = suite.factories.Subtitle.Language(suite.video, "en")

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(middleware.User())
	videos := suite.httpSuite.Router.Group("/api/v1/videos/:videoId")
	{
		videos.GET("/permissions", suite.handler.GetVideoPermissions)
		videos.GET("/languages", suite.handler.ListLanguages)
		videos.POST("/languages/:languageCode/subtitles", suite.handler.AddSubtitles)
		videos.POST("/languages/:languageCode/rollback", suite.handler.Rollback)
		videos.GET("/languages/:languageCode/versions", suite.handler.ListVersions)
		videos.GET("/languages/:languageCode/versions/:number", suite.handler.GetVersion)
	}
}

// TearDownTest cleans up after each test
func (suite *SubtitleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SubtitleHandlerTestSuite) url(path string) string {
	return fmt.Sprintf("/api/v1/videos/%s%s", suite.video.ID, path)
}

// TestAddSubtitles tests the mapping of the request body onto the pipeline request
func (suite *SubtitleHandlerTestSuite) TestAddSubtitles() {
	suite.T().Run("Success", func(t *testing.T) {
		committer := uuid.New()
		parentID := uuid.New()
		version := suite.factories.Subtitle.Version(suite.language, 2, models.VisibilityPublic)
		version.ParentIDs = []uuid.UUID{parentID}

		suite.mockPipeline.EXPECT().
			AddSubtitles(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.AddSubtitlesRequest) (*models.SubtitleVersion, error) {
				suite.Equal(suite.video.ID, req.VideoID)
				suite.Equal("en", req.LanguageCode)
				suite.Equal(suite.factories.Subtitle.Cues(), req.Subtitles)
				suite.Equal(service.Some(""), req.Title)
				suite.False(req.Description.IsSet())
				suite.Equal(service.Some(models.VisibilityPrivate), req.Visibility)
				suite.Equal(service.Some(committer), req.CommitterID)
				suite.Equal(service.Some(committer), req.AuthorID)
				suite.Equal(service.Some(false), req.Complete)
				suite.Equal(service.Some([]service.ParentRef{
					service.ParentByVersion(parentID),
					service.ParentByCoordinate("fr", 2),
				}), req.Parents)
				return version, nil
			})

		body := map[string]interface{}{
			"subtitles":  suite.factories.Subtitle.Cues(),
			"title":      "",
			"visibility": "private",
			"complete":   false,
			"parents": []map[string]interface{}{
				{"id": parentID.String()},
				{"language_code": "fr", "version_number": 2},
			},
		}
		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, suite.url("/languages/en/subtitles"), body,
			testutils.AsUser(committer))

		var response service.SubtitleVersionResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		suite.Equal(version.ID, response.ID)
		suite.Equal(2, response.VersionNumber)
		suite.True(response.Public)
		suite.Equal([]uuid.UUID{parentID}, response.ParentIDs)
	})

	suite.T().Run("Anonymous commit leaves the committer unset", func(t *testing.T) {
		suite.mockPipeline.EXPECT().
			AddSubtitles(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.AddSubtitlesRequest) (*models.SubtitleVersion, error) {
				suite.False(req.CommitterID.IsSet())
				suite.False(req.AuthorID.IsSet())
				suite.False(req.Parents.IsSet())
				suite.False(req.Complete.IsSet())
				return suite.factories.Subtitle.Version(suite.language, 1, models.VisibilityPublic), nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/languages/en/subtitles"),
			map[string]interface{}{"subtitles": []interface{}{}})
		testutils.AssertSuccessResponse(t, recorder, http.StatusCreated)
	})

	suite.T().Run("Explicit null author stays anonymous", func(t *testing.T) {
		committer := uuid.New()
		suite.mockPipeline.EXPECT().
			AddSubtitles(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.AddSubtitlesRequest) (*models.SubtitleVersion, error) {
				suite.Equal(service.Some(committer), req.CommitterID)
				suite.False(req.AuthorID.IsSet())
				return suite.factories.Subtitle.Version(suite.language, 1, models.VisibilityPublic), nil
			})

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, suite.url("/languages/en/subtitles"),
			map[string]interface{}{"subtitles": []interface{}{}, "author_id": nil},
			testutils.AsUser(committer))
		testutils.AssertSuccessResponse(t, recorder, http.StatusCreated)
	})

	suite.T().Run("Explicit author is kept", func(t *testing.T) {
		committer := uuid.New()
		author := uuid.New()
		suite.mockPipeline.EXPECT().
			AddSubtitles(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.AddSubtitlesRequest) (*models.SubtitleVersion, error) {
				suite.Equal(service.Some(committer), req.CommitterID)
				suite.Equal(service.Some(author), req.AuthorID)
				return suite.factories.Subtitle.Version(suite.language, 1, models.VisibilityPublic), nil
			})

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, suite.url("/languages/en/subtitles"),
			map[string]interface{}{"subtitles": []interface{}{}, "author_id": author.String()},
			testutils.AsUser(committer))
		testutils.AssertSuccessResponse(t, recorder, http.StatusCreated)
	})

	suite.T().Run("Malformed author", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/languages/en/subtitles"),
			map[string]interface{}{"subtitles": []interface{}{}, "author_id": "someone"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "UUID")
	})

	suite.T().Run("Ambiguous parent is passed on as invalid", func(t *testing.T) {
		suite.mockPipeline.EXPECT().
			AddSubtitles(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.AddSubtitlesRequest) (*models.SubtitleVersion, error) {
				parents, _ := req.Parents.Get()
				suite.Equal([]service.ParentRef{{}}, parents)
				return nil, apperrors.NewValidationError("parents", "cannot look up a version from this parent reference")
			})

		body := map[string]interface{}{
			"subtitles": []interface{}{},
			"parents":   []map[string]interface{}{{"id": uuid.NewString(), "language_code": "fr", "version_number": 1}},
		}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/languages/en/subtitles"), body)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "parents")
	})

	suite.T().Run("Missing subtitles", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/languages/en/subtitles"),
			map[string]interface{}{"title": "x"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Subtitles")
	})

	suite.T().Run("Unknown visibility", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/languages/en/subtitles"),
			map[string]interface{}{"subtitles": []interface{}{}, "visibility": "secret"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Visibility")
	})

	suite.T().Run("Invalid video ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/videos/not-a-uuid/languages/en/subtitles",
			map[string]interface{}{"subtitles": []interface{}{}})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid video ID")
	})
}

// TestErrorMapping tests how service errors become status codes
func (suite *SubtitleHandlerTestSuite) TestErrorMapping() {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", apperrors.ErrVideoNotFound, http.StatusNotFound, "video not found"},
		{"wrapped not found", fmt.Errorf("resolve: %w", apperrors.ErrSubtitleVersionNotFound), http.StatusNotFound, "subtitle version not found"},
		{"validation", apperrors.NewValidationError("language_code", "is required"), http.StatusBadRequest, "language_code"},
		{"conflict", apperrors.ErrSubtitleVersionExists, http.StatusConflict, "already exists"},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockPipeline.EXPECT().AddSubtitles(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/languages/en/subtitles"),
				map[string]interface{}{"subtitles": []interface{}{}})
			testutils.AssertErrorResponse(t, recorder, tc.status, tc.message)
		})
	}
}

// TestRollback tests the Rollback handler
func (suite *SubtitleHandlerTestSuite) TestRollback() {
	suite.T().Run("Author defaults to the acting user", func(t *testing.T) {
		user := uuid.New()
		version := suite.factories.Subtitle.Version(suite.language, 4, models.VisibilityPublic)
		rollbackOf := 1
		version.RollbackOfVersionNumber = &rollbackOf

		suite.mockPipeline.EXPECT().
			RollbackTo(gomock.Any(), &service.RollbackRequest{
				VideoID:       suite.video.ID,
				LanguageCode:  "en",
				VersionNumber: 1,
				AuthorID:      service.Some(user),
				CommitterID:   service.Some(user),
			}).
			Return(version, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, suite.url("/languages/en/rollback"),
			map[string]interface{}{"version_number": 1}, testutils.AsUser(user))

		var response service.SubtitleVersionResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		suite.Equal(4, response.VersionNumber)
		suite.Equal(&rollbackOf, response.RollbackOfVersionNumber)
	})

	suite.T().Run("Explicit null author stays anonymous", func(t *testing.T) {
		user := uuid.New()
		suite.mockPipeline.EXPECT().
			RollbackTo(gomock.Any(), &service.RollbackRequest{
				VideoID:       suite.video.ID,
				LanguageCode:  "en",
				VersionNumber: 1,
				CommitterID:   service.Some(user),
			}).
			Return(suite.factories.Subtitle.Version(suite.language, 2, models.VisibilityPublic), nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, suite.url("/languages/en/rollback"),
			map[string]interface{}{"version_number": 1, "author_id": nil}, testutils.AsUser(user))
		testutils.AssertSuccessResponse(t, recorder, http.StatusCreated)
	})

	suite.T().Run("Missing version", func(t *testing.T) {
		suite.mockPipeline.EXPECT().RollbackTo(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrSubtitleVersionNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/languages/en/rollback"),
			map[string]interface{}{"version_number": 9})
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "subtitle version not found")
	})

	suite.T().Run("Invalid version number", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/languages/en/rollback"),
			map[string]interface{}{"version_number": 0})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "VersionNumber")
	})
}

// TestReads tests the read-only endpoints
func (suite *SubtitleHandlerTestSuite) TestReads() {
	suite.T().Run("ListLanguages", func(t *testing.T) {
		suite.mockQuery.EXPECT().ListLanguages(suite.video.ID).Return([]service.SubtitleLanguageResponse{
			{ID: suite.language.ID, VideoID: suite.video.ID, LanguageCode: "en"},
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/languages"), nil)

		var response []service.SubtitleLanguageResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		suite.Len(response, 1)
		suite.Equal("en", response[0].LanguageCode)
	})

	suite.T().Run("ListVersions of a missing language", func(t *testing.T) {
		suite.mockQuery.EXPECT().ListVersions(suite.video.ID, "de").Return(nil, apperrors.ErrSubtitleLanguageNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/languages/de/versions"), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "subtitle language not found")
	})

	suite.T().Run("GetVersion", func(t *testing.T) {
		suite.mockQuery.EXPECT().GetVersion(suite.video.ID, "en", 3).Return(&service.SubtitleVersionResponse{
			VersionNumber: 3,
			ParentIDs:     []uuid.UUID{},
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/languages/en/versions/3"), nil)

		var response service.SubtitleVersionResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		suite.Equal(3, response.VersionNumber)
	})

	suite.T().Run("GetVersion with a bad number", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/languages/en/versions/latest"), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid version number")
	})

	suite.T().Run("GetVideoPermissions", func(t *testing.T) {
		user := uuid.New()
		suite.mockQuery.EXPECT().GetVideoPermissions(suite.video.ID, &user).Return(&service.VideoPermissionsResponse{
			VideoID:          suite.video.ID,
			CanEditVideoURLs: true,
		}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, suite.url("/permissions"), nil,
			testutils.AsUser(user))

		var response service.VideoPermissionsResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		suite.True(response.CanEditVideoURLs)
	})

	suite.T().Run("GetVideoPermissions anonymously", func(t *testing.T) {
		suite.mockQuery.EXPECT().GetVideoPermissions(suite.video.ID, gomock.Nil()).Return(&service.VideoPermissionsResponse{
			VideoID: suite.video.ID,
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/permissions"), nil)
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK)
	})
}

// TestSubtitleHandlerTestSuite runs the test suite
func TestSubtitleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SubtitleHandlerTestSuite))
}
