package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"subtitles-backend/internal/api/middleware"
	"subtitles-backend/internal/database/models"
	apperrors "subtitles-backend/internal/errors"
	"subtitles-backend/internal/logger"
	"subtitles-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubtitleHandler handles HTTP requests for subtitle languages and versions
type SubtitleHandler struct {
	pipeline service.SubtitlePipelineInterface
	query    service.SubtitleQueryServiceInterface
}

// NewSubtitleHandler creates a new subtitle handler
func NewSubtitleHandler(pipeline service.SubtitlePipelineInterface, query service.SubtitleQueryServiceInterface) *SubtitleHandler {
	return &SubtitleHandler{
		pipeline: pipeline,
		query:    query,
	}
}

// ParentRequest references an extra parent either by id or by language and number
type ParentRequest struct {
	ID            *uuid.UUID `json:"id,omitempty"`
	LanguageCode  string     `json:"language_code,omitempty" example:"fr"`
	VersionNumber int        `json:"version_number,omitempty" example:"2"`
}

// AuthorField tells an omitted author_id apart from an explicit null. Omitted means the
// acting user, null means anonymous.
type AuthorField struct {
	Present bool
	ID      *uuid.UUID
}

// UnmarshalJSON records that the field was sent
func (a *AuthorField) UnmarshalJSON(data []byte) error {
	a.Present = true
	if string(data) == "null" {
		a.ID = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	a.ID = &id
	return nil
}

func (a AuthorField) orActingUser(user *uuid.UUID) service.Optional[uuid.UUID] {
	if !a.Present {
		return service.FromPtr(user)
	}
	return service.FromPtr(a.ID)
}

// AddSubtitlesRequest is the body of POST .../subtitles. Omitted fields keep their defaults.
type AddSubtitlesRequest struct {
	Subtitles          []models.Cue     `json:"subtitles" binding:"required"`
	Title              *string          `json:"title,omitempty"`
	Description        *string          `json:"description,omitempty"`
	AuthorID           AuthorField      `json:"author_id" swaggertype:"string" format:"uuid" extensions:"x-nullable"`
	Visibility         *string          `json:"visibility,omitempty" binding:"omitempty,oneof=public private" example:"public"`
	VisibilityOverride *string          `json:"visibility_override,omitempty" binding:"omitempty,oneof=public private" example:""`
	Parents            *[]ParentRequest `json:"parents,omitempty"`
	Complete           *bool            `json:"complete,omitempty"`
}

// RollbackRequest is the body of POST .../rollback
type RollbackRequest struct {
	VersionNumber int        `json:"version_number" binding:"required,min=1" example:"1"`
	AuthorID      AuthorField `json:"author_id" swaggertype:"string" format:"uuid" extensions:"x-nullable"`
}

func (p ParentRequest) toRef() service.ParentRef {
	switch {
	case p.ID != nil && p.LanguageCode == "" && p.VersionNumber == 0:
		return service.ParentByVersion(*p.ID)
	case p.ID == nil && (p.LanguageCode != "" || p.VersionNumber != 0):
		return service.ParentByCoordinate(p.LanguageCode, p.VersionNumber)
	}
	return service.ParentRef{}
}

func (r *AddSubtitlesRequest) toService(videoID uuid.UUID, languageCode string, committer *uuid.UUID) *service.AddSubtitlesRequest {
	req := &service.AddSubtitlesRequest{
		VideoID:      videoID,
		LanguageCode: languageCode,
		Subtitles:    r.Subtitles,
		Title:        service.FromPtr(r.Title),
		Description:  service.FromPtr(r.Description),
		AuthorID:     r.AuthorID.orActingUser(committer),
		CommitterID:  service.FromPtr(committer),
		Complete:     service.FromPtr(r.Complete),
	}
	if r.Visibility != nil {
		req.Visibility = service.Some(models.Visibility(*r.Visibility))
	}
	if r.VisibilityOverride != nil {
		req.VisibilityOverride = service.Some(models.VisibilityOverride(*r.VisibilityOverride))
	}
	if r.Parents != nil {
		refs := make([]service.ParentRef, len(*r.Parents))
		for i, parent := range *r.Parents {
			refs[i] = parent.toRef()
		}
		req.Parents = service.Some(refs)
	}
	return req
}

// AddSubtitles handles POST /videos/:videoId/languages/:languageCode/subtitles
// @Summary Add a subtitle version
// @Description Create the next version of a video's subtitles in one language. Team workflows may hold it back for review and open tasks.
// @Description An omitted author_id records the acting user as author, an explicit null records an anonymous author.
// @Tags subtitles
// @Accept json
// @Produce json
// @Param videoId path string true "Video ID (UUID)"
// @Param languageCode path string true "Language code" example(en)
// @Param X-User-ID header string true "Acting user (UUID)"
// @Param subtitles body AddSubtitlesRequest true "Subtitle data"
// @Success 201 {object} service.SubtitleVersionResponse "Successfully created version"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Missing X-User-ID header"
// @Failure 404 {object} ErrorResponse "Video or parent version not found"
// @Failure 409 {object} ErrorResponse "Version number already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /videos/{videoId}/languages/{languageCode}/subtitles [post]
func (h *SubtitleHandler) AddSubtitles(c *gin.Context) {
	videoID, ok := parseVideoID(c)
	if !ok {
		return
	}

	var body AddSubtitlesRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	req := body.toService(videoID, c.Param("languageCode"), middleware.UserID(c))
	version, err := h.pipeline.AddSubtitles(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithVersion(c, version)
}

// Rollback handles POST /videos/:videoId/languages/:languageCode/rollback
// @Summary Roll back to a version
// @Description Create a new version that copies the subtitles, title and description of an older one.
// @Description An omitted author_id records the acting user as author, an explicit null records an anonymous author.
// @Tags subtitles
// @Accept json
// @Produce json
// @Param videoId path string true "Video ID (UUID)"
// @Param languageCode path string true "Language code" example(en)
// @Param X-User-ID header string true "Acting user (UUID)"
// @Param rollback body RollbackRequest true "Version to restore"
// @Success 201 {object} service.SubtitleVersionResponse "Successfully created version"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Missing X-User-ID header"
// @Failure 404 {object} ErrorResponse "Version not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /videos/{videoId}/languages/{languageCode}/rollback [post]
func (h *SubtitleHandler) Rollback(c *gin.Context) {
	videoID, ok := parseVideoID(c)
	if !ok {
		return
	}

	var body RollbackRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user := middleware.UserID(c)
	version, err := h.pipeline.RollbackTo(c.Request.Context(), &service.RollbackRequest{
		VideoID:       videoID,
		LanguageCode:  c.Param("languageCode"),
		VersionNumber: body.VersionNumber,
		AuthorID:      body.AuthorID.orActingUser(user),
		CommitterID:   service.FromPtr(user),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithVersion(c, version)
}

func (h *SubtitleHandler) respondWithVersion(c *gin.Context, version *models.SubtitleVersion) {
	response, err := service.NewSubtitleVersionResponse(version)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// ListLanguages handles GET /videos/:videoId/languages
// @Summary List subtitle languages
// @Description Get all subtitle languages of a video
// @Tags subtitles
// @Produce json
// @Param videoId path string true "Video ID (UUID)"
// @Success 200 {array} service.SubtitleLanguageResponse "Successfully retrieved languages"
// @Failure 400 {object} ErrorResponse "Invalid video ID"
// @Failure 404 {object} ErrorResponse "Video not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /videos/{videoId}/languages [get]
func (h *SubtitleHandler) ListLanguages(c *gin.Context) {
	videoID, ok := parseVideoID(c)
	if !ok {
		return
	}

	languages, err := h.query.ListLanguages(videoID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, languages)
}

// ListVersions handles GET /videos/:videoId/languages/:languageCode/versions
// @Summary List subtitle versions
// @Description Get all versions of a language, oldest first
// @Tags subtitles
// @Produce json
// @Param videoId path string true "Video ID (UUID)"
// @Param languageCode path string true "Language code" example(en)
// @Success 200 {array} service.SubtitleVersionResponse "Successfully retrieved versions"
// @Failure 400 {object} ErrorResponse "Invalid video ID"
// @Failure 404 {object} ErrorResponse "Language not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /videos/{videoId}/languages/{languageCode}/versions [get]
func (h *SubtitleHandler) ListVersions(c *gin.Context) {
	videoID, ok := parseVideoID(c)
	if !ok {
		return
	}

	versions, err := h.query.ListVersions(videoID, c.Param("languageCode"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, versions)
}

// GetVersion handles GET /videos/:videoId/languages/:languageCode/versions/:number
// @Summary Get a subtitle version
// @Description Get one version by number, including its parents
// @Tags subtitles
// @Produce json
// @Param videoId path string true "Video ID (UUID)"
// @Param languageCode path string true "Language code" example(en)
// @Param number path int true "Version number"
// @Success 200 {object} service.SubtitleVersionResponse "Successfully retrieved version"
// @Failure 400 {object} ErrorResponse "Invalid video ID or version number"
// @Failure 404 {object} ErrorResponse "Version not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /videos/{videoId}/languages/{languageCode}/versions/{number} [get]
func (h *SubtitleHandler) GetVersion(c *gin.Context) {
	videoID, ok := parseVideoID(c)
	if !ok {
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid version number"})
		return
	}

	version, err := h.query.GetVersion(videoID, c.Param("languageCode"), number)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, version)
}

// GetVideoPermissions handles GET /videos/:videoId/permissions
// @Summary Get video permissions
// @Description Report what the acting user may do with a video
// @Tags videos
// @Produce json
// @Param videoId path string true "Video ID (UUID)"
// @Param X-User-ID header string false "Acting user (UUID)"
// @Success 200 {object} service.VideoPermissionsResponse "Successfully retrieved permissions"
// @Failure 400 {object} ErrorResponse "Invalid video ID"
// @Failure 404 {object} ErrorResponse "Video not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /videos/{videoId}/permissions [get]
func (h *SubtitleHandler) GetVideoPermissions(c *gin.Context) {
	videoID, ok := parseVideoID(c)
	if !ok {
		return
	}

	permissions, err := h.query.GetVideoPermissions(videoID, middleware.UserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, permissions)
}

func parseVideoID(c *gin.Context) (uuid.UUID, bool) {
	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid video ID"})
		return uuid.Nil, false
	}
	return videoID, true
}

// respondWithError maps service errors onto status codes
func respondWithError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithField("error", err.Error()).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
