package service

import (
	"context"
	"errors"
	"fmt"

	"subtitles-backend/internal/database/models"
	apperrors "subtitles-backend/internal/errors"
	"subtitles-backend/internal/logger"
	"subtitles-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AddSubtitlesRequest describes a new version of a video's subtitles in one language.
// Unset optional fields fall back to the model defaults. An unset Committer skips
// permission checks entirely.
type AddSubtitlesRequest struct {
	VideoID            uuid.UUID    `validate:"required"`
	LanguageCode       string       `validate:"required,max=16"`
	Subtitles          []models.Cue `validate:"dive"`
	Title              Optional[string]
	Description        Optional[string]
	AuthorID           Optional[uuid.UUID]
	Visibility         Optional[models.Visibility]
	VisibilityOverride Optional[models.VisibilityOverride]
	Parents            Optional[[]ParentRef]
	CommitterID        Optional[uuid.UUID]
	Complete           Optional[bool]
}

// RollbackRequest asks for a new version that copies an existing one
type RollbackRequest struct {
	VideoID       uuid.UUID `validate:"required"`
	LanguageCode  string    `validate:"required,max=16"`
	VersionNumber int       `validate:"min=1"`
	AuthorID      Optional[uuid.UUID]
	// CommitterID unset means a trusted internal rollback
	CommitterID Optional[uuid.UUID]
}

// versionPayload is what the writer needs once references are resolved
type versionPayload struct {
	subtitles          datatypes.JSON
	title              Optional[string]
	description        Optional[string]
	author             Optional[uuid.UUID]
	visibility         Optional[models.Visibility]
	visibilityOverride Optional[models.VisibilityOverride]
	parents            []*models.SubtitleVersion
	rollbackOf         *int
}

// Pipeline is the only write path for subtitle versions. It creates the version,
// keeps the language up to date and reconciles team tasks in the same unit of work.
type Pipeline struct {
	store       repository.StoreInterface
	permissions PermissionCheckerInterface
	validator   *validator.Validate
}

// NewPipeline creates a new subtitle pipeline
func NewPipeline(store repository.StoreInterface, permissions PermissionCheckerInterface, validator *validator.Validate) *Pipeline {
	return &Pipeline{
		store:       store,
		permissions: permissions,
		validator:   validator,
	}
}

// WithStore returns a pipeline bound to another store, typically one handed out by an
// outer transaction. Use it with the Unsafe entry points.
func (p *Pipeline) WithStore(store repository.StoreInterface) *Pipeline {
	return &Pipeline{
		store:       store,
		permissions: p.permissions,
		validator:   p.validator,
	}
}

// AddSubtitles creates a new version in a single transaction
func (p *Pipeline) AddSubtitles(ctx context.Context, req *AddSubtitlesRequest) (*models.SubtitleVersion, error) {
	if err := p.validateAdd(req); err != nil {
		return nil, err
	}

	var version *models.SubtitleVersion
	err := p.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		var err error
		version, err = p.addSubtitles(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return version, nil
}

// UnsafeAddSubtitles behaves like AddSubtitles without opening a transaction.
// The caller must already be inside one that rolls back on error.
func (p *Pipeline) UnsafeAddSubtitles(ctx context.Context, req *AddSubtitlesRequest) (*models.SubtitleVersion, error) {
	if err := p.validateAdd(req); err != nil {
		return nil, err
	}
	return p.addSubtitles(ctx, p.store, req)
}

// RollbackTo creates a copy of an existing version as the new tip, in a single transaction
func (p *Pipeline) RollbackTo(ctx context.Context, req *RollbackRequest) (*models.SubtitleVersion, error) {
	if err := p.validateStruct(req); err != nil {
		return nil, err
	}

	var version *models.SubtitleVersion
	err := p.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		var err error
		version, err = p.rollbackTo(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return version, nil
}

// UnsafeRollbackTo behaves like RollbackTo without opening a transaction
func (p *Pipeline) UnsafeRollbackTo(ctx context.Context, req *RollbackRequest) (*models.SubtitleVersion, error) {
	if err := p.validateStruct(req); err != nil {
		return nil, err
	}
	return p.rollbackTo(ctx, p.store, req)
}

func (p *Pipeline) validateAdd(req *AddSubtitlesRequest) error {
	if err := p.validateStruct(req); err != nil {
		return err
	}
	if v, ok := req.Visibility.Get(); ok && !v.IsValid() {
		return apperrors.NewValidationError("visibility", fmt.Sprintf("invalid visibility %q", v))
	}
	if v, ok := req.VisibilityOverride.Get(); ok && !v.IsValid() {
		return apperrors.NewValidationError("visibility_override", fmt.Sprintf("invalid visibility override %q", v))
	}
	parents, _ := req.Parents.Get()
	for _, ref := range parents {
		if err := ref.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) validateStruct(req interface{}) error {
	err := p.validator.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.NewValidationError(fieldErrs[0].Field(), fieldErrs[0].Error())
	}
	return apperrors.NewValidationError("", err.Error())
}

func (p *Pipeline) addSubtitles(ctx context.Context, tx repository.StoreInterface, req *AddSubtitlesRequest) (*models.SubtitleVersion, error) {
	video, err := loadVideo(tx, req.VideoID)
	if err != nil {
		return nil, err
	}

	var parents []*models.SubtitleVersion
	if refs, ok := req.Parents.Get(); ok {
		parents = make([]*models.SubtitleVersion, 0, len(refs))
		for _, ref := range refs {
			parent, err := ref.resolve(tx.Versions(), video.ID)
			if err != nil {
				return nil, err
			}
			parents = append(parents, parent)
		}
	}

	subtitles, err := models.EncodeCues(req.Subtitles)
	if err != nil {
		return nil, err
	}

	payload := versionPayload{
		subtitles:          subtitles,
		title:              req.Title,
		description:        req.Description,
		author:             req.AuthorID,
		visibility:         req.Visibility,
		visibilityOverride: req.VisibilityOverride,
		parents:            parents,
	}
	return p.commit(ctx, tx, video, req.LanguageCode, payload, req.CommitterID, req.Complete)
}

func (p *Pipeline) rollbackTo(ctx context.Context, tx repository.StoreInterface, req *RollbackRequest) (*models.SubtitleVersion, error) {
	video, err := loadVideo(tx, req.VideoID)
	if err != nil {
		return nil, err
	}

	target, err := tx.Versions().GetByCoordinate(video.ID, req.LanguageCode, req.VersionNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrSubtitleVersionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load rollback target: %w", err)
	}

	// Once any version of the language was released, rollbacks are released too.
	anyPublic, err := tx.Versions().AnyPublic(target.SubtitleLanguageID)
	if err != nil {
		return nil, fmt.Errorf("failed to check public versions: %w", err)
	}
	visibility := models.VisibilityPrivate
	if anyPublic {
		visibility = models.VisibilityPublic
	}

	rollbackOf := target.VersionNumber
	payload := versionPayload{
		subtitles:   target.Subtitles,
		title:       Some(target.Title),
		description: Some(target.Description),
		author:      req.AuthorID,
		visibility:  Some(visibility),
		rollbackOf:  &rollbackOf,
	}
	return p.commit(ctx, tx, video, target.LanguageCode, payload, req.CommitterID, Unset[bool]())
}

// commit runs resolve, write and reconcile against tx
func (p *Pipeline) commit(ctx context.Context, tx repository.StoreInterface, video *models.Video, languageCode string,
	payload versionPayload, committer Optional[uuid.UUID], complete Optional[bool]) (*models.SubtitleVersion, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"video_id": video.ID,
		"language": languageCode,
	})

	language, needsSave, err := resolveLanguage(tx.Languages(), video.ID, languageCode, complete)
	if err != nil {
		return nil, err
	}
	if needsSave {
		if err := saveLanguage(tx.Languages(), language); err != nil {
			return nil, err
		}
	}

	version, err := writeVersion(tx.Versions(), video, language, payload)
	if err != nil {
		return nil, err
	}
	log.WithFields(map[string]interface{}{
		"version_number": version.VersionNumber,
		"visibility":     version.Visibility,
	}).Info("Created subtitle version")

	if err := p.reconcileWorkflow(ctx, tx, video, language, version, committer, complete); err != nil {
		return nil, err
	}
	return version, nil
}

func loadVideo(tx repository.StoreInterface, videoID uuid.UUID) (*models.Video, error) {
	video, err := tx.Videos().GetByID(videoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrVideoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load video: %w", err)
	}
	return video, nil
}

// resolveLanguage finds the language of a video, creating it on first use. The returned
// flag tells the caller the completeness flag changed and the language must be saved.
// The row stays locked until the surrounding transaction ends.
func resolveLanguage(languages repository.SubtitleLanguageRepositoryInterface, videoID uuid.UUID, languageCode string,
	complete Optional[bool]) (*models.SubtitleLanguage, bool, error) {
	language, err := languages.GetByVideoAndCodeForUpdate(videoID, languageCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// concurrent first writers race on the unique index; the loser reads the winner's row
		fresh := &models.SubtitleLanguage{VideoID: videoID, LanguageCode: languageCode}
		if err := languages.CreateIfAbsent(fresh); err != nil {
			return nil, false, fmt.Errorf("failed to create subtitle language: %w", err)
		}
		language, err = languages.GetByVideoAndCodeForUpdate(videoID, languageCode)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load subtitle language: %w", err)
	}

	needsSave := false
	if c, ok := complete.Get(); ok {
		language.SubtitlesComplete = c
		needsSave = true
	}
	return language, needsSave, nil
}

func saveLanguage(languages repository.SubtitleLanguageRepositoryInterface, language *models.SubtitleLanguage) error {
	if err := languages.Save(language); err != nil {
		return fmt.Errorf("failed to save subtitle language: %w", err)
	}
	return nil
}

// writeVersion inserts the next version of language. The current tip is always the
// first parent; extra parents follow in the given order without duplicates.
func writeVersion(versions repository.SubtitleVersionRepositoryInterface, video *models.Video, language *models.SubtitleLanguage,
	payload versionPayload) (*models.SubtitleVersion, error) {
	maxNumber, err := versions.MaxVersionNumber(language.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read version numbers: %w", err)
	}
	tip, err := versions.GetTip(language.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read current tip: %w", err)
	}

	parentIDs := make([]uuid.UUID, 0, len(payload.parents)+1)
	seen := make(map[uuid.UUID]bool)
	if tip != nil {
		parentIDs = append(parentIDs, tip.ID)
		seen[tip.ID] = true
	}
	for _, parent := range payload.parents {
		if !seen[parent.ID] {
			parentIDs = append(parentIDs, parent.ID)
			seen[parent.ID] = true
		}
	}

	version := &models.SubtitleVersion{
		VideoID:                 video.ID,
		SubtitleLanguageID:      language.ID,
		LanguageCode:            language.LanguageCode,
		VersionNumber:           maxNumber + 1,
		Subtitles:               payload.subtitles,
		Title:                   payload.title.OrElse(""),
		Description:             payload.description.OrElse(""),
		AuthorID:                payload.author.Ptr(),
		Visibility:              payload.visibility.OrElse(models.VisibilityPublic),
		VisibilityOverride:      payload.visibilityOverride.OrElse(models.VisibilityOverrideNone),
		RollbackOfVersionNumber: payload.rollbackOf,
	}

	err = versions.Create(version, parentIDs)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperrors.ErrSubtitleVersionExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create subtitle version: %w", err)
	}
	version.ParentIDs = parentIDs
	return version, nil
}
