package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SubtitleLanguage is the per-(video, language) container that versions attach to
type SubtitleLanguage struct {
	BaseModel
	VideoID           uuid.UUID `json:"video_id" gorm:"type:uuid;not null;uniqueIndex:idx_video_language"`
	LanguageCode      string    `json:"language_code" gorm:"size:16;not null;uniqueIndex:idx_video_language"`
	SubtitlesComplete bool      `json:"subtitles_complete" gorm:"not null;default:false"`
}

// TableName returns the table name for SubtitleLanguage
func (SubtitleLanguage) TableName() string {
	return "subtitle_languages"
}

// Cue is one timed line of subtitle text
type Cue struct {
	StartMs int64  `json:"start_ms" validate:"gte=0"`
	EndMs   int64  `json:"end_ms" validate:"gtefield=StartMs"`
	Text    string `json:"text"`
}

// SubtitleVersion is an immutable snapshot of a language's subtitles.
// Only Visibility and an empty WorkflowOrigin may change after the insert.
type SubtitleVersion struct {
	BaseModel
	VideoID                 uuid.UUID          `json:"video_id" gorm:"type:uuid;not null;index"`
	SubtitleLanguageID      uuid.UUID          `json:"subtitle_language_id" gorm:"type:uuid;not null;uniqueIndex:idx_language_version_number"`
	LanguageCode            string             `json:"language_code" gorm:"size:16;not null;index"`
	VersionNumber           int                `json:"version_number" gorm:"not null;uniqueIndex:idx_language_version_number"`
	Subtitles               datatypes.JSON     `json:"subtitles" swaggertype:"array,object"`
	Title                   string             `json:"title" gorm:"size:2048"`
	Description             string             `json:"description" gorm:"type:text"`
	AuthorID                *uuid.UUID         `json:"author_id,omitempty" gorm:"type:uuid;index"`
	Visibility              Visibility         `json:"visibility" gorm:"size:10;not null;default:public"`
	VisibilityOverride      VisibilityOverride `json:"visibility_override" gorm:"size:10;not null;default:''"`
	RollbackOfVersionNumber *int               `json:"rollback_of_version_number,omitempty"`
	WorkflowOrigin          WorkflowOrigin     `json:"workflow_origin" gorm:"size:20;not null;default:''"`

	// ParentIDs is filled in on write and on read with parents, in link order
	ParentIDs []uuid.UUID `json:"parent_ids,omitempty" gorm:"-"`
}

// TableName returns the table name for SubtitleVersion
func (SubtitleVersion) TableName() string {
	return "subtitle_versions"
}

// IsPublic honours the override first, then the computed visibility
func (v *SubtitleVersion) IsPublic() bool {
	switch v.VisibilityOverride {
	case VisibilityOverridePublic:
		return true
	case VisibilityOverridePrivate:
		return false
	}
	return v.Visibility == VisibilityPublic
}

// Cues decodes the stored subtitle payload
func (v *SubtitleVersion) Cues() ([]Cue, error) {
	if len(v.Subtitles) == 0 {
		return []Cue{}, nil
	}
	var cues []Cue
	if err := json.Unmarshal(v.Subtitles, &cues); err != nil {
		return nil, fmt.Errorf("decode subtitles: %w", err)
	}
	return cues, nil
}

// EncodeCues serializes cues into the stored payload form
func EncodeCues(cues []Cue) (datatypes.JSON, error) {
	if cues == nil {
		cues = []Cue{}
	}
	raw, err := json.Marshal(cues)
	if err != nil {
		return nil, fmt.Errorf("encode subtitles: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// SubtitleVersionParent is one ordered edge from a version to a predecessor
type SubtitleVersionParent struct {
	VersionID uuid.UUID `json:"version_id" gorm:"type:uuid;primaryKey"`
	ParentID  uuid.UUID `json:"parent_id" gorm:"type:uuid;primaryKey;index"`
	Position  int       `json:"position" gorm:"not null"`
}

// TableName returns the table name for SubtitleVersionParent
func (SubtitleVersionParent) TableName() string {
	return "subtitle_version_parents"
}
