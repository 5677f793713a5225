package models

// Video is a piece of content that subtitles are written for
type Video struct {
	BaseModel
	Title                    string `json:"title" gorm:"size:2048"`
	VideoURL                 string `json:"video_url" gorm:"size:2048"`
	PrimaryAudioLanguageCode string `json:"primary_audio_language_code" gorm:"size:16"`
	AllowVideoURLsEdit       bool   `json:"allow_video_urls_edit" gorm:"not null"`
}

// TableName returns the table name for Video
func (Video) TableName() string {
	return "videos"
}
