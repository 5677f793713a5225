package models

// User is an account that can author subtitles or be assigned tasks
type User struct {
	BaseModel
	Username string `json:"username" gorm:"size:64;not null;uniqueIndex" validate:"required,min=1,max=64"`
	FullName string `json:"full_name" gorm:"size:200"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
