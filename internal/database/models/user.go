package models

import "time"

type User struct {
	Base
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:500;not null" json:"-"`
	Gender       string    `gorm:"size:10" json:"gender,omitempty"`
	ProfileImage string    `gorm:"size:100" json:"profile_image,omitempty"`
	Admin        bool      `gorm:"default:false" json:"admin"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	PreUsers []PreUser `gorm:"foreignKey:UserID" json:"pre_users,omitempty"`
}

func (User) TableName() string {
	return "users"
}
