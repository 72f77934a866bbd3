package models

import "time"

// PreUser is a collection-subject identity. It may exist before anyone
// registers an account; UserID stays null until an admin merges the two.
type PreUser struct {
	Base
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100" json:"email,omitempty"`
	Phone     string    `gorm:"size:20" json:"phone,omitempty"`
	Gender    string    `gorm:"size:10" json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tables []Table `gorm:"foreignKey:PreUserID" json:"tables,omitempty"`
}

func (PreUser) TableName() string {
	return "pre_users"
}
