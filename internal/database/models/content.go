package models

import "time"

// Content is one logged value in the contribution ledger. Entries are
// append-only and never deleted. The reference columns are nullable so that
// historical rows survive even when their schema or owner is gone; readers
// must treat missing references as unattributed rather than reject them.
type Content struct {
	Base
	TableID   *uint     `gorm:"index" json:"table_id,omitempty"`
	PreUserID *uint     `gorm:"index" json:"pre_user_id,omitempty"`
	ColumnID  *uint     `gorm:"index" json:"column_id,omitempty"`
	Value     string    `gorm:"size:200;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Table   *Table   `gorm:"foreignKey:TableID" json:"table,omitempty"`
	PreUser *PreUser `gorm:"foreignKey:PreUserID" json:"pre_user,omitempty"`
	Column  *Column  `gorm:"foreignKey:ColumnID" json:"column,omitempty"`
}

func (Content) TableName() string {
	return "contents"
}
