package models

// Table is a named data collection scoped to exactly one PreUser. The schema
// is append-only: tables and columns are created by admins and never mutated.
type Table struct {
	Base
	PreUserID   uint   `gorm:"not null;index" json:"pre_user_id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:200" json:"description,omitempty"`

	// Relationships
	PreUser *PreUser `gorm:"foreignKey:PreUserID" json:"pre_user,omitempty"`
	Columns []Column `gorm:"foreignKey:TableID" json:"columns,omitempty"`
}

func (Table) TableName() string {
	return "data_tables"
}
