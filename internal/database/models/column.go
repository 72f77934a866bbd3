package models

// Datatype is the declared type of a column. Values are stored as raw text
// regardless; the datatype drives coercion checks at the boundary.
type Datatype string

const (
	DatatypeString  Datatype = "string"
	DatatypeNumber  Datatype = "number"
	DatatypeDate    Datatype = "date"
	DatatypeBoolean Datatype = "boolean"
)

// IsValid reports whether the datatype is one of the recognized set.
func (d Datatype) IsValid() bool {
	switch d {
	case DatatypeString, DatatypeNumber, DatatypeDate, DatatypeBoolean:
		return true
	}
	return false
}

type Column struct {
	Base
	TableID  uint     `gorm:"not null;index:idx_columns_table_name,unique" json:"table_id"`
	Name     string   `gorm:"size:100;not null;index:idx_columns_table_name,unique" json:"name"`
	Datatype Datatype `gorm:"size:50;default:'string'" json:"datatype"`

	// Relationships
	Table *Table `gorm:"foreignKey:TableID" json:"table,omitempty"`
}

func (Column) TableName() string {
	return "data_columns"
}
